// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package wordio provides bounds-checked cursors over the big-endian 32-bit
// words that make up e1 block payloads. All access to encoded payload bytes
// goes through these cursors; there is no pointer reinterpretation, so the
// codec behaves identically on any host byte order.
package wordio

import "encoding/binary"

// WordSize is the size in bytes of one payload word.
const WordSize = 4

// A Reader consumes big-endian words from a byte buffer.
type Reader struct {
	buf []byte
	off int
}

// MakeReader returns a Reader over buf. Trailing bytes that do not fill a
// whole word are never returned.
func MakeReader(buf []byte) Reader {
	return Reader{buf: buf}
}

// Next returns the next word and advances the cursor. ok is false if fewer
// than WordSize bytes remain.
func (r *Reader) Next() (w uint32, ok bool) {
	if r.off+WordSize > len(r.buf) {
		return 0, false
	}
	w = binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += WordSize
	return w, true
}

// Peek returns the next word without advancing the cursor.
func (r *Reader) Peek() (w uint32, ok bool) {
	if r.off+WordSize > len(r.buf) {
		return 0, false
	}
	return binary.BigEndian.Uint32(r.buf[r.off:]), true
}

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of whole words left to read.
func (r *Reader) Remaining() int { return (len(r.buf) - r.off) / WordSize }

// A Writer fills a fixed-size byte buffer with big-endian words. The buffer
// bounds the writer's capacity; callers check Remaining before writing.
type Writer struct {
	buf []byte
	off int
}

// MakeWriter returns a Writer over buf. len(buf) must be a multiple of
// WordSize.
func MakeWriter(buf []byte) Writer {
	if len(buf)%WordSize != 0 {
		panic("wordio: writer buffer not word-aligned")
	}
	return Writer{buf: buf}
}

// Put writes one word and advances the cursor. It panics if the writer is
// full; callers are expected to check Remaining first.
func (w *Writer) Put(v uint32) {
	binary.BigEndian.PutUint32(w.buf[w.off:], v)
	w.off += WordSize
}

// Remaining returns the number of words that can still be written.
func (w *Writer) Remaining() int { return (len(w.buf) - w.off) / WordSize }

// Len returns the number of words written so far.
func (w *Writer) Len() int { return w.off / WordSize }
