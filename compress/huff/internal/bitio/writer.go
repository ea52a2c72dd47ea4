// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitio packs and unpacks bit sequences most-significant-bit first.
package bitio

import (
	"bytes"
	"encoding/binary"

	icza "github.com/icza/bitio"
)

// Writer accumulates bits MSB-first into a growing byte buffer.
//
// WriteBits goes through an icza bit writer. WriteWide keeps up to 64 bits
// pending, right-aligned in bits, and stores them eight bytes at a time.
// Wide bits are only pending while the icza writer holds no partial byte.
type Writer struct {
	out    bytes.Buffer
	bw     *icza.Writer
	cached uint8 // bits held by bw, 0..7
	bits   uint64
	bitLen uint
	total  int
}

// NewWriter returns a Writer with room for about sizeHint bits.
func NewWriter(sizeHint int) *Writer {
	w := &Writer{}
	w.out.Grow((sizeHint + 7) / 8)
	w.bw = icza.NewWriter(&w.out)
	return w
}

// Reset discards everything written so far.
func (w *Writer) Reset() {
	w.out.Reset()
	w.bw = icza.NewWriter(&w.out)
	w.cached = 0
	w.bits = 0
	w.bitLen = 0
	w.total = 0
}

// Len reports the number of bits written so far, padding excluded.
func (w *Writer) Len() int { return w.total }

// WriteBits appends the low count bits of code, most significant first.
// count must be at most 64.
func (w *Writer) WriteBits(code uint64, count uint8) error {
	if err := w.flushWide(); err != nil {
		return err
	}
	w.total += int(count)
	return w.writeCached(code&lowMask(uint(count)), count)
}

func (w *Writer) writeCached(code uint64, count uint8) error {
	if err := w.bw.WriteBits(code, count); err != nil {
		return err
	}
	w.cached = (w.cached + count) % 8
	return nil
}

// WriteWide appends the low count bits of code like WriteBits, but keeps up
// to 64 bits pending and stores them eight bytes at a time.
func (w *Writer) WriteWide(code uint64, count uint8) error {
	n := uint(count)
	if n == 0 {
		return nil
	}
	code &= lowMask(n)
	w.total += int(count)
	if w.cached != 0 {
		// complete the partial byte first
		k := min(uint(8-w.cached), n)
		n -= k
		if err := w.writeCached(code>>n, uint8(k)); err != nil {
			return err
		}
		code &= lowMask(n)
		if n == 0 {
			return nil
		}
	}
	if w.bitLen+n < 64 {
		w.bits = w.bits<<n | code
		w.bitLen += n
		return nil
	}
	spill := w.bitLen + n - 64
	var word [8]byte
	binary.BigEndian.PutUint64(word[:], w.bits<<(n-spill)|code>>spill)
	w.out.Write(word[:])
	w.bits = code & lowMask(spill)
	w.bitLen = spill
	return nil
}

// flushWide hands pending wide bits to the icza writer.
func (w *Writer) flushWide() error {
	if w.bitLen == 0 {
		return nil
	}
	bits, n := w.bits, uint8(w.bitLen)
	w.bits, w.bitLen = 0, 0
	return w.writeCached(bits, n)
}

// Flush writes every pending bit and zero-pads the last byte. It returns the
// number of padding bits. Writing may continue afterwards from the next byte
// boundary.
func (w *Writer) Flush() (padding uint8, err error) {
	if err := w.flushWide(); err != nil {
		return 0, err
	}
	padding, err = w.bw.Align()
	w.cached = 0
	return padding, err
}

// Bytes returns the complete bytes written so far. Call Flush first to
// include a trailing partial byte.
func (w *Writer) Bytes() []byte {
	return w.out.Bytes()
}

// lowMask returns a mask of the n low-order bits; n == 64 yields all ones.
func lowMask(n uint) uint64 {
	return (uint64(1) << n) - 1
}
