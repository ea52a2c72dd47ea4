// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitio

import (
	"bytes"
	"io"

	icza "github.com/icza/bitio"
)

// Reader yields the bits of a byte slice MSB-first, stopping after a fixed
// number of bits so trailing padding is never observed.
type Reader struct {
	br    *icza.Reader
	pos   int
	limit int
}

// NewReader reads the first nbits bits of data. nbits is clamped to
// the bits actually present.
func NewReader(data []byte, nbits int) *Reader {
	if nbits < 0 {
		nbits = 0
	}
	if avail := len(data) * 8; nbits > avail {
		nbits = avail
	}
	return &Reader{br: icza.NewReader(bytes.NewReader(data)), limit: nbits}
}

// ReadBit returns the next bit, or io.EOF once the limit is reached.
func (r *Reader) ReadBit() (uint8, error) {
	if r.pos >= r.limit {
		return 0, io.EOF
	}
	b, err := r.br.ReadBool()
	if err != nil {
		return 0, err
	}
	r.pos++
	if b {
		return 1, nil
	}
	return 0, nil
}

// ReadBits returns the next n bits, n at most 64, as the low bits of the
// result. It returns io.ErrUnexpectedEOF if fewer than n bits remain.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	if int(n) > r.Remaining() {
		return 0, io.ErrUnexpectedEOF
	}
	u, err := r.br.ReadBits(n)
	if err != nil {
		return 0, err
	}
	r.pos += int(n)
	return u, nil
}

// Pos reports how many bits have been consumed.
func (r *Reader) Pos() int { return r.pos }

// Remaining reports how many bits are left before the limit.
func (r *Reader) Remaining() int { return r.limit - r.pos }
