// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"io"
)

// Resetter resets a ReadCloser returned by NewReader to read from a new
// underlying reader, allowing it to be reused.
type Resetter interface {
	Reset(r io.Reader) error
}

// NewReader returns a strict decompressor for the container read from r.
// The whole container is read and decoded on the first call to Read.
func NewReader(r io.Reader) io.ReadCloser {
	var d Decoder
	return d.NewReader(r)
}

// NewReader returns a decompressor for r that decodes with d's settings.
func (d *Decoder) NewReader(r io.Reader) io.ReadCloser {
	return &decompressor{dec: *d, r: r}
}

type decompressor struct {
	dec     Decoder
	r       io.Reader
	out     []byte
	readPos int
	err     error
	decoded bool
}

func (f *decompressor) Reset(under io.Reader) error {
	f.r = under
	f.out = nil
	f.readPos = 0
	f.err = nil
	f.decoded = false
	return nil
}

func (f *decompressor) Close() error {
	return nil
}

func (f *decompressor) Read(b []byte) (n int, err error) {
	if !f.decoded {
		f.decoded = true
		f.out, f.err = f.dec.DecodeFrom(f.r)
	}
	if f.err != nil {
		return 0, f.err
	}
	if f.readPos == len(f.out) {
		return 0, io.EOF
	}
	n = copy(b, f.out[f.readPos:])
	f.readPos += n
	return n, nil
}
