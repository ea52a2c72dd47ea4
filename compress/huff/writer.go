// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"errors"
	"io"

	"github.com/intel/fasthuff/compress/huff/internal/huffman"
)

var errClosed = errors.New("huff: write to closed writer")

// Writer compresses everything written to it into a single container.
// The Huffman code depends on the whole input, so nothing reaches the
// underlying writer before Close.
type Writer struct {
	err    error
	w      io.Writer
	buffer []byte
	freqs  huffman.Frequencies
	closed bool
}

// NewWriter returns a Writer that emits its container to under on Close.
func NewWriter(under io.Writer) *Writer {
	return &Writer{w: under}
}

// Write buffers data and updates the running histogram.
func (w *Writer) Write(data []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errClosed
	}
	w.buffer = append(w.buffer, data...)
	w.freqs.Add(data)
	return len(data), nil
}

// Reset discards buffered data and makes the Writer emit to under.
func (w *Writer) Reset(under io.Writer) {
	w.err = nil
	w.w = under
	w.buffer = w.buffer[:0]
	w.freqs = huffman.Frequencies{}
	w.closed = false
}

// Close compresses the buffered input and writes the container.
// Closing twice is a no-op.
func (w *Writer) Close() (err error) {
	if w.err != nil || w.closed {
		return w.err
	}
	w.closed = true
	out, err := compress(nil, w.buffer, &w.freqs)
	if err != nil {
		w.err = err
		return err
	}
	if _, err = w.w.Write(out); err != nil {
		w.err = err
	}
	return err
}
