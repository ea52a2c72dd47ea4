// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huff implements a static Huffman file format.
//
// A compressed stream stores the byte histogram of the original input followed
// by the Huffman-coded input. The decoder rebuilds the same tree from the
// histogram, so the stream is self-describing. Both directions hold the whole
// input in memory.
package huff

import (
	"bytes"
	"errors"
	"io"

	"github.com/intel/fasthuff/compress/huff/internal/bitio"
	"github.com/intel/fasthuff/compress/huff/internal/huffman"
)

// A CorruptInputError reports the offset of the first byte of the container
// found to be invalid.
type CorruptInputError = huffman.CorruptInputError

var (
	ErrEmptyAlphabet   = huffman.ErrEmptyAlphabet
	ErrMalformedTree   = huffman.ErrMalformedTree
	ErrUnknownSymbol   = huffman.ErrUnknownSymbol
	ErrTruncatedStream = huffman.ErrTruncatedStream
)

var (
	// ErrTruncatedContainer means the input ended before a field of the
	// container was complete.
	ErrTruncatedContainer = errors.New("huff: truncated container")
	// ErrTooLarge means a byte value occurs more often than a 32-bit
	// frequency can record.
	ErrTooLarge = errors.New("huff: input too large")
)

// Compress returns the compressed form of src.
// An empty src compresses to a container with an empty symbol table.
func Compress(src []byte) ([]byte, error) {
	freqs := huffman.Count(src)
	return compress(nil, src, &freqs)
}

// compress appends the container for src, whose histogram is freqs, to dst.
func compress(dst, src []byte, freqs *huffman.Frequencies) ([]byte, error) {
	dst, err := appendFrequencies(dst, freqs)
	if err != nil {
		return nil, err
	}
	if len(src) == 0 {
		return append(dst, 0), nil
	}
	tree, err := huffman.BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	codes, err := huffman.GenerateCodes(tree)
	if err != nil {
		return nil, err
	}
	w := bitio.NewWriter(len(src) * 8)
	if err := huffman.Encode(w, src, codes); err != nil {
		return nil, err
	}
	padding, err := w.Flush()
	if err != nil {
		return nil, err
	}
	dst = append(dst, padding)
	return append(dst, w.Bytes()...), nil
}

// Decompress returns the original bytes of the container src.
// It fails with ErrTruncatedStream if the code bits do not decode to exactly
// the number of bytes recorded in the symbol table.
func Decompress(src []byte) ([]byte, error) {
	var d Decoder
	return d.Decode(src)
}

// Decoder decompresses containers.
// The zero value is a strict decoder.
type Decoder struct {
	// Lenient makes the decoder return what it could decode from a
	// truncated code stream instead of failing with ErrTruncatedStream.
	// Structurally invalid input still fails.
	Lenient bool
}

// Decode returns the original bytes of the container src.
func (d *Decoder) Decode(src []byte) ([]byte, error) {
	return d.DecodeFrom(bytes.NewReader(src))
}

// DecodeFrom reads a whole container from r and returns the original bytes.
func (d *Decoder) DecodeFrom(r io.Reader) ([]byte, error) {
	c, err := readContainer(r)
	if err != nil {
		return nil, err
	}
	if c.symbols == 0 {
		return []byte{}, nil
	}
	tree, err := huffman.BuildTree(&c.freqs)
	if err != nil {
		return nil, err
	}
	want := c.freqs.Total()
	// every symbol costs at least one bit
	dst := make([]byte, 0, min(want, uint64(c.bits())))
	out, err := huffman.Decode(bitio.NewReader(c.payload, c.bits()), tree,
		dst, want, huffman.DecodeOptions{Lenient: d.Lenient})
	if err != nil {
		return nil, shiftOffset(err, headerSize(c.symbols))
	}
	return out, nil
}
