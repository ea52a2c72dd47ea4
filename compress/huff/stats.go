// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"io"

	"github.com/intel/fasthuff/compress/huff/internal/huffman"
)

// Stats describes a container.
type Stats struct {
	Symbols       int    // distinct byte values
	InputSize     uint64 // original length in bytes
	EncodedBits   uint64 // code bits, without padding
	Padding       uint8
	ContainerSize uint64
}

// Ratio reports ContainerSize / InputSize, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.InputSize == 0 {
		return 0
	}
	return float64(s.ContainerSize) / float64(s.InputSize)
}

// Estimate computes the Stats that Compress(src) would produce, without
// building a tree or encoding anything.
func Estimate(src []byte) Stats {
	freqs := huffman.Count(src)
	var m huffman.MoffatHuffmanCode
	bits := m.EncodedBits(&freqs)
	s := Stats{
		Symbols:     freqs.Len(),
		InputSize:   freqs.Total(),
		EncodedBits: bits,
		Padding:     uint8((8 - bits%8) % 8),
	}
	s.ContainerSize = uint64(headerSize(s.Symbols)) + (bits+7)/8
	return s
}

// Inspect reads a container from r and reports its Stats without decoding
// the code bits.
func Inspect(r io.Reader) (Stats, error) {
	c, err := readContainer(r)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Symbols:       c.symbols,
		InputSize:     c.freqs.Total(),
		EncodedBits:   uint64(c.bits()),
		Padding:       c.padding,
		ContainerSize: uint64(c.size()),
	}, nil
}
