// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"

	"github.com/intel/fasthuff/compress/huff/internal/bitio"
)

// optimizedEncode is installed by architecture specific init code.
var optimizedEncode func(w *bitio.Writer, data []byte, codes *CodeTable) error

// Encode appends the code of every byte of data to w, in input order.
func Encode(w *bitio.Writer, data []byte, codes *CodeTable) error {
	if optimizedEncode != nil {
		return optimizedEncode(w, data, codes)
	}
	return encodeBytes(w, data, codes)
}

func encodeBytes(w *bitio.Writer, data []byte, codes *CodeTable) error {
	for j := 0; j < len(data); j++ {
		c := codes[data[j]]
		if c.Len == 0 {
			return unknownSymbol(data[j], j)
		}
		if err := w.WriteBits(c.Bits, c.Len); err != nil {
			return err
		}
	}
	return nil
}

// encodeWide is encodeBytes on top of the 64-bit store path of the writer.
func encodeWide(w *bitio.Writer, data []byte, codes *CodeTable) error {
	for j := 0; j < len(data); j++ {
		c := codes[data[j]]
		if c.Len == 0 {
			return unknownSymbol(data[j], j)
		}
		if err := w.WriteWide(c.Bits, c.Len); err != nil {
			return err
		}
	}
	return nil
}

func unknownSymbol(b byte, offset int) error {
	return fmt.Errorf("%w: byte %#02x at offset %d", ErrUnknownSymbol, b, offset)
}

// DecodeOptions tunes Decode.
type DecodeOptions struct {
	// Lenient drops a partial trailing code and a short symbol count
	// instead of reporting ErrTruncatedStream.
	Lenient bool
}

// Decode walks t from the root for every bit of r, 0 to the left and 1 to
// the right, appending a symbol to dst at each leaf. want is the number of
// symbols the stream is expected to hold.
//
// Offsets in a CorruptInputError are relative to the first byte of r.
func Decode(r *bitio.Reader, t *Tree, dst []byte, want uint64, opts DecodeOptions) ([]byte, error) {
	if t == nil || t.Root < 0 || int(t.Root) >= len(t.Nodes) {
		return dst, ErrMalformedTree
	}
	nodes := t.Nodes
	cur := t.Root
	var got uint64
	for {
		bit, err := r.ReadBit()
		if err != nil {
			break
		}
		next := nodes[cur].Left
		if bit == 1 {
			next = nodes[cur].Right
		}
		if next < 0 || int(next) >= len(nodes) {
			return dst, CorruptInputError((r.Pos() - 1) / 8)
		}
		cur = next
		if !nodes[cur].IsLeaf() {
			continue
		}
		if got == want {
			return dst, CorruptInputError((r.Pos() - 1) / 8)
		}
		dst = append(dst, nodes[cur].Symbol)
		got++
		cur = t.Root
	}
	if cur != t.Root && got == want {
		// stray bits after the last symbol
		return dst, CorruptInputError((r.Pos() - 1) / 8)
	}
	if opts.Lenient {
		return dst, nil
	}
	if cur != t.Root {
		return dst, fmt.Errorf("%w: bits end inside a code", ErrTruncatedStream)
	}
	if got < want {
		return dst, fmt.Errorf("%w: decoded %d of %d symbols", ErrTruncatedStream, got, want)
	}
	return dst, nil
}
