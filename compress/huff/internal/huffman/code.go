// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeLen is the longest code a CodeTable can hold.
// Trees built from 32-bit frequencies never get this deep.
const MaxCodeLen = 64

// Code is a bit sequence. The first bit is the most significant of the
// low Len bits of Bits.
type Code struct {
	Bits uint64
	Len  uint8
}

// String renders the code as a quoted string of 0s and 1s.
func (c Code) String() string {
	if c.Len == 0 {
		return `""`
	}
	s := strconv.FormatUint(c.Bits, 2)
	for len(s) < int(c.Len) {
		s = "0" + s
	}
	return strconv.Quote(s)
}

var _ fmt.Stringer = Code{}

// CodeTable maps every byte value to its code. Absent symbols have Len 0.
type CodeTable [256]Code

// GenerateCodes walks t depth first, appending 0 for every left edge and 1
// for every right edge, and records the path to each leaf.
func GenerateCodes(t *Tree) (*CodeTable, error) {
	if t == nil || t.Root < 0 || int(t.Root) >= len(t.Nodes) {
		return nil, ErrMalformedTree
	}
	type frame struct {
		node int32
		bits uint64
		len  uint8
	}
	var table CodeTable
	stack := make([]frame, 0, 2*MaxCodeLen)
	stack = append(stack, frame{node: t.Root})
	visited := 0
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fr.node < 0 || int(fr.node) >= len(t.Nodes) {
			return nil, fmt.Errorf("%w: node index %d out of range", ErrMalformedTree, fr.node)
		}
		// more visits than nodes means some node is shared
		if visited++; visited > len(t.Nodes) {
			return nil, fmt.Errorf("%w: node %d reached twice", ErrMalformedTree, fr.node)
		}
		n := &t.Nodes[fr.node]
		if n.IsLeaf() {
			if fr.len == 0 {
				return nil, fmt.Errorf("%w: symbol %#02x has an empty code", ErrMalformedTree, n.Symbol)
			}
			if table[n.Symbol].Len != 0 {
				return nil, fmt.Errorf("%w: symbol %#02x appears twice", ErrMalformedTree, n.Symbol)
			}
			table[n.Symbol] = Code{Bits: fr.bits, Len: fr.len}
			continue
		}
		if fr.len == MaxCodeLen {
			return nil, fmt.Errorf("%w: deeper than %d bits", ErrMalformedTree, MaxCodeLen)
		}
		if n.Left < 0 || int(n.Left) >= len(t.Nodes) {
			return nil, fmt.Errorf("%w: node %d has no left child", ErrMalformedTree, fr.node)
		}
		if n.Right == none {
			if fr.node != t.Root || !t.Nodes[n.Left].IsLeaf() {
				return nil, fmt.Errorf("%w: node %d has no right child", ErrMalformedTree, fr.node)
			}
		} else {
			stack = append(stack, frame{node: n.Right, bits: fr.bits<<1 | 1, len: fr.len + 1})
		}
		stack = append(stack, frame{node: n.Left, bits: fr.bits << 1, len: fr.len + 1})
	}
	return &table, nil
}
