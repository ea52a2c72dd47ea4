// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "container/heap"

// none marks an absent child.
const none int32 = -1

// Node is a vertex of a Tree. A leaf has no children and carries Symbol;
// an internal node carries the summed frequency of its subtree.
type Node struct {
	Freq   uint64
	Left   int32
	Right  int32
	Symbol byte
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == none && n.Right == none
}

// Tree is a prefix-code tree. Nodes owns every vertex; children are
// referenced by their index in Nodes.
type Tree struct {
	Nodes []Node
	Root  int32
}

// heapItem orders nodes by frequency, then by seq.
// Leaves use their symbol value as seq and internal nodes use 256 plus
// their creation order, so equal frequencies always resolve the same way
// no matter how the frequency table was stored.
type heapItem struct {
	freq uint64
	seq  int
	node int32
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *nodeHeap) Pop() any {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]
	return it
}

// BuildTree builds the Huffman tree for freqs by repeatedly merging the two
// lightest nodes. The first node taken becomes the left child.
//
// A single-symbol alphabet yields a root whose left child is the only leaf
// and whose right child is absent, so that symbol still gets a one-bit code.
func BuildTree(freqs *Frequencies) (*Tree, error) {
	num := freqs.Len()
	if num == 0 {
		return nil, ErrEmptyAlphabet
	}
	t := &Tree{Nodes: make([]Node, 0, 2*num)}
	h := make(nodeHeap, 0, num)
	for s, f := range freqs {
		if f == 0 {
			continue
		}
		idx := int32(len(t.Nodes))
		t.Nodes = append(t.Nodes, Node{Freq: f, Left: none, Right: none, Symbol: byte(s)})
		h = append(h, heapItem{freq: f, seq: s, node: idx})
	}

	if num == 1 {
		leaf := t.Nodes[0]
		t.Nodes = append(t.Nodes, Node{Freq: leaf.Freq, Left: 0, Right: none})
		t.Root = 1
		return t, nil
	}

	heap.Init(&h)
	seq := 256
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		idx := int32(len(t.Nodes))
		t.Nodes = append(t.Nodes, Node{Freq: a.freq + b.freq, Left: a.node, Right: b.node})
		heap.Push(&h, heapItem{freq: a.freq + b.freq, seq: seq, node: idx})
		seq++
	}
	t.Root = h[0].node
	return t, nil
}
