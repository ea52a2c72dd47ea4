// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// MoffatHuffmanCode implements In-Place Calculation of Minimum-Redundancy Codes.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
//
// It produces optimal code lengths without building a tree, which is enough
// to size a container before encoding it. A MoffatHuffmanCode can be reused
// to avoid allocations.
type MoffatHuffmanCode struct {
	counts decSymCounts
	w      []uint64
}

// codeLens replaces the weights in w, sorted in decreasing order, with
// their code lengths. It returns the longest length.
func (m *MoffatHuffmanCode) codeLens(w []uint64) uint64 {
	// phase 1
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 1
		return 1
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// find first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] = w[leaf]
			leaf--
		}

		// find second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3
	avail := 1
	used := 0
	depth := 0
	root = 1
	next := 0
	for avail > 0 {
		// count internal nodes used at depth depth
		for ; root < n && w[root] == uint64(depth); root++ {
			used++
		}
		// assign as leaves any nodes that are not internal
		for ; avail > used; avail-- {
			w[next] = uint64(depth)
			next = next + 1
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[len(w)-1]
}

// Generate writes the optimal code length of every symbol of freqs into
// codeLens, 0 for absent symbols, and returns the number of symbols.
func (m *MoffatHuffmanCode) Generate(freqs *Frequencies, codeLens *[256]uint8) (num int) {
	m.counts = m.counts[:0]
	for s, f := range freqs {
		if f != 0 {
			m.counts = append(m.counts, symCount{sym: byte(s), count: f})
		}
	}
	for i := range codeLens {
		codeLens[i] = 0
	}

	sortDecSymCounts(m.counts)

	if cap(m.w) < len(m.counts) {
		m.w = make([]uint64, len(m.counts), 256)
	}
	m.w = m.w[:len(m.counts)]
	for i, v := range m.counts {
		m.w[i] = v.count
	}

	m.codeLens(m.w)
	for i, v := range m.w {
		codeLens[m.counts[i].sym] = uint8(v)
	}
	return len(m.counts)
}

// EncodedBits returns the length in bits of the optimal encoding of an input
// with the histogram freqs.
func (m *MoffatHuffmanCode) EncodedBits(freqs *Frequencies) uint64 {
	var lens [256]uint8
	m.Generate(freqs, &lens)
	var total uint64
	for s, f := range freqs {
		total += f * uint64(lens[s])
	}
	return total
}
