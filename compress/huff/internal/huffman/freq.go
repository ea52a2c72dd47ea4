// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// Frequencies is the histogram of byte values in an input.
// Frequencies[s] == 0 means s is not part of the alphabet.
type Frequencies [256]uint64

// Count returns the histogram of data.
func Count(data []byte) Frequencies {
	var f Frequencies
	f.Add(data)
	return f
}

// Add accumulates the bytes of data into f.
func (f *Frequencies) Add(data []byte) {
	for j := 0; j < len(data); j++ {
		f[data[j]]++
	}
}

// Len reports the number of distinct symbols.
func (f *Frequencies) Len() int {
	n := 0
	for _, v := range f {
		if v != 0 {
			n++
		}
	}
	return n
}

// Total reports the sum of all counts, which is the length of the counted input.
func (f *Frequencies) Total() uint64 {
	var t uint64
	for _, v := range f {
		t += v
	}
	return t
}

// Symbols returns the present symbols in ascending order.
func (f *Frequencies) Symbols() []byte {
	syms := make([]byte, 0, 256)
	for s, v := range f {
		if v != 0 {
			syms = append(syms, byte(s))
		}
	}
	return syms
}
