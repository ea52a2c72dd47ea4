// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "slices"

type symCount struct {
	count uint64
	sym   byte
}

type decSymCounts []symCount

// sortDecSymCounts orders counts from the most to the least frequent.
// Equal counts keep ascending symbol order.
func sortDecSymCounts(arr decSymCounts) {
	slices.SortFunc(arr, func(a, b symCount) int {
		switch {
		case a.count > b.count:
			return -1
		case a.count < b.count:
			return 1
		}
		return int(a.sym) - int(b.sym)
	})
}
