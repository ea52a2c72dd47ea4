// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64 && !noasmtest
// +build amd64,!noasmtest

package huffman

import "github.com/intel/fasthuff/internal/cpu"

func init() {
	if cpu.ArchLevel > 0 {
		optimizedEncode = encodeWide
	}
}
