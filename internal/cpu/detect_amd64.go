// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64 && !noasmtest
// +build amd64,!noasmtest

package cpu

import "golang.org/x/sys/cpu"

// cpuArchLevel maps the x86 feature flags reported by CPUID to a level.
// Returns:
// - 0: no BMI2, variable shifts are too slow for the word encoder
// - 1: BMI2 available
// - 2: BMI2 and AVX2 available
func cpuArchLevel() int {
	if !cpu.X86.HasBMI2 {
		return 0
	}
	if cpu.X86.HasAVX2 {
		return 2
	}
	return 1
}
