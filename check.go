// Package fasthuff provides a static Huffman compressor with a self-describing
// container format. The codec lives in compress/huff; encoding switches to a
// word-at-a-time bit writer on CPUs that support it.
package fasthuff

import "github.com/intel/fasthuff/internal/cpu"

// Optimized reports whether the optimized encoder is active.
// It returns true if the CPU supports BMI2 (ArchLevel > 0), false otherwise,
// in which case the generic byte-at-a-time encoder is used.
func Optimized() bool {
	return cpu.ArchLevel > 0
}
