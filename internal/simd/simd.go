// Copyright © 2024 the mum authors. All rights reserved.

// Package simd detects, once at process startup, how wide a SIMD
// instruction the host can issue for the MUM vector layer's 64-byte
// sub-blocks. Detection happens once, at initialisation time rather than
// per invocation - exactly what a package-level var initialised from
// golang.org/x/sys/cpu gives for free, with no assembly of our own to
// maintain.
package simd

import "golang.org/x/sys/cpu"

// Width is the number of a vector block's 64-byte sub-blocks the vector
// layer would dispatch to independent lanes per SIMD instruction on this
// host: 4 for 256-bit AVX2, 2 for 128-bit SSE2 or ARM64 NEON, 1 otherwise.
// mum64 re-exports it as VectorWidth for diagnostics only; the vector layer
// never reads it, and every width would produce the same digest, because each
// sub-block runs the identical scalar block-mixer computation and the
// results are merged by commutative xor-accumulation regardless of
// grouping (see mum64/vector.go's mixVectorBlock).
var Width = detectWidth()

func detectWidth() int {
	switch {
	case cpu.X86.HasAVX2:
		return 4
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return 2
	default:
		return 1
	}
}
