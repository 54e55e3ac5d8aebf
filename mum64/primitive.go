package mum64

import "math/bits"

// mum is the MUM primitive itself: the 64x64->128 widening product of x
// and y with its high and low 64-bit halves folded together by xor. On
// platforms without a native widening multiply, bits.Mul64 synthesises the
// same 128-bit product from 32x32->64 partial products, bit-identically to
// a native instruction - there is no reason to hand-roll that fallback
// here.
func mum(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return hi ^ lo
}

// mumAdd is the MUM_add variant: the same widening product, but the high
// and low halves are combined with wrap-around addition instead of xor.
// The reference hash uses this fold at exactly one site, finalisation
// (hash.go); every other site uses mum.
func mumAdd(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return hi + lo
}
