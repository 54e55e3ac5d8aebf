// Copyright © 2024 the mum authors. All rights reserved.

// Package mum512 implements MUM512, a 512-bit-state candidate
// cryptographic hash built from MUM128, the 128x128->256 widening-multiply
// mixing primitive. MUM512 makes no constant-time or differential-analysis
// claims.
package mum512

import "math/bits"

// u128 holds a 128-bit unsigned integer as two 64-bit limbs.
type u128 struct {
	hi, lo uint64
}

// mul128 computes the full 256-bit product of two 128-bit operands via the
// schoolbook expansion into four 64x64->128 partial products, the portable
// synthesis for targets without a native 128x128->256 multiply.
func mul128(a, b u128) (hi, lo u128) {
	llHi, llLo := bits.Mul64(a.lo, b.lo)
	lhHi, lhLo := bits.Mul64(a.lo, b.hi)
	hlHi, hlLo := bits.Mul64(a.hi, b.lo)
	hhHi, hhLo := bits.Mul64(a.hi, b.hi)

	// Bits 64-127 of the product: llHi + hlLo + lhLo.
	r1, carryA := bits.Add64(llHi, hlLo, 0)
	r1, carryB := bits.Add64(r1, lhLo, 0)
	carry1 := carryA + carryB

	// Bits 128-191: hhLo + hlHi + lhHi + carry1.
	r2, carryC := bits.Add64(hhLo, hlHi, 0)
	r2, carryD := bits.Add64(r2, lhHi, 0)
	r2, carryE := bits.Add64(r2, carry1, 0)
	carry2 := carryC + carryD + carryE

	// Bits 192-255: hhHi + carry2. This limb is the top of the 256-bit
	// result, so plain addition cannot overflow beyond what the result
	// already represents.
	r3 := hhHi + carry2

	return u128{hi: r3, lo: r2}, u128{hi: r1, lo: llLo}
}

// mum128 is the MUM128 primitive: the 256-bit product of a and b with its
// two 128-bit halves folded by wrap-around addition - the addition-folding
// MUM variant, applied at 128-bit width.
func mum128(a, b u128) u128 {
	hi, lo := mul128(a, b)
	sumLo, carry := bits.Add64(hi.lo, lo.lo, 0)
	sumHi, _ := bits.Add64(hi.hi, lo.hi, carry)
	return u128{hi: sumHi, lo: sumLo}
}
