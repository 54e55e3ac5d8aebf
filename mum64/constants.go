// Copyright © 2024 the mum authors. All rights reserved.

// Package mum64 implements MUM64 and its vector-layer variant VMUM: a
// seedable, non-cryptographic 64-bit hash built from a widening-multiply
// mixing primitive. See the doc comment on hash64 in hash.go for the
// overall control flow.
package mum64

// Block-mixer constants, C[0..7] in the design. Each is odd and drawn from
// well-known 64-bit mixing constants (splitmix64, MurmurHash3's finalizer,
// the golden-ratio fraction) so the table has no internal algebraic
// relationship an attacker or a statistical test could exploit. They are
// declared as uint64 constants, not a []uint64, specifically so the
// compiler emits them as immediate operands in mixBlock rather than loads
// from a data section - block mixing should only ever touch memory on the
// key stream.
const (
	c0 uint64 = 0x9e3779b97f4a7c15
	c1 uint64 = 0xbf58476d1ce4e5b9
	c2 uint64 = 0x94d049bb133111eb
	c3 uint64 = 0xff51afd7ed558ccd
	c4 uint64 = 0xc4ceb9fe1a85ec53
	c5 uint64 = 0x2545f4914f6cdd1d
	c6 uint64 = 0x87c37b91114253d5
	c7 uint64 = 0x4cf5ad432745937f
)

// Tail-mixer constants, kept disjoint from c0..c7 so a short key's trailing
// words never land on the same multiplier a full block would have used at
// the same position.
const (
	t0 uint64 = 0xd6e8feb86659fd93
	t1 uint64 = 0xa5b85c5e198ed849
	t2 uint64 = 0x8b6d0f56c6d5d3d1
	t3 uint64 = 0x2b6a9c5f9f1e1b3b
	t4 uint64 = 0x6eed0e9da4d94bc5
	t5 uint64 = 0x3c6ef372fe94f82b
	t6 uint64 = 0x5bd1e9955bd1e995
	t7 uint64 = 0x0b17b3e7f89c0d4f
)

// Distinguished constants used once each by the top-level driver: folding
// the seed and length into the initial state, and folding the finalisation
// constant into the last state value.
const (
	cInit  uint64 = 0x27d4eb2f165667c5
	cLen   uint64 = 0x9e3779b185ebca87
	cFinal uint64 = 0xc2b2ae3d27d4eb4f
)

// ConstantTable exposes every 64-bit mixing constant MUM64/VMUM uses -
// block mixer, tail mixer, and driver alike - for tests that check the
// constant table is large enough (at least block-width, 8, entries) and
// each entry odd and distinct. Hot-path
// code never reads this array; it exists for introspection only.
var ConstantTable = [19]uint64{
	c0, c1, c2, c3, c4, c5, c6, c7,
	t0, t1, t2, t3, t4, t5, t6, t7,
	cInit, cLen, cFinal,
}
