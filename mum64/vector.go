package mum64

import "github.com/vnmakarov/mum/internal/simd"

// VectorWidth reports how many of a vector block's 64-byte sub-blocks a
// real SIMD unit could dispatch to independent lanes at once on this host
// (see internal/simd). It is exposed for diagnostics and demonstration
// only - mixVectorBlock's output does not depend on it.
var VectorWidth = simd.Width

// vectorGateLength is the engagement threshold: the vector layer never
// runs for keys shorter than this.
const vectorGateLength = 512

// vectorBlockSize is the unit of work the vector layer consumes per
// engagement: eight 64-byte sub-blocks. It matches vectorGateLength, so
// "key rounded down to a vector block" and "whatever remains after the
// vector layer" describe a clean split with no overlap.
const vectorBlockSize = 512

// vectorSubBlocks is the number of 64-byte sub-blocks in one vector block.
const vectorSubBlocks = vectorBlockSize / 64

// mixVector consumes key in vectorBlockSize chunks for as long as the
// overall key is at least vectorGateLength bytes, and returns the updated
// state together with whatever remains for the scalar block mixer and tail
// mixer. If key is shorter than the gate, it is returned unchanged.
func mixVector(state uint64, key []byte) (uint64, []byte) {
	if len(key) < vectorGateLength {
		return state, key
	}
	for len(key) >= vectorBlockSize {
		state = mixVectorBlock(state, key[:vectorBlockSize])
		key = key[vectorBlockSize:]
	}
	return state, key
}

// mixVectorBlock folds one vectorBlockSize-byte block into state by running
// mixBlock - the exact same per-word computation the scalar path uses - over
// each of the block's eight 64-byte sub-blocks in turn. mixBlock's
// contribution to state is a pure xor-sum of mum(word, c) terms; it never
// reads state for anything but the accumulator. That means the eight
// sub-blocks' contributions commute with each other, so a real SIMD unit
// could run several of them across independent lanes and fold the lane
// results together in any order without changing the total. This function
// therefore produces the identical output to calling mixBlock eight times
// in sequence over the same bytes, which is exactly what the scalar block
// mixer does - not merely an output that happens to agree with it.
func mixVectorBlock(state uint64, block []byte) uint64 {
	for i := 0; i < vectorSubBlocks; i++ {
		state = mixBlock(state, block[i*64:i*64+64])
	}
	return state
}
