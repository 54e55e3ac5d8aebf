package mum64

import "encoding/binary"

// loadLE64 reads a little-endian uint64 from the front of b. Keys are
// always interpreted little-endian regardless of host byte order, which is
// what guarantees mixBlock and mixTail produce the same digest on a
// big-endian host as on a little-endian one.
func loadLE64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// mixBlock folds one 64-byte block - eight little-endian uint64 words -
// into state. The body is a compile-time fixed count of 8 written out
// straight-line rather than as a Go for-loop so the compiler has no
// trip-count ambiguity to resolve before it can schedule the eight MUM
// calls, which are mutually independent, back to back.
func mixBlock(state uint64, block []byte) uint64 {
	_ = block[63] // single bounds check covering every Uint64 call below
	state ^= mum(loadLE64(block[0:8]), c0)
	state ^= mum(loadLE64(block[8:16]), c1)
	state ^= mum(loadLE64(block[16:24]), c2)
	state ^= mum(loadLE64(block[24:32]), c3)
	state ^= mum(loadLE64(block[32:40]), c4)
	state ^= mum(loadLE64(block[40:48]), c5)
	state ^= mum(loadLE64(block[48:56]), c6)
	state ^= mum(loadLE64(block[56:64]), c7)
	return state
}

// mixBlocks runs mixBlock over every full 64-byte block at the front of
// key and returns the updated state together with whatever is left (0-63
// bytes) for the tail mixer. The outer loop's trip count is data-dependent
// on len(key) and, unlike mixBlock's body, is never unrolled.
func mixBlocks(state uint64, key []byte) (uint64, []byte) {
	for len(key) >= 64 {
		state = mixBlock(state, key[:64])
		key = key[64:]
	}
	return state, key
}
