package mum64

// DefaultSeed is used by callers that don't need a distinct seed per key.
// It is an arbitrary fixed non-zero literal.
const DefaultSeed uint64 = 0x9e3779b97f4a7c15

// Hash64 computes the one-shot MUM64 digest of key under seed. It performs
// no heap allocation and never returns an error: every byte slice of every
// length, including nil and the empty slice, is a valid key.
//
// For identical (key, seed) the digest is identical on every architecture
// this package supports, vector layer engaged or not.
func Hash64(key []byte, seed uint64) uint64 {
	return hash64(key, seed, true)
}

// VHash64 is VMUM: the same hash as Hash64, engaging the vector layer for
// keys of 512 bytes or more. It is a distinct entry point only so callers
// and tests can name the vector-layer code path explicitly; the digest it
// returns is identical to Hash64 for every input.
func VHash64(key []byte, seed uint64) uint64 {
	return hash64(key, seed, true)
}

// hash64Scalar forces the scalar-only path regardless of key length. It is
// unexported and used only by this package's own tests to check
// scalar/vector equivalence directly, rather than relying on Hash64 and
// VHash64 happening to share an implementation.
func hash64Scalar(key []byte, seed uint64) uint64 {
	return hash64(key, seed, false)
}

// hash64 is the shared driver behind Hash64, VHash64, and hash64Scalar: mix
// the seed and length into the initial state, optionally run the vector
// layer, run the scalar block mixer over whatever full 64-byte blocks
// remain, fold in the tail, and finalise.
func hash64(key []byte, seed uint64, useVector bool) uint64 {
	length := uint64(len(key))
	// Length enters state before any key byte does, so two keys that
	// differ only in length start from different states and a common
	// prefix can never produce a length-extension collision.
	state := mum(seed^cInit, length^cLen)

	rest := key
	if useVector {
		state, rest = mixVector(state, rest)
	}
	state, rest = mixBlocks(state, rest)
	state = mixTail(state, rest)

	return mumAdd(state, cFinal)
}
