package mum512

import "encoding/binary"

// Digest is the 512-bit MUM512 output and internal state, held as eight
// little-endian 64-bit limbs.
type Digest = [8]uint64

// DefaultSeed is used by callers that don't need a distinct seed per key.
var DefaultSeed = Digest{
	0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9, 0x94d049bb133111eb, 0xff51afd7ed558ccd,
	0xc4ceb9fe1a85ec53, 0x2545f4914f6cdd1d, 0x87c37b91114253d5, 0x4cf5ad432745937f,
}

// blockSize is the outer-loop unit for MUM512: eight 16-byte words.
const blockSize = 128

// Hash512 computes the one-shot MUM512 digest of key under seed. MUM512 is
// declared a candidate cryptographic primitive only: no differential or
// timing analysis is claimed, and multiplication is not assumed to run in
// constant time on any platform.
func Hash512(key []byte, seed Digest) Digest {
	state := initState(seed, uint64(len(key)))
	for len(key) >= blockSize {
		state = mixBlock512(state, key[:blockSize])
		key = key[blockSize:]
	}
	state = mixTail512(state, key)
	return finalize512(state)
}

// initState folds the seed and key length into the starting state, one
// 128-bit limb pair at a time, before any key byte is read - the same
// length-before-bytes discipline MUM64 uses, so that two keys differing
// only in length start from different states.
func initState(seed Digest, length uint64) Digest {
	var st Digest
	lenMix := u128{hi: initConst.hi ^ length, lo: initConst.lo}
	for i := 0; i < 4; i++ {
		pair := mum128(u128{hi: seed[2*i], lo: seed[2*i+1]}, lenMix)
		st[2*i], st[2*i+1] = pair.hi, pair.lo
	}
	return st
}

// mixBlock512 folds one 128-byte block - eight 16-byte words - into state.
// Each word is MUM128'd against a rotating constant and xored into a
// rotating limb pair, so that across one block every limb pair
// participates in two independent MUM128s.
func mixBlock512(state Digest, block []byte) Digest {
	for w := 0; w < blockSize/16; w++ {
		word := loadLE128(block[w*16 : w*16+16])
		pair := w % 4
		mixed := mum128(word, constants128[pair])
		state[2*pair] ^= mixed.hi
		state[2*pair+1] ^= mixed.lo
	}
	return state
}

// mixTail512 folds the residual 0-127 bytes left after mixBlock512: full
// 16-byte words first, then whatever 1-15 bytes remain, gathered
// little-endian without reading past the key buffer.
func mixTail512(state Digest, tail []byte) Digest {
	pair := 0
	for len(tail) >= 16 {
		word := loadLE128(tail[:16])
		mixed := mum128(word, constants128[pair%4])
		state[2*(pair%4)] ^= mixed.hi
		state[2*(pair%4)+1] ^= mixed.lo
		tail = tail[16:]
		pair++
	}
	if len(tail) > 0 {
		word := loadPartial128(tail)
		mixed := mum128(word, constants128[pair%4])
		state[2*(pair%4)] ^= mixed.hi
		state[2*(pair%4)+1] ^= mixed.lo
	}
	return state
}

// finalize512 applies MUM128 against finalConst to every limb pair of
// state, the 512-bit analogue of MUM64's single finalisation MUM call, then
// MUM128s each result against the xor of all four results (offset by that
// pair's round constant), so a change in any one limb pair reaches every
// limb of the digest.
func finalize512(state Digest) Digest {
	var mixed [4]u128
	var acc u128
	for i := 0; i < 4; i++ {
		mixed[i] = mum128(u128{hi: state[2*i], lo: state[2*i+1]}, finalConst)
		acc = u128{hi: acc.hi ^ mixed[i].hi, lo: acc.lo ^ mixed[i].lo}
	}
	var out Digest
	for i := 0; i < 4; i++ {
		m := mum128(mixed[i], u128{hi: acc.hi ^ constants128[i].hi, lo: acc.lo ^ constants128[i].lo})
		out[2*i], out[2*i+1] = m.hi, m.lo
	}
	return out
}

func loadLE128(b []byte) u128 {
	return u128{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// loadPartial128 gathers 1-15 residual bytes into a u128, little-endian,
// without reading past len(b).
func loadPartial128(b []byte) u128 {
	var buf [16]byte
	copy(buf[:], b)
	return u128{
		lo: binary.LittleEndian.Uint64(buf[0:8]),
		hi: binary.LittleEndian.Uint64(buf[8:16]),
	}
}
