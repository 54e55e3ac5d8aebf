package mum64

// mixTail folds the residual 0-63 bytes left after mixBlocks. Full
// trailing 64-bit words are mixed first, each against one of t0..t6 (t7 is
// reserved for the final partial word below so it never repeats a pattern
// already used on a full tail word); whatever is left after that - 0 to 7
// bytes - is gathered into a single partial word and mixed once.
//
// Full tail words are added into state rather than xored: mum maps an
// all-ones word to all-ones under every constant, so two such words would
// cancel under xor and collide with two all-zero words.
func mixTail(state uint64, tail []byte) uint64 {
	tailConstants := [7]uint64{t0, t1, t2, t3, t4, t5, t6}
	k := 0
	for len(tail) >= 8 {
		state += mum(loadLE64(tail[:8]), tailConstants[k])
		tail = tail[8:]
		k++
	}
	return mixPartialWord(state, tail)
}

// mixPartialWord mixes the final r = R mod 8 bytes (0 <= r <= 7). Bytes
// are gathered little-endian via shift-or, dispatched by length through an
// eight-way switch so exactly r bytes are read and nothing past the end of
// the key buffer is ever touched.
func mixPartialWord(state uint64, b []byte) uint64 {
	var w uint64
	switch len(b) {
	case 0:
		return state
	case 7:
		w |= uint64(b[6]) << 48
		fallthrough
	case 6:
		w |= uint64(b[5]) << 40
		fallthrough
	case 5:
		w |= uint64(b[4]) << 32
		fallthrough
	case 4:
		w |= uint64(b[3]) << 24
		fallthrough
	case 3:
		w |= uint64(b[2]) << 16
		fallthrough
	case 2:
		w |= uint64(b[1]) << 8
		fallthrough
	case 1:
		w |= uint64(b[0])
	default:
		panic("mum64: mixPartialWord given a residual longer than one word")
	}
	// Length is folded in here too (not just at the top-level driver) so
	// that e.g. a single trailing 0x00 byte and two trailing 0x00 bytes,
	// which would otherwise gather to the same w, still mix differently.
	return state ^ mum(w, t7^uint64(len(b)))
}
