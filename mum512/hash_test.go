package mum512

import (
	"math/bits"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	f := func(key []byte) bool {
		return Hash512(key, DefaultSeed) == Hash512(key, DefaultSeed)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestLengthSensitivity(t *testing.T) {
	d0 := Hash512(nil, DefaultSeed)
	d1 := Hash512([]byte{0x00}, DefaultSeed)
	d2 := Hash512([]byte{0x00, 0x00}, DefaultSeed)
	require.NotEqual(t, d0, d1)
	require.NotEqual(t, d1, d2)
	require.NotEqual(t, d0, d2)
}

// TestTailCoverage exercises every residual length 1..127 against
// blockSize: two keys with a common block-aligned prefix but distinct
// final R bytes must digest differently (R = 0 leaves no byte to differ).
func TestTailCoverage(t *testing.T) {
	prefix := make([]byte, 256)
	for i := range prefix {
		prefix[i] = byte(i)
	}
	for r := 1; r < blockSize; r++ {
		a := append(append([]byte{}, prefix...), make([]byte, r)...)
		b := append(append([]byte{}, prefix...), make([]byte, r)...)
		for i := range b[len(b)-r:] {
			b[len(b)-r+i] = 0xff
		}
		require.NotEqual(t, Hash512(a, DefaultSeed), Hash512(b, DefaultSeed), "R=%d", r)
	}
}

// TestAvalanche checks that, at 512-bit width, flipping one input bit
// flips roughly half the output bits, summed across all eight limbs.
func TestAvalanche(t *testing.T) {
	for _, n := range []int{1, 16, 128, 256} {
		key := make([]byte, n)
		for i := range key {
			key[i] = byte(i * 31)
		}
		base := Hash512(key, DefaultSeed)
		total, flips := 0, 0
		for byteIdx := 0; byteIdx < n; byteIdx++ {
			for bit := 0; bit < 8; bit++ {
				flipped := append([]byte{}, key...)
				flipped[byteIdx] ^= 1 << bit
				out := Hash512(flipped, DefaultSeed)
				for limb := 0; limb < 8; limb++ {
					flips += bits.OnesCount64(base[limb] ^ out[limb])
					total += 64
				}
			}
		}
		ratio := float64(flips) / float64(total)
		require.InDelta(t, 0.5, ratio, 0.1, "n=%d ratio=%f", n, ratio)
	}
}

func TestMul128KnownValues(t *testing.T) {
	// 2^64 * 2^64 = 2^128, i.e. hi.lo == 1, everything else zero.
	hi, lo := mul128(u128{hi: 1, lo: 0}, u128{hi: 1, lo: 0})
	require.Equal(t, u128{hi: 0, lo: 1}, hi)
	require.Equal(t, u128{hi: 0, lo: 0}, lo)

	// (2^64 - 1) * 1 = 2^64 - 1.
	hi, lo = mul128(u128{hi: 0, lo: ^uint64(0)}, u128{hi: 0, lo: 1})
	require.Equal(t, u128{hi: 0, lo: 0}, hi)
	require.Equal(t, u128{hi: 0, lo: ^uint64(0)}, lo)
}
