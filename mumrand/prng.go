// Copyright © 2024 the mum authors. All rights reserved.

// Package mumrand implements the MUM-PRNG and MUM512-PRNG deterministic
// generators: each is parameterised by a hash function, a state register,
// and a counter, and next() returns H(state XOR counter), after which
// state becomes that return value and counter advances by one.
package mumrand

import (
	"encoding/binary"

	"github.com/vnmakarov/mum/mum512"
	"github.com/vnmakarov/mum/mum64"
)

// PRNG64 is the MUM-PRNG built on mum64.Hash64.
type PRNG64 struct {
	state   uint64
	counter uint64
}

// NewPRNG64 seeds a PRNG64. The counter always starts at zero.
func NewPRNG64(seed uint64) *PRNG64 {
	return &PRNG64{state: seed}
}

// Next returns the next value in the stream and advances state and
// counter.
func (p *PRNG64) Next() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], p.state^p.counter)
	v := mum64.Hash64(buf[:], mum64.DefaultSeed)
	p.counter++
	p.state = v
	return v
}

// PRNG512 is the MUM512-PRNG built on mum512.Hash512.
type PRNG512 struct {
	state   mum512.Digest
	counter uint64
}

// NewPRNG512 seeds a PRNG512. The counter always starts at zero.
func NewPRNG512(seed mum512.Digest) *PRNG512 {
	return &PRNG512{state: seed}
}

// Next returns the next 512-bit value in the stream and advances state and
// counter. The counter is folded into the state's first limb only; at
// 512 bits of state there is no need to spread one 64-bit counter across
// every limb for the stream to remain well mixed.
func (p *PRNG512) Next() mum512.Digest {
	mixed := p.state
	mixed[0] ^= p.counter

	var buf [64]byte
	for i, limb := range mixed {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], limb)
	}

	v := mum512.Hash512(buf[:], mum512.DefaultSeed)
	p.counter++
	p.state = v
	return v
}
