// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_Uint32IsDeterministic(t *testing.T) {
	is := assert.New(t)

	seed := [32]byte{1, 2, 3, 4}
	a := NewStream(seed)
	b := NewStream(seed)

	for i := 0; i < 8; i++ {
		is.Equal(a.Uint32(), b.Uint32())
	}
}

func TestStream_DifferentSeedsDiverge(t *testing.T) {
	is := assert.New(t)

	a := NewStream([32]byte{1})
	b := NewStream([32]byte{2})

	is.NotEqual(a.Uint32(), b.Uint32())
}

func TestPartialShuffle_IsPermutation(t *testing.T) {
	is := assert.New(t)

	indices := make([]uint32, 100)
	for i := range indices {
		indices[i] = uint32(i)
	}

	NewStream([32]byte{9}).PartialShuffle(indices, 40)

	seen := make(map[uint32]bool, len(indices))
	for _, v := range indices {
		is.False(seen[v])
		seen[v] = true
	}
	is.Len(seen, len(indices))
}

func TestPartialShuffle_DeterministicGivenSeed(t *testing.T) {
	is := assert.New(t)

	a := make([]uint32, 50)
	b := make([]uint32, 50)
	for i := range a {
		a[i] = uint32(i)
		b[i] = uint32(i)
	}

	seed := [32]byte{0xAB}
	NewStream(seed).PartialShuffle(a, 20)
	NewStream(seed).PartialShuffle(b, 20)
	is.Equal(a, b)
}

func TestPartialShuffle_ZeroCountIsNoOp(t *testing.T) {
	is := assert.New(t)

	indices := []uint32{0, 1, 2, 3}
	want := []uint32{0, 1, 2, 3}
	NewStream([32]byte{5}).PartialShuffle(indices, 0)
	is.Equal(want, indices)
}
