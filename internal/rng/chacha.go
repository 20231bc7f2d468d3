// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package rng provides a deterministic, seed-reproducible source of
// uniform random values built on ChaCha20, and a Fisher-Yates partial
// shuffle driven by that source.
//
// Unlike a general-purpose CSPRNG pool (see sixafter/prng-chacha), this
// stream is never rekeyed and never shared across calls: the same 32-byte
// seed must always produce the same byte stream, on any platform, so that
// random-pattern embeds and extracts agree bit-for-bit.
package rng

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// zeroNonce is fixed because the seed is the only variable keystream
// input; the block counter starts at 0, per the ChaCha20 stream contract.
var zeroNonce = make([]byte, chacha20.NonceSize)

// Stream is a deterministic ChaCha20 keystream seeded with a 32-byte key.
type Stream struct {
	cipher *chacha20.Cipher
	zero   []byte
}

// NewStream constructs a Stream from a 32-byte seed. Construction cannot
// fail: chacha20.NewUnauthenticatedCipher only errors on malformed
// key/nonce sizes, which are both fixed here.
func NewStream(seed [32]byte) *Stream {
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], zeroNonce)
	if err != nil {
		// Unreachable: key and nonce sizes are both correct by construction.
		panic("rng: chacha20 cipher construction failed: " + err.Error())
	}
	return &Stream{cipher: cipher}
}

// next fills b with keystream bytes produced by XORing the cipher over an
// internal zero buffer, mirroring sixafter/prng-chacha's UseZeroBuffer path.
func (s *Stream) next(b []byte) {
	if cap(s.zero) < len(b) {
		s.zero = make([]byte, len(b))
	}
	zero := s.zero[:len(b)]
	for i := range zero {
		zero[i] = 0
	}
	s.cipher.XORKeyStream(b, zero)
}

// Uint32 returns one uniformly distributed uint32 drawn from the stream.
func (s *Stream) Uint32() uint32 {
	var buf [4]byte
	s.next(buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

// boundedUint32 returns a value uniformly distributed in [0, n) using
// Lemire's rejection-free-in-expectation method, avoiding modulo bias.
func (s *Stream) boundedUint32(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	m := uint64(s.Uint32()) * uint64(n)
	low := uint32(m)
	if low < n {
		threshold := -n % n
		for low < threshold {
			m = uint64(s.Uint32()) * uint64(n)
			low = uint32(m)
		}
	}
	return uint32(m >> 32)
}

// PartialShuffle performs an in-place Fisher-Yates shuffle of the first
// count elements of indices, drawing swap partners from the stream. The
// tie-break matches spec: position i swaps with i + uniform(0..=n-1-i).
// count must be <= len(indices).
func (s *Stream) PartialShuffle(indices []uint32, count int) {
	n := len(indices)
	for i := 0; i < count; i++ {
		span := uint32(n - i)
		j := i + int(s.boundedUint32(span))
		indices[i], indices[j] = indices[j], indices[i]
	}
}
