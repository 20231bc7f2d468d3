// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package stego

import "github.com/mathyslv/pnger-go/internal/rng"

// buildSequence returns the ordered sample-byte offsets, relative to the
// start of region, that the body codec will read or write, in the order
// it will use them. The returned slice holds all regionLen offsets, but
// only the first count are meaningful; the codecs ignore the rest.
//
// Linear patterns use identity order. Random patterns drive a ChaCha20
// partial Fisher-Yates shuffle seeded from the resolved seed, so embed
// and extract agree on the exact same offsets given the same seed.
func buildSequence(pattern Pattern, seed [32]byte, regionLen, count int) []uint32 {
	indices := make([]uint32, regionLen)
	for i := range indices {
		indices[i] = uint32(i)
	}

	if pattern == PatternRandom && count > 0 {
		stream := rng.NewStream(seed)
		stream.PartialShuffle(indices, count)
	}

	return indices
}
