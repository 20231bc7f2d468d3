// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedExtractBit_Roundtrip(t *testing.T) {
	is := assert.New(t)

	for pos := uint8(0); pos <= 7; pos++ {
		bitIndex := BitIndex(pos)
		for carrier := 0; carrier <= 0xFF; carrier += 17 {
			for _, bit := range []byte{0, 1} {
				embedded := embedBit(bitIndex, byte(carrier), bit)
				is.Equal(bit, extractBit(bitIndex, embedded), "pos=%d carrier=%d bit=%d", pos, carrier, bit)

				mask := byte(1) << pos
				is.Equal(byte(carrier)&^mask, embedded&^mask, "non-target bits must be unchanged")
			}
		}
	}
}

func TestParseBitIndex(t *testing.T) {
	is := require.New(t)

	for v := uint8(0); v <= 7; v++ {
		b, err := ParseBitIndex(v)
		is.NoError(err)
		is.Equal(BitIndex(v), b)
	}

	_, err := ParseBitIndex(8)
	is.ErrorIs(err, ErrConfig)
}

func TestBitIndex_String(t *testing.T) {
	assert.Equal(t, "Bit0", Bit0.String())
	assert.Equal(t, "Bit7", Bit7.String())
}
