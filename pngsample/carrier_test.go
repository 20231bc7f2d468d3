// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package pngsample

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode_NRGBASource(t *testing.T) {
	is := require.New(t)

	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}

	carrier, err := Decode(bytes.NewReader(encodeTestPNG(t, src)))
	is.NoError(err)
	is.Equal(4*3*4, carrier.Capacity())
}

func TestDecode_PalettedSourceNormalizesToNRGBA(t *testing.T) {
	is := require.New(t)

	palette := color.Palette{
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{G: 255, A: 255},
	}
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)
	src.SetColorIndex(0, 1, 1)
	src.SetColorIndex(1, 1, 0)

	carrier, err := Decode(bytes.NewReader(encodeTestPNG(t, src)))
	is.NoError(err)
	is.Equal(2*2*4, carrier.Capacity())
}

func TestCarrier_EncodeRoundtrip(t *testing.T) {
	is := assert.New(t)
	require := require.New(t)

	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 7)
	}

	carrier, err := Decode(bytes.NewReader(encodeTestPNG(t, src)))
	require.NoError(err)

	var out bytes.Buffer
	require.NoError(carrier.Encode(&out))

	roundtripped, err := Decode(bytes.NewReader(out.Bytes()))
	require.NoError(err)
	is.Equal(carrier.Samples(), roundtripped.Samples())
}

func TestCarrier_SamplesAreMutable(t *testing.T) {
	is := require.New(t)

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	carrier, err := Decode(bytes.NewReader(encodeTestPNG(t, src)))
	is.NoError(err)

	samples := carrier.Samples()
	samples[0] = 0x42
	is.Equal(byte(0x42), carrier.Samples()[0])
}
