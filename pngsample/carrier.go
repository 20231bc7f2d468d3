// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package pngsample adapts a decoded PNG image to the dense byte buffer
// the stego package operates on, and re-encodes that buffer back into a
// PNG. It normalizes every source color model to image.NRGBA so the
// carrier is always four interleaved 8-bit channels per pixel, regardless
// of what the source PNG's color type was.
package pngsample

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Carrier wraps a decoded image in its normalized NRGBA form. Samples
// exposes the raw, mutable byte buffer the stego package embeds into and
// extracts from directly; its length is Width*Height*4.
type Carrier struct {
	img *image.NRGBA
}

// Decode reads a PNG from r and normalizes it to NRGBA. Any image
// decodable by image/png with another color model (paletted, gray,
// RGBA, 16-bit, etc.) is converted to four 8-bit channels; 16-bit
// sources lose the low byte of each channel in the conversion.
func Decode(r io.Reader) (*Carrier, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pngsample: decode: %w", err)
	}

	if nrgba, ok := src.(*image.NRGBA); ok {
		return &Carrier{img: nrgba}, nil
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
	return &Carrier{img: dst}, nil
}

// Samples returns the carrier's dense, mutable sample buffer. Embedding
// into or extracting from the slice returned here directly affects the
// carrier; call Encode afterward to serialize the result.
func (c *Carrier) Samples() []byte {
	return c.img.Pix
}

// Capacity returns the number of sample bytes available to the stego
// package, i.e. len(Samples()).
func (c *Carrier) Capacity() int {
	return len(c.img.Pix)
}

// Bounds returns the carrier's pixel rectangle.
func (c *Carrier) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Encode writes the carrier's current sample data back out as a PNG.
func (c *Carrier) Encode(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("pngsample: encode: %w", err)
	}
	return nil
}
