// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package stego implements LSB (and other bit-plane) steganography over a
// dense byte buffer of image sample data, with a self-describing framed
// header so an extractor never needs out-of-band knowledge of how a
// payload was embedded.
package stego

import "fmt"

// EmbedResult describes the outcome of a successful Embed call.
type EmbedResult struct {
	// PayloadSize is the number of payload bytes embedded.
	PayloadSize int
	// HeaderBytes is the raw size, in bytes, of the header that was
	// written ahead of the payload (14, or 46 if a seed was embedded).
	HeaderBytes int
	// BitsUsed is the total number of sample bytes used as carriers,
	// header and body combined, whether or not their value changed.
	BitsUsed int
	// Seed is the resolved 32-byte permutation seed when the config's
	// Pattern is PatternRandom; it is all zeros for PatternLinear.
	Seed [32]byte
}

// ExtractResult describes the outcome of a successful Extract call.
type ExtractResult struct {
	// Payload is the recovered, de-obfuscated payload bytes.
	Payload []byte
	// Pattern is the embedding pattern recorded in the header.
	Pattern Pattern
	// Seed is the seed recovered from the header (if embedded) or
	// resolved from the caller's configuration.
	Seed [32]byte
}

// validateBitIndex rejects a BitIndex outside the representable 0..=7
// range. The named constants (Bit0..Bit7) are always valid; this guards
// against a caller constructing a BitIndex directly from an arbitrary
// uint8.
func validateBitIndex(b BitIndex) error {
	if b > Bit7 {
		return fmt.Errorf("%w: bit index must be in range 0-7, got %d", ErrConfig, uint8(b))
	}
	return nil
}

// Embed writes payload into samples according to cfg, returning metadata
// about the embedding. samples is modified in place and must be a dense
// byte buffer of carrier sample values (e.g. the Pix field of an
// image.NRGBA); it is the caller's responsibility to re-encode the
// carrier image afterward.
func Embed(samples []byte, payload []byte, cfg EmbeddingConfig) (EmbedResult, error) {
	var result EmbedResult

	if err := validateBitIndex(cfg.BitIndex); err != nil {
		return result, err
	}

	if cfg.Obfuscation != nil {
		payload = xorBytes(payload, cfg.Obfuscation.Key)
	}

	if len(payload) > 0xFFFFFFFF {
		return result, fmt.Errorf("%w: payload of %d bytes exceeds the 32-bit size field", ErrCapacity, len(payload))
	}

	var seed [32]byte
	var embedSeed bool
	if cfg.Pattern == PatternRandom {
		var err error
		seed, embedSeed, err = resolveSeed(cfg.Seed)
		if err != nil {
			return result, err
		}
	}

	headerBytes := encodeHeader(cfg.Pattern, seed, embedSeed, uint32(len(payload)))
	headerBitLen := len(headerBytes) * 8
	bodyBitLen := len(payload) * 8

	if len(samples) < headerBitLen+bodyBitLen {
		return result, fmt.Errorf("%w: need %d sample bytes, have %d", ErrCapacity, headerBitLen+bodyBitLen, len(samples))
	}

	headerRegion := samples[:headerBitLen]
	headerIndices := buildSequence(PatternLinear, seed, headerBitLen, headerBitLen)
	if err := writeBits(headerRegion, headerIndices, cfg.BitIndex, headerBytes); err != nil {
		return result, err
	}

	bodyRegion := samples[headerBitLen:]
	bodyIndices := buildSequence(cfg.Pattern, seed, len(bodyRegion), bodyBitLen)
	if err := writeBits(bodyRegion, bodyIndices, cfg.BitIndex, payload); err != nil {
		return result, err
	}

	result.PayloadSize = len(payload)
	result.HeaderBytes = len(headerBytes)
	result.BitsUsed = headerBitLen + bodyBitLen
	result.Seed = seed
	return result, nil
}

// Extract recovers the payload previously embedded into samples. cfg
// supplies the bit index the embed used and, when the header does not
// carry an inline seed (password or manual seed sources), the means to
// reproduce it; cfg.Pattern is ignored, since the pattern actually used
// is read back from the header itself.
func Extract(samples []byte, cfg EmbeddingConfig) (ExtractResult, error) {
	var result ExtractResult

	if err := validateBitIndex(cfg.BitIndex); err != nil {
		return result, err
	}

	fixedBitLen := fixedHeaderSize * 8
	if len(samples) < fixedBitLen {
		return result, fmt.Errorf("%w: need at least %d sample bytes for a header, have %d", ErrCapacity, fixedBitLen, len(samples))
	}

	fixedRegion := samples[:fixedBitLen]
	fixedIndices := buildSequence(PatternLinear, [32]byte{}, fixedBitLen, fixedBitLen)
	rawFixed, err := readBits(fixedRegion, fixedIndices, cfg.BitIndex, fixedHeaderSize)
	if err != nil {
		return result, err
	}

	hdr, err := decodeFixedHeader(rawFixed)
	if err != nil {
		return result, err
	}

	pattern := PatternLinear
	if hdr.hasRandomPattern() {
		pattern = PatternRandom
	}
	result.Pattern = pattern

	headerBitLen := fixedBitLen
	var seed [32]byte

	if hdr.hasSeedEmbedded() {
		seedBitLen := seedSize * 8
		if len(samples) < fixedBitLen+seedBitLen {
			return result, fmt.Errorf("%w: need %d sample bytes for an embedded seed, have %d", ErrCapacity, fixedBitLen+seedBitLen, len(samples))
		}
		seedRegion := samples[fixedBitLen : fixedBitLen+seedBitLen]
		seedIndices := buildSequence(PatternLinear, [32]byte{}, seedBitLen, seedBitLen)
		rawSeed, err := readBits(seedRegion, seedIndices, cfg.BitIndex, seedSize)
		if err != nil {
			return result, err
		}
		copy(seed[:], rawSeed)
		headerBitLen += seedBitLen
	} else if pattern == PatternRandom {
		if cfg.Seed.Kind == SeedAuto {
			return result, fmt.Errorf("%w: Auto seed source requested at extract but the header does not embed a seed", ErrFormat)
		}
		seed, _, err = resolveSeed(cfg.Seed)
		if err != nil {
			return result, err
		}
	}
	result.Seed = seed

	bodyBitLen := int(hdr.payloadSize) * 8
	if len(samples) < headerBitLen+bodyBitLen {
		return result, fmt.Errorf("%w: header declares %d payload bytes but only %d sample bytes remain", ErrCapacity, hdr.payloadSize, len(samples)-headerBitLen)
	}

	bodyRegion := samples[headerBitLen:]
	bodyIndices := buildSequence(pattern, seed, len(bodyRegion), bodyBitLen)
	payload, err := readBits(bodyRegion, bodyIndices, cfg.BitIndex, int(hdr.payloadSize))
	if err != nil {
		return result, err
	}

	if cfg.Obfuscation != nil {
		payload = xorBytes(payload, cfg.Obfuscation.Key)
	}

	result.Payload = payload
	return result, nil
}
