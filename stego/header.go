// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package stego

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

const (
	magicSize       = 4
	fixedHeaderSize = magicSize + 1 + 1 + 4 + 4 // magic, version, flags, payload_size, crc32
	seedSize        = 32

	headerVersion byte = 1
)

var headerMagic = [magicSize]byte{'P', 'N', 'G', 'R'}

// Header flag bits.
const (
	flagRandomPattern byte = 1 << 0
	flagSeedEmbedded  byte = 1 << 1
)

// fixedHeader is the 14-byte framed header described in the wire format.
type fixedHeader struct {
	version     byte
	flags       byte
	payloadSize uint32
	crc32       uint32
}

// crcPayload returns the six CRC-covered bytes: version, flags, and the
// big-endian payload size.
func crcPayload(version, flags byte, payloadSize uint32) [6]byte {
	var b [6]byte
	b[0] = version
	b[1] = flags
	binary.BigEndian.PutUint32(b[2:6], payloadSize)
	return b
}

func computeCRC(version, flags byte, payloadSize uint32) uint32 {
	data := crcPayload(version, flags, payloadSize)
	return crc32.ChecksumIEEE(data[:])
}

// headerByteSize returns the total raw byte length of a header with the
// given flags: 14, or 46 if the seed is embedded.
func headerByteSize(flags byte) int {
	if flags&flagSeedEmbedded != 0 {
		return fixedHeaderSize + seedSize
	}
	return fixedHeaderSize
}

// encodeHeader renders the raw header bytes (pre bit-spreading) for the
// given pattern, seed material and payload size.
func encodeHeader(pattern Pattern, seed [32]byte, embedSeed bool, payloadSize uint32) []byte {
	var flags byte
	if pattern == PatternRandom {
		flags |= flagRandomPattern
		if embedSeed {
			flags |= flagSeedEmbedded
		}
	}

	crc := computeCRC(headerVersion, flags, payloadSize)

	out := make([]byte, headerByteSize(flags))
	copy(out[0:4], headerMagic[:])
	out[4] = headerVersion
	out[5] = flags
	binary.BigEndian.PutUint32(out[6:10], payloadSize)
	binary.BigEndian.PutUint32(out[10:14], crc)
	if flags&flagSeedEmbedded != 0 {
		copy(out[14:14+seedSize], seed[:])
	}
	return out
}

// decodeFixedHeader parses and validates the 14-byte fixed portion of a
// header. Whether a seed follows is reported via the returned header's
// flags; the caller fetches those bytes separately once it knows whether
// they're present, since they live behind another round of bit-plane
// extraction.
func decodeFixedHeader(data []byte) (hdr fixedHeader, err error) {
	if len(data) < fixedHeaderSize {
		return hdr, fmt.Errorf("%w: insufficient data for header, need %d bytes, have %d", ErrFormat, fixedHeaderSize, len(data))
	}
	if data[0] != headerMagic[0] || data[1] != headerMagic[1] || data[2] != headerMagic[2] || data[3] != headerMagic[3] {
		return hdr, fmt.Errorf("%w: invalid magic", ErrFormat)
	}

	hdr.version = data[4]
	if hdr.version != headerVersion {
		return hdr, fmt.Errorf("%w: unsupported version %d", ErrFormat, hdr.version)
	}
	hdr.flags = data[5]
	hdr.payloadSize = binary.BigEndian.Uint32(data[6:10])
	hdr.crc32 = binary.BigEndian.Uint32(data[10:14])

	expected := computeCRC(hdr.version, hdr.flags, hdr.payloadSize)
	if expected != hdr.crc32 {
		return hdr, fmt.Errorf("%w: header CRC mismatch: expected %08x, found %08x", ErrFormat, expected, hdr.crc32)
	}

	if hdr.flags&flagSeedEmbedded != 0 && hdr.flags&flagRandomPattern == 0 {
		return hdr, fmt.Errorf("%w: seed embedded flag set without random pattern flag", ErrFormat)
	}

	return hdr, nil
}

// hasSeedEmbedded reports whether hdr carries an inline seed.
func (hdr fixedHeader) hasSeedEmbedded() bool {
	return hdr.flags&flagSeedEmbedded != 0
}

// hasRandomPattern reports whether hdr declares a random embedding pattern.
func (hdr fixedHeader) hasRandomPattern() bool {
	return hdr.flags&flagRandomPattern != 0
}
