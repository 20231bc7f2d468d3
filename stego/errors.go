// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package stego

import "errors"

// Sentinel errors identifying the kinds described in the design: capacity,
// format, crypto and configuration failures. Wrap these with fmt.Errorf's
// %w verb for call-site context; check with errors.Is.
var (
	// ErrCapacity is returned when the payload plus header would not fit
	// in the available sample bytes.
	ErrCapacity = errors.New("insufficient sample capacity")

	// ErrFormat is returned for invalid magic, unsupported version, CRC
	// mismatch, inconsistent flags, truncated headers, or an invalid
	// configuration/header combination discovered during extraction.
	ErrFormat = errors.New("invalid container format")

	// ErrCrypto is returned when seed generation or derivation fails.
	ErrCrypto = errors.New("cryptographic operation failed")

	// ErrConfig is returned for invalid caller-supplied configuration,
	// such as an out-of-range bit index or a malformed manual seed.
	ErrConfig = errors.New("invalid configuration")
)
