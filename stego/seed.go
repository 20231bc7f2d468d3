// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package stego

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// SeedKind tags how a SeedSource produces its 32-byte seed.
type SeedKind int

const (
	// SeedAuto generates a fresh CSPRNG seed and embeds it in the header.
	SeedAuto SeedKind = iota
	// SeedPassword derives the seed from a password via Argon2id; nothing
	// is embedded, since the same password always re-derives it.
	SeedPassword
	// SeedManual uses a caller-supplied 32-byte seed; nothing is embedded.
	SeedManual
)

// SeedSource selects how the 32-byte permutation seed for a Random pattern
// is obtained. The zero value is SeedAuto.
type SeedSource struct {
	Kind     SeedKind
	Password string
	Seed     [32]byte
}

// AutoSeed requests a fresh CSPRNG seed, embedded in the header on embed.
func AutoSeed() SeedSource { return SeedSource{Kind: SeedAuto} }

// PasswordSeed derives the seed from password using Argon2id with a fixed
// salt, so the same password always reproduces the same seed.
func PasswordSeed(password string) SeedSource {
	return SeedSource{Kind: SeedPassword, Password: password}
}

// ManualSeed uses the given 32 bytes directly as the seed.
func ManualSeed(seed [32]byte) SeedSource {
	return SeedSource{Kind: SeedManual, Seed: seed}
}

// argon2Salt is fixed so password-derived seeds are reproducible without
// storing a per-image salt. This trades offline dictionary-attack
// resistance for reproducibility; see DESIGN.md.
var argon2Salt = []byte("pnger_steganography_salt_v1_____")

// Argon2id parameters, pinned so password-derived seeds stay portable
// across releases (spec.md leaves "default parameters" an open question;
// this pins Argon2id's own documented interactive-use defaults).
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // KiB
	argon2Threads = 4
	argon2KeyLen  = 32
)

// resolveSeed produces the 32-byte seed for source, plus whether it should
// be embedded in the header (true only for SeedAuto).
func resolveSeed(source SeedSource) (seed [32]byte, embed bool, err error) {
	switch source.Kind {
	case SeedAuto:
		if _, err := rand.Read(seed[:]); err != nil {
			return seed, false, fmt.Errorf("%w: generating random seed: %s", ErrCrypto, err)
		}
		return seed, true, nil
	case SeedPassword:
		derived := argon2.IDKey([]byte(source.Password), argon2Salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
		copy(seed[:], derived)
		return seed, false, nil
	case SeedManual:
		return source.Seed, false, nil
	default:
		return seed, false, fmt.Errorf("%w: unknown seed source kind %d", ErrConfig, source.Kind)
	}
}
