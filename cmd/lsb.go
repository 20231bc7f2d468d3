// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathyslv/pnger-go/stego"
)

// defaultXorKey matches the CLI contract's documented default.
const defaultXorKey = "PNGER_DEFAULT_XOR_KEY"

// lsbFlags holds the flag values shared by the embed and extract
// subcommands; each command owns its own instance.
type lsbFlags struct {
	strategy string
	pattern  string
	bitIndex uint8
	password string
	seedHex  string
	xor      bool
	xorKey   string
}

// addLSBFlags registers the LSB strategy flag set on cmd and returns the
// bound values.
func addLSBFlags(cmd *cobra.Command) *lsbFlags {
	f := &lsbFlags{}
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "lsb", "Embedding strategy (only \"lsb\" is supported)")
	cmd.Flags().StringVar(&f.pattern, "lsb-pattern", "random", "LSB index pattern: linear or random")
	cmd.Flags().Uint8Var(&f.bitIndex, "lsb-bit-index", 0, "Carrier bit position to use, 0 (LSB) through 7")
	cmd.Flags().StringVar(&f.password, "lsb-password", "", "Derive the random pattern's seed from this password (Argon2id)")
	cmd.Flags().StringVar(&f.seedHex, "lsb-seed", "", "64 hex characters (32 bytes) used directly as the random pattern's seed")
	cmd.Flags().BoolVar(&f.xor, "xor", false, "Obfuscate the payload with a cycling XOR key before embedding")
	cmd.Flags().StringVar(&f.xorKey, "xor-key", defaultXorKey, "XOR key used when --xor is set")
	return f
}

// buildConfig translates the parsed flags into a stego.EmbeddingConfig.
// On extract, the pattern actually used is re-derived from the header,
// so --lsb-pattern only matters for supplying the matching seed source.
func (f *lsbFlags) buildConfig() (stego.EmbeddingConfig, error) {
	if f.strategy != "lsb" {
		return stego.EmbeddingConfig{}, fmt.Errorf("%w: unsupported strategy %q", stego.ErrConfig, f.strategy)
	}

	bitIndex, err := stego.ParseBitIndex(f.bitIndex)
	if err != nil {
		return stego.EmbeddingConfig{}, err
	}

	if f.password != "" && f.seedHex != "" {
		return stego.EmbeddingConfig{}, fmt.Errorf("%w: --lsb-password and --lsb-seed are mutually exclusive", stego.ErrConfig)
	}

	var opts []stego.Option
	opts = append(opts, stego.WithBitIndex(bitIndex))

	switch f.pattern {
	case "linear":
		if f.password != "" || f.seedHex != "" {
			return stego.EmbeddingConfig{}, fmt.Errorf("%w: --lsb-password/--lsb-seed require --lsb-pattern random", stego.ErrConfig)
		}
		cfg := stego.NewLinearConfig(opts...)
		if f.xor {
			cfg = applyXor(cfg, f.xorKey)
		}
		return cfg, nil
	case "random":
		switch {
		case f.password != "":
			opts = append(opts, stego.WithPassword(f.password))
		case f.seedHex != "":
			seed, err := parseSeedHex(f.seedHex)
			if err != nil {
				return stego.EmbeddingConfig{}, err
			}
			opts = append(opts, stego.WithSeed(seed))
		}
		cfg := stego.NewRandomConfig(opts...)
		if f.xor {
			cfg = applyXor(cfg, f.xorKey)
		}
		return cfg, nil
	default:
		return stego.EmbeddingConfig{}, fmt.Errorf("%w: --lsb-pattern must be linear or random, got %q", stego.ErrConfig, f.pattern)
	}
}

func applyXor(cfg stego.EmbeddingConfig, key string) stego.EmbeddingConfig {
	cfg.Obfuscation = &stego.Obfuscation{Key: []byte(key)}
	return cfg
}

// parseSeedHex decodes a 64-character hex string into a 32-byte seed.
func parseSeedHex(s string) ([32]byte, error) {
	var seed [32]byte
	if len(s) != 64 {
		return seed, fmt.Errorf("%w: --lsb-seed must be exactly 64 hex characters, got %d", stego.ErrConfig, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return seed, fmt.Errorf("%w: --lsb-seed is not valid hex: %s", stego.ErrConfig, err)
	}
	copy(seed[:], raw)
	return seed, nil
}
