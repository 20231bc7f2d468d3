// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package stego

// Pattern selects how payload bits are distributed across sample bytes.
type Pattern int

const (
	// PatternLinear embeds sequentially from the start of the body region.
	PatternLinear Pattern = iota
	// PatternRandom embeds using a ChaCha20-seeded partial Fisher-Yates
	// shuffle of the body region's indices.
	PatternRandom
)

// String renders the pattern as "linear" or "random".
func (p Pattern) String() string {
	switch p {
	case PatternRandom:
		return "random"
	default:
		return "linear"
	}
}

// Obfuscation reversibly transforms payload bytes before embedding and
// after extraction. A nil *Obfuscation means no obfuscation is applied.
type Obfuscation struct {
	// Key cycles across the payload; an empty key is the identity
	// transform.
	Key []byte
}

// EmbeddingConfig is the caller-owned, immutable-per-call configuration
// for one Embed or Extract operation.
type EmbeddingConfig struct {
	Pattern     Pattern
	Seed        SeedSource
	BitIndex    BitIndex
	Obfuscation *Obfuscation
}

// Option mutates an EmbeddingConfig under construction.
type Option func(*EmbeddingConfig)

// WithBitIndex overrides the default bit position (Bit0).
func WithBitIndex(b BitIndex) Option {
	return func(c *EmbeddingConfig) { c.BitIndex = b }
}

// WithPassword configures a Random pattern's seed to be Argon2id-derived
// from password. Has no effect on a Linear pattern's config beyond being
// stored (it's simply unused).
func WithPassword(password string) Option {
	return func(c *EmbeddingConfig) { c.Seed = PasswordSeed(password) }
}

// WithSeed configures a Random pattern's seed to the given 32 raw bytes.
func WithSeed(seed [32]byte) Option {
	return func(c *EmbeddingConfig) { c.Seed = ManualSeed(seed) }
}

// WithXor enables XOR obfuscation of the payload with the given key prior
// to embedding (and symmetrically after extraction).
func WithXor(key []byte) Option {
	return func(c *EmbeddingConfig) { c.Obfuscation = &Obfuscation{Key: key} }
}

// NewLinearConfig returns a config embedding sequentially from the start
// of the body region, bit index 0, no obfuscation.
func NewLinearConfig(opts ...Option) EmbeddingConfig {
	cfg := EmbeddingConfig{Pattern: PatternLinear, BitIndex: LSB}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewRandomConfig returns a config using a ChaCha20-seeded shuffle, with
// an auto-generated (header-embedded) seed unless overridden by
// WithPassword or WithSeed.
func NewRandomConfig(opts ...Option) EmbeddingConfig {
	cfg := EmbeddingConfig{Pattern: PatternRandom, Seed: AutoSeed(), BitIndex: LSB}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig mirrors LSBConfig::default() in the original design: a
// random pattern with an auto-generated seed gives the best balance of
// security and convenience without extra setup.
func DefaultConfig() EmbeddingConfig {
	return NewRandomConfig()
}
