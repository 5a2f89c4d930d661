package token

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Alphabet is the set of symbols session keys are composed of.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength is the session key length used by the session package.
// 48 alphanumeric characters ≈ 285 bits of entropy.
const DefaultLength = 48

// Generator produces random alphanumeric keys from an injectable source.
// The zero source is crypto/rand; tests may inject a seeded reader.
type Generator struct {
	src io.Reader
}

// NewGenerator creates a Generator reading randomness from src.
// A nil src falls back to crypto/rand.
func NewGenerator(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: src}
}

// Generate returns a key of exactly length characters drawn uniformly from
// Alphabet. It panics if the random source fails or length is not positive:
// both indicate a broken process environment, not a recoverable condition.
func (g *Generator) Generate(length int) string {
	if length <= 0 {
		panic(fmt.Sprintf("token: invalid key length %d", length))
	}

	// Rejection sampling keeps the distribution uniform: bytes >= 248
	// (the largest multiple of len(Alphabet) below 256) are discarded
	// instead of folded back with a biased modulo.
	const limit = byte(256 - 256%len(Alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for {
		if _, err := io.ReadFull(g.src, buf); err != nil {
			panic(fmt.Sprintf("token: entropy source failed: %v", err))
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				return string(out)
			}
		}
	}
}

var defaultGenerator = NewGenerator(nil)

// New returns a key of the given length using the process-wide crypto/rand
// backed Generator.
func New(length int) string {
	return defaultGenerator.Generate(length)
}
