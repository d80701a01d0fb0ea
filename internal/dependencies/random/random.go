package random

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// Random provides random draws that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// WeightedIndex returns an index into weights, drawn with probability
	// proportional to each weight. Non-positive weights get no mass.
	WeightedIndex(weights []int) int

	// Token generates an opaque random identifier with the given prefix
	Token(prefix string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// Should never happen with crypto/rand
		return 0
	}
	return int(result.Int64())
}

// WeightedIndex draws an index with probability proportional to its weight
func (r *CryptoRandom) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	pick := r.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if pick < w {
			return i
		}
		pick -= w
	}
	return len(weights) - 1
}

// Token generates a 32-hex-char random identifier with the given prefix
func (r *CryptoRandom) Token(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + hex.EncodeToString(b)
}
