package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

// Random provides random number generation that can be mocked for testing.
// The puzzle engine shuffles digit candidates and carve positions through
// this interface, so a fixed implementation makes generation deterministic.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements via swap
	Shuffle(n int, swap func(i, j int))

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
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
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// Shuffle performs a Fisher-Yates shuffle over n elements
func (r *CryptoRandom) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

// SeededRandom implements Random with a seeded math/rand source, giving
// reproducible puzzle generation for a fixed seed.
type SeededRandom struct {
	rng *mathrand.Rand
}

// NewSeeded creates a SeededRandom from the given seed
func NewSeeded(seed int64) *SeededRandom {
	return &SeededRandom{rng: mathrand.New(mathrand.NewSource(seed))}
}

// Intn returns a random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements via swap
func (r *SeededRandom) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}

// String generates a random string of the given length from the given alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

var (
	_ Random = (*CryptoRandom)(nil)
	_ Random = (*SeededRandom)(nil)
)
