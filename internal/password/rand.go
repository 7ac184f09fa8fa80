package password

import (
	"crypto/rand"
	"math/big"
)

// Source draws uniform random indices. It is injected into the Generator so
// the random backend can be swapped without touching the selection algorithm.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) int
}

// CryptoSource implements Source with crypto/rand. It is the default used
// by NewGenerator.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// Should never happen with crypto/rand
		panic("crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}
