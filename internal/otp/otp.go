package otp

import (
	"crypto/rand"
	"math/big"
	"time"
)

// TTL is how long an issued code stays valid.
const TTL = 10 * time.Minute

const (
	codeMin = 100000
	codeMax = 999999
)

// Generator implements code generation as an injectable value type.
type Generator struct{}

func (Generator) Generate() (string, error) {
	return Generate()
}

// Generate returns a 6-digit numeric one-time code drawn uniformly from
// [100000, 999999] using a cryptographically secure source.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(codeMin)).String(), nil
}
