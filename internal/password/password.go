package password

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// saltLength is the raw salt size in bytes. Base64 encoding turns it into a
// fixed 44-character prefix of the stored hash.
const saltLength = 32

var encodedSaltLen = base64.StdEncoding.EncodedLen(saltLength)

// Hasher hashes and verifies passwords using a per-user random salt and a
// deployment-wide pepper. The stored format is the base64 salt followed by
// the base64 SHA-256 digest of password+salt+pepper, so the salt can be
// re-derived from the fixed-length prefix during verification.
type Hasher struct {
	pepper string
}

// New creates a Hasher with the given pepper. The pepper is a server-side
// secret that is never persisted next to the hashes.
func New(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

// Hash hashes a password with a freshly generated salt.
func (h *Hasher) Hash(password string) (string, error) {
	salt, err := generateSalt()
	if err != nil {
		return "", err
	}
	return h.hashWithSalt(password, salt), nil
}

// Verify reports whether the password matches the stored hash.
func (h *Hasher) Verify(password, storedHash string) bool {
	var salt string
	if len(storedHash) > encodedSaltLen {
		salt = storedHash[:encodedSaltLen]
	}
	return storedHash == h.hashWithSalt(password, salt)
}

func (h *Hasher) hashWithSalt(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt + h.pepper))
	return salt + base64.StdEncoding.EncodeToString(sum[:])
}

func generateSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
