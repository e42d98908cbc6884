// Package password wraps the bcrypt primitive behind a small hasher type.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted password digests.
// bcrypt embeds a per-call random salt, so two digests of the same
// plaintext differ while both verify against it.
type Hasher struct {
	cost int
}

// New returns a Hasher with the default bcrypt cost.
func New() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// NewWithCost returns a Hasher with an explicit cost. Tests use bcrypt.MinCost.
func NewWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash derives a digest from the plaintext. The plaintext is never stored.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the digest was produced from the plaintext.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
