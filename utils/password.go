package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN    = 32768
	scryptR    = 8
	scryptP    = 1
	keyLength  = 64
	saltLength = 16
)

// PasswordHasher derives and verifies scrypt password digests. The pepper is
// a process-wide secret mixed into every derivation on top of the per-digest
// salt, so stored digests are useless without the server environment.
type PasswordHasher struct {
	pepper string
}

func NewPasswordHasher(pepper string) *PasswordHasher {
	return &PasswordHasher{pepper: pepper}
}

// Hash derives a digest for password with a fresh random salt. The digest
// embeds the salt as "<hex key>.<hex salt>", so hashing the same password
// twice yields different digests.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password+h.pepper), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Verify reports whether password matches digest. The comparison is constant
// time, and malformed digests verify false rather than erroring so callers
// cannot tell them apart from a wrong password.
func (h *PasswordHasher) Verify(digest, password string) bool {
	keyHex, saltHex, ok := strings.Cut(digest, ".")
	if !ok {
		return false
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	candidate, err := scrypt.Key([]byte(password+h.pepper), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(candidate, key) == 1
}
