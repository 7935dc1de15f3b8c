// Package cryptox implements password hashing for the credential store.
//
// Two schemes are supported:
//
//   - sha256: single-pass, unsalted SHA-256 rendered as lowercase hex. This is
//     the format of existing users.json files and stays the default so those
//     files keep working. It is weak against offline guessing.
//   - bcrypt: salted adaptive hash from golang.org/x/crypto/bcrypt.
//
// Verification detects the scheme from the stored value, so both kinds of
// hashes can live in one store.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Scheme names a password hashing scheme.
type Scheme string

const (
	SchemeSHA256 Scheme = "sha256"
	SchemeBcrypt Scheme = "bcrypt"
)

// Hasher produces and checks password hashes.
type Hasher interface {
	Hash(password []byte) (string, error)
	Verify(password []byte, stored string) bool
}

// NewHasher returns the Hasher for scheme. New hashes use that scheme;
// Verify accepts any supported scheme.
func NewHasher(scheme Scheme) (Hasher, error) {
	switch scheme {
	case SchemeSHA256, "":
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unsupported password scheme %q", scheme)
	}
}

// HashSHA256 returns the hex SHA-256 digest of password.
func HashSHA256(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// Verify checks password against stored, which may be a sha256 hex digest or
// a bcrypt hash.
func Verify(password []byte, stored string) bool {
	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), password) == nil
	}
	candidate := HashSHA256(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}

func isBcrypt(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// SHA256Hasher is the legacy scheme.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password []byte) (string, error) {
	return HashSHA256(password), nil
}

func (SHA256Hasher) Verify(password []byte, stored string) bool {
	return Verify(password, stored)
}

// BcryptHasher hashes with bcrypt at the given cost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password []byte) (string, error) {
	b, err := bcrypt.GenerateFromPassword(password, h.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

func (h BcryptHasher) Verify(password []byte, stored string) bool {
	return Verify(password, stored)
}
