// Package credential implements the salted one-way hashing used for
// account PINs and the bcrypt hashing used for the admin password.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const saltBytes = 8

// HashPin hashes a PIN with a fresh random salt. The persisted record is
// hash = SHA-256(salt + pin), both hex-encoded. PIN format (exactly 4
// digits) is the caller's responsibility.
func HashPin(pin string) (salt, hash string, err error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generating salt: %w", err)
	}
	salt = hex.EncodeToString(b)
	return salt, hashWithSalt(salt, pin), nil
}

// VerifyPin recomputes the salted hash and compares in constant time.
func VerifyPin(pin, salt, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(hashWithSalt(salt, pin)), []byte(hash)) == 1
}

func hashWithSalt(salt, pin string) string {
	sum := sha256.Sum256([]byte(salt + pin))
	return hex.EncodeToString(sum[:])
}

// HashPassword hashes the admin password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RandomPassword returns a hex-encoded random password, used for the
// admin credentials of a freshly initialized ledger.
func RandomPassword() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating password: %w", err)
	}
	return hex.EncodeToString(b), nil
}
