package id

import (
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"

	// maxAttempts bounds the collision-retry loop in UniqueAccountNumber.
	maxAttempts = 10
)

// ErrExhausted is returned when every generated candidate collided with an
// existing account number.
var ErrExhausted = errors.New("account number generation exhausted retries")

// AccountNumber returns a random account number like "KQZR284713":
// 4 uppercase letters followed by 6 digits.
func AccountNumber() string {
	u := uuid.New()
	// bytes 6 and 8 carry the fixed UUID version and variant bits; only
	// the fully random bytes feed the character mapping
	src := [10]byte{u[0], u[1], u[2], u[3], u[4], u[5], u[7], u[9], u[10], u[11]}
	var b [10]byte
	for i := 0; i < 4; i++ {
		b[i] = letters[int(src[i])%len(letters)]
	}
	for i := 4; i < 10; i++ {
		b[i] = digits[int(src[i])%len(digits)]
	}
	return string(b[:])
}

// UniqueAccountNumber generates an account number not already taken
// according to exists. It gives up after a bounded number of attempts
// rather than looping forever.
func UniqueAccountNumber(exists func(string) bool) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		candidate := AccountNumber()
		if !exists(candidate) {
			return candidate, nil
		}
	}
	return "", ErrExhausted
}

// TransactionID returns a globally-unique opaque token: a random 128-bit
// value, hex-encoded. Collisions are improbable enough that no retry loop
// is needed.
func TransactionID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
