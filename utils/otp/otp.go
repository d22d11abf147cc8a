// Package otp issues and checks the six digit codes used for collection and doorstep hand-off.
package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"
)

const Digits = 6

var upper = big.NewInt(1_000_000)

// Generate returns a uniformly random zero-padded 6 digit code.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", fmt.Errorf("otp: read random: %w", err)
	}
	return fmt.Sprintf("%0*d", Digits, n.Int64()), nil
}

// Match compares in constant time.
func Match(expected, supplied string) bool {
	if len(expected) != len(supplied) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) == 1
}

// Expired is true once strictly more than ttl has passed since generatedAt.
func Expired(generatedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(generatedAt) > ttl
}
