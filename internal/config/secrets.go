package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// passwordAlphabet is the URL-safe character set for generated passwords.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

// DefaultPasswordLen is the length of generated passwords when the user
// accepts the suggested default.
const DefaultPasswordLen = 16

// jwtSecretBytes is the entropy of a generated JWT secret before hex encoding.
const jwtSecretBytes = 32

// GeneratePassword returns a cryptographically random password of exactly
// length characters from the URL-safe alphabet. An entropy-source failure
// is unrecoverable and panics.
func GeneratePassword(length int) string {
	if length <= 0 {
		length = DefaultPasswordLen
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("config: entropy source unavailable: %v", err))
	}
	for i, b := range buf {
		buf[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}
	return string(buf)
}

// GenerateJWTSecret returns 32 bytes of entropy hex-encoded (64 characters).
func GenerateJWTSecret() string {
	buf := make([]byte, jwtSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("config: entropy source unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}
