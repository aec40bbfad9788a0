package config

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	t.Run("exact_length", func(t *testing.T) {
		for _, n := range []int{8, 16, 32, 64} {
			if got := GeneratePassword(n); len(got) != n {
				t.Errorf("GeneratePassword(%d) length = %d", n, len(got))
			}
		}
	})

	t.Run("default_length_for_non_positive", func(t *testing.T) {
		if got := GeneratePassword(0); len(got) != DefaultPasswordLen {
			t.Errorf("GeneratePassword(0) length = %d, want %d", len(got), DefaultPasswordLen)
		}
	})

	t.Run("url_safe_alphabet", func(t *testing.T) {
		pw := GeneratePassword(256)
		for _, c := range pw {
			if !strings.ContainsRune(passwordAlphabet, c) {
				t.Errorf("password contains %q, outside the URL-safe alphabet", c)
			}
		}
	})

	t.Run("not_deterministic", func(t *testing.T) {
		if GeneratePassword(32) == GeneratePassword(32) {
			t.Error("two generated passwords are identical")
		}
	})
}

func TestGenerateJWTSecret(t *testing.T) {
	secret := GenerateJWTSecret()

	if len(secret) != 64 {
		t.Fatalf("secret length = %d, want 64 (32 bytes hex-encoded)", len(secret))
	}
	if _, err := hex.DecodeString(secret); err != nil {
		t.Errorf("secret is not valid hex: %v", err)
	}
	if secret == GenerateJWTSecret() {
		t.Error("two generated secrets are identical")
	}
}
