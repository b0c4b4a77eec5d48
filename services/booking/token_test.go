package booking

import (
	"encoding/hex"
	"testing"
	"time"
)

func TestGenerateAccessToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateAccessToken()
		if err != nil {
			t.Fatalf("GenerateAccessToken failed: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("token length = %d, want 64", len(token))
		}
		if _, err := hex.DecodeString(token); err != nil {
			t.Fatalf("token is not hex: %v", err)
		}
		if seen[token] {
			t.Fatal("duplicate token generated")
		}
		seen[token] = true
	}
}

func TestTokenTTL(t *testing.T) {
	t.Setenv("BOOKING_TOKEN_TTL_HOURS", "")
	if got := TokenTTL(); got != defaultTokenTTL {
		t.Errorf("default TTL = %v, want %v", got, defaultTokenTTL)
	}

	t.Setenv("BOOKING_TOKEN_TTL_HOURS", "48")
	if got := TokenTTL(); got != 48*time.Hour {
		t.Errorf("TTL = %v, want 48h", got)
	}

	t.Setenv("BOOKING_TOKEN_TTL_HOURS", "-3")
	if got := TokenTTL(); got != defaultTokenTTL {
		t.Errorf("TTL with negative env = %v, want default", got)
	}
}
