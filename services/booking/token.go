package booking

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"time"
)

const (
	tokenBytes      = 32
	defaultTokenTTL = 30 * 24 * time.Hour
)

// GenerateAccessToken mints a high-entropy opaque token. It is never derived
// from booking fields, holding the string is the whole capability.
func GenerateAccessToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// TokenTTL returns the access token lifetime, configurable via
// BOOKING_TOKEN_TTL_HOURS.
func TokenTTL() time.Duration {
	if hours, err := strconv.Atoi(os.Getenv("BOOKING_TOKEN_TTL_HOURS")); err == nil && hours > 0 {
		return time.Duration(hours) * time.Hour
	}
	return defaultTokenTTL
}
