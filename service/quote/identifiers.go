package quote

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

// NewQuoteNumber returns Q-<YYYYMMDD>-<6 upper-case hex chars>.
func NewQuoteNumber(now time.Time, r io.Reader) (string, error) {
	suffix, err := randomHex(r, 3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Q-%s-%s", now.Format("20060102"), strings.ToUpper(suffix)), nil
}

// NewToken returns 48 hex chars (24 random bytes), the public-view credential.
func NewToken(r io.Reader) (string, error) {
	return randomHex(r, 24)
}

func randomHex(r io.Reader, n int) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(b), nil
}
