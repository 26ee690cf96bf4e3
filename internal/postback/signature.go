package postback

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Sign returns the lowercase hex SHA-256 of userID, the rendered revenue and the shared secret.
func Sign(userID string, revenue float64, secret string) string {
	sum := sha256.Sum256([]byte(userID + FormatNumber(revenue) + secret))
	return hex.EncodeToString(sum[:])
}

// ExpectedSignature returns the signature the platform should have sent for e.
func (e Event) ExpectedSignature(secret string) string {
	revenue, _ := e.Revenue.Float64()
	return Sign(e.UserID, revenue, secret)
}

// Verify checks the received signature against the expected one.
// The comparison is exact, so an upper-case hash is rejected.
func (e Event) Verify(secret string) error {
	expected := e.ExpectedSignature(secret)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(e.Signature)) != 1 {
		return ErrInvalidSignature
	}
	return nil
}
