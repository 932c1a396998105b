package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// VerifySignature checks that signature is a valid "sha256=<hex>" HMAC-SHA256
// of payload under secret. Every failure cause (wrong prefix, bad hex, digest
// mismatch) collapses to false so callers cannot leak why verification failed.
// The digest comparison is constant-time.
func VerifySignature(secret, payload []byte, signature string) bool {
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}

	provided, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)

	return hmac.Equal(mac.Sum(nil), provided)
}

// SignPayload computes the "sha256=<hex>" signature GitHub would send for
// payload under secret. Used by tests and local tooling.
func SignPayload(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
