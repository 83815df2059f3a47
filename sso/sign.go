package sso

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload computes the handshake signature: HMAC-SHA256 over the exact
// bytes of the base64-encoded payload, rendered as lowercase hex. Signing
// happens after transport encoding so the verifier can check the signature
// before decoding anything. Deterministic for a given payload and secret.
func SignPayload(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
