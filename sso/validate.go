package sso

import (
	"crypto/hmac"
	"fmt"
)

// Validate verifies an incoming handshake token and returns the session nonce
// it carries. Checks run in a fixed order, terminal on first failure:
//
//  1. recompute the expected signature over the still-encoded payload and
//     compare: mismatch is ErrInvalidSignature. A forged payload is rejected
//     before its content is ever decoded.
//  2. base64-decode the payload: failure is ErrInvalidEncoding.
//  3. parse the decoded bytes as a query string and require a nonce field:
//     failure or absence is ErrInvalidPayload.
//
// The signature comparison is constant-time.
func (s *Service) Validate(payload, signature string, opts ...CallOption) (string, error) {
	call := s.callConfig(opts)
	if call.secret == "" {
		return "", fmt.Errorf("%w: set DISCOURSE_SSO_SECRET or pass WithSecret", ErrMissingSecret)
	}

	expected := SignPayload(payload, call.secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return "", ErrInvalidSignature
	}

	values, err := DecodePayload(payload)
	if err != nil {
		return "", err
	}

	nonce := values.Get("nonce")
	if nonce == "" {
		return "", fmt.Errorf("%w: nonce field missing", ErrInvalidPayload)
	}

	return nonce, nil
}
