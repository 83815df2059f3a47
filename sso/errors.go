package sso

import "errors"

// Configuration errors. Returned when a required process-wide value is
// missing at call time with no per-call override; never silently defaulted.
var (
	ErrMissingSecret  = errors.New("sso secret is not configured")
	ErrMissingBaseURL = errors.New("sso base url is not configured")
)

// Validation outcomes. Ordinary results of verifying an untrusted handshake,
// discriminated with errors.Is; the caller decides how to respond.
var (
	ErrInvalidSignature = errors.New("signature mismatch")
	ErrInvalidEncoding  = errors.New("payload is not valid base64")
	ErrInvalidPayload   = errors.New("payload is not a valid query string")
)
