package sso

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateNonce returns a fresh opaque session identifier for the party that
// initiates a handshake. Tracking its freshness (replay protection) is the
// caller's responsibility.
func GenerateNonce() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
