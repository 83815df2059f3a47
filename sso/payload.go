package sso

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Attributes carries optional user attributes keyed by recognized field name.
// Keys outside the recognized set are dropped with a warning during encoding.
type Attributes map[string]any

// encodePayload builds the canonical serialized payload: caller attributes
// overlaid with the core identity fields (which always win), restricted to
// recognized names, rendered in canonical order, joined with "&" and then
// base64-encoded for transport.
func encodePayload(externalID, email, nonce string, attrs Attributes, log *slog.Logger) string {
	merged := make(map[string]any, len(attrs)+3)
	for name, value := range attrs {
		if _, ok := fieldKinds[name]; !ok {
			log.Warn("dropping unrecognized sso field", slog.String("field", name))
			continue
		}
		merged[name] = value
	}
	merged["external_id"] = externalID
	merged["email"] = email
	merged["nonce"] = nonce

	fragments := make([]string, 0, len(merged))
	for _, name := range fieldOrder {
		value, ok := merged[name]
		if !ok {
			continue
		}
		if frag, emit := encodeField(name, fieldKinds[name], value, log); emit {
			fragments = append(fragments, frag)
		}
	}

	return base64.StdEncoding.EncodeToString([]byte(strings.Join(fragments, "&")))
}

// DecodePayload reverses the transport encoding: it trims a trailing newline,
// base64-decodes the payload (padding required) and parses the result as a
// URL query string. It tolerates any well-formed payload, including ones this
// package did not produce.
//
// Malformed base64 returns ErrInvalidEncoding; content that decodes but does
// not parse as a query string returns ErrInvalidPayload.
func DecodePayload(payload string) (url.Values, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimRight(payload, "\n"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return values, nil
}
