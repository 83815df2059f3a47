// Package sso implements the DiscourseConnect single-sign-on handshake.
//
// A trusted identity provider signs a set of user-attribute fields with a
// shared secret, encodes them into a transport-safe token, and the receiving
// party verifies the signature before trusting any of the attributes. The
// pipeline is: canonical query-string serialization of the recognized fields,
// whole-string base64 encoding, then an HMAC-SHA256 signature rendered as
// lowercase hex over the encoded string.
//
// Token format: {sso: base64(query string), sig: hex(HMAC-SHA256(sso))}
//
// Only a fixed set of field names is ever emitted (see the field tables in
// fields.go). Unknown or malformed optional attributes are dropped with a
// warning rather than failing the operation: a bad optional attribute must
// never block issuing a token for otherwise-valid identity fields.
//
// # Usage
//
//	cfg, err := sso.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := sso.New(cfg)
//
//	// Validate an incoming handshake and echo back the signed identity.
//	nonce, err := svc.Validate(payload, signature)
//	if err != nil {
//	    // errors.Is against ErrInvalidSignature, ErrInvalidEncoding,
//	    // ErrInvalidPayload
//	}
//
//	location, err := svc.SignURL("42", "user@example.com", nonce, sso.Attributes{
//	    "username": "sam",
//	    "admin":    true,
//	    "groups":   []string{"staff"},
//	})
//
// The secret and base URL come from configuration and can be overridden per
// call with WithSecret and WithBaseURL.
//
// Replay protection is out of scope: the nonce is extracted and returned, but
// tracking its freshness is the caller's responsibility. Transport security
// (TLS) is assumed.
package sso
