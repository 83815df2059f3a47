// Package discourse implements the DiscourseConnect single-sign-on handshake
// for sites that act as the identity provider for a Discourse forum.
//
// The sso package is the core: field encoding policy, canonical payload
// serialization, HMAC-SHA256 signing and the validation pipeline. The
// provider package is the thin HTTP endpoint that wires the handshake into a
// web application.
package discourse
