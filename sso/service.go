package sso

import (
	"fmt"
	"log/slog"
	"net/url"
)

// Packet is the signed token pair exchanged during the handshake.
type Packet struct {
	Payload   string // base64-encoded canonical payload
	Signature string // lowercase hex HMAC-SHA256 digest, 64 characters
}

// Service signs and validates handshake tokens using injected configuration.
// All methods are pure computations over their inputs; a Service is safe for
// concurrent use without coordination.
type Service struct {
	secret  string
	baseURL string
	log     *slog.Logger
}

// Option configures a Service at construction time.
type Option func(*Service)

// WithLogger sets the logger used for field-drop warnings.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Service from the given configuration. Missing values are not
// an error here: they may be supplied per call, and each operation fails fast
// with a configuration error when the value it needs is absent.
func New(cfg Config, opts ...Option) *Service {
	s := &Service{
		secret:  cfg.Secret,
		baseURL: cfg.URL,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CallOption overrides configured values for a single operation.
type CallOption func(*callConfig)

type callConfig struct {
	secret  string
	baseURL string
}

// WithSecret overrides the configured shared secret for one call.
func WithSecret(secret string) CallOption {
	return func(c *callConfig) {
		if secret != "" {
			c.secret = secret
		}
	}
}

// WithBaseURL overrides the configured base endpoint for one call.
func WithBaseURL(rawURL string) CallOption {
	return func(c *callConfig) {
		if rawURL != "" {
			c.baseURL = rawURL
		}
	}
}

func (s *Service) callConfig(opts []CallOption) callConfig {
	c := callConfig{secret: s.secret, baseURL: s.baseURL}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Sign encodes the identity fields plus any recognized optional attributes
// into a canonical payload and signs it. The identity fields always take
// priority over same-named keys in attrs. Unknown or malformed attributes
// are dropped with a warning; they never fail the operation.
func (s *Service) Sign(externalID, email, nonce string, attrs Attributes, opts ...CallOption) (Packet, error) {
	call := s.callConfig(opts)
	if call.secret == "" {
		return Packet{}, fmt.Errorf("%w: set DISCOURSE_SSO_SECRET or pass WithSecret", ErrMissingSecret)
	}

	payload := encodePayload(externalID, email, nonce, attrs, s.log)

	return Packet{
		Payload:   payload,
		Signature: SignPayload(payload, call.secret),
	}, nil
}

// SignURL composes Sign with the configured base endpoint: the signed packet
// is appended to the endpoint's query string as the sso and sig parameters
// and the absolute URL is returned.
func (s *Service) SignURL(externalID, email, nonce string, attrs Attributes, opts ...CallOption) (string, error) {
	call := s.callConfig(opts)
	if call.baseURL == "" {
		return "", fmt.Errorf("%w: set DISCOURSE_SSO_URL or pass WithBaseURL", ErrMissingBaseURL)
	}

	packet, err := s.Sign(externalID, email, nonce, attrs, opts...)
	if err != nil {
		return "", err
	}

	return composeURL(call.baseURL, packet)
}

// composeURL merges the signed packet into the endpoint's existing query.
func composeURL(base string, packet Packet) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("sso", packet.Payload)
	q.Set("sig", packet.Signature)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
