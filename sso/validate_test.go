package sso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinyscorpion/discourse/sso"
)

func TestValidate_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	packet, err := svc.Sign("173278", "bob@example.com", testNonce, nil)
	require.NoError(t, err)

	nonce, err := svc.Validate(packet.Payload, packet.Signature)
	require.NoError(t, err)
	assert.Equal(t, testNonce, nonce)
}

func TestValidate_TamperedSignature(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	packet, err := svc.Sign("173278", "bob@example.com", testNonce, nil)
	require.NoError(t, err)

	// Flipping any single hex character must invalidate the signature.
	for i := range packet.Signature {
		tampered := []byte(packet.Signature)
		if tampered[i] == '0' {
			tampered[i] = '1'
		} else {
			tampered[i] = '0'
		}

		_, err := svc.Validate(packet.Payload, string(tampered))
		require.ErrorIs(t, err, sso.ErrInvalidSignature, "position %d", i)
	}
}

func TestValidate_TamperedPayload(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	packet, err := svc.Sign("173278", "bob@example.com", testNonce, nil)
	require.NoError(t, err)

	_, err = svc.Validate(packet.Payload+"x", packet.Signature)
	require.ErrorIs(t, err, sso.ErrInvalidSignature)
}

func TestValidate_FailureOrder(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	t.Run("garbage payload and signature", func(t *testing.T) {
		t.Parallel()
		// Signature mismatch is reported before any decode is attempted.
		_, err := svc.Validate("bad", "bad")
		require.ErrorIs(t, err, sso.ErrInvalidSignature)
	})

	t.Run("malformed signature against valid payload", func(t *testing.T) {
		t.Parallel()
		packet, err := svc.Sign("173278", "bob@example.com", testNonce, nil)
		require.NoError(t, err)

		_, err = svc.Validate(packet.Payload, "zzzz")
		require.ErrorIs(t, err, sso.ErrInvalidSignature)
	})

	t.Run("correctly signed payload without a nonce", func(t *testing.T) {
		t.Parallel()
		// base64("bad") signed with the test secret: decodes fine but carries
		// no nonce field.
		_, err := svc.Validate("YmFk", "5feb3487b673ec4d9500354d3fe44d01709674c64ceafbabd314190ad878c3a1")
		require.ErrorIs(t, err, sso.ErrInvalidPayload)
	})
}

func TestValidate_SecretOverride(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	packet, err := svc.Sign("173278", "bob@example.com", testNonce, nil, sso.WithSecret("other-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(packet.Payload, packet.Signature)
	require.ErrorIs(t, err, sso.ErrInvalidSignature)

	nonce, err := svc.Validate(packet.Payload, packet.Signature, sso.WithSecret("other-secret"))
	require.NoError(t, err)
	assert.Equal(t, testNonce, nonce)
}

func TestValidate_MissingSecret(t *testing.T) {
	t.Parallel()
	svc := sso.New(sso.Config{})

	_, err := svc.Validate("YmFk", "bad")
	require.ErrorIs(t, err, sso.ErrMissingSecret)
}
