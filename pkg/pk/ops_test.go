// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-pubkey.
//
// go-pubkey is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package pk

import (
	"bytes"
	cryptorand "crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-pubkey/pkg/digest"
	"github.com/jeremyhahn/go-pubkey/pkg/logging"
	"github.com/jeremyhahn/go-pubkey/pkg/primitive"
)

// ===== Message Preparation =====

func TestPrepare_PassThrough(t *testing.T) {
	h := newHandle(t, rsaPEM(t))

	message := []byte("short enough to sign directly")
	operand, err := h.Prepare(message, digest.None)
	require.NoError(t, err)
	assert.True(t, &operand[0] == &message[0], "operand should alias the message")
}

func TestPrepare_DigestsSelected(t *testing.T) {
	h := newHandle(t, rsaPEM(t))

	message := []byte("short enough to sign directly")
	operand, err := h.Prepare(message, digest.SHA256)
	require.NoError(t, err)

	want := sha256.Sum256(message)
	assert.Equal(t, want[:], operand)
}

// A message at or beyond the operable length cannot pass through undigested;
// with no selector the preparation fails rather than truncating.
func TestPrepare_LongMessage(t *testing.T) {
	h := newHandle(t, rsaPEM(t))
	limit := h.MaxOperableLength()

	atLimit := make([]byte, limit)
	_, err := h.Prepare(atLimit, digest.None)
	assert.True(t, errors.Is(err, digest.ErrNoAlgorithm))

	underLimit := make([]byte, limit-1)
	operand, err := h.Prepare(underLimit, digest.None)
	require.NoError(t, err)
	assert.Len(t, operand, limit-1)

	// With a selector the length does not matter.
	operand, err = h.Prepare(atLimit, digest.SHA256)
	require.NoError(t, err)
	assert.Len(t, operand, 32)
}

func TestPrepare_UnavailableSelector(t *testing.T) {
	h := newHandle(t, rsaPEM(t))

	_, err := h.Prepare([]byte("message"), digest.MD4)
	assert.True(t, errors.Is(err, digest.ErrUnavailable))
}

// ===== Sign and Verify =====

func TestSign_Verify_RoundTrip(t *testing.T) {
	families := []struct {
		name      string
		keyPEM    []byte
		selectors []digest.Algorithm
	}{
		{name: "RSA", selectors: []digest.Algorithm{digest.None, digest.SHA256, digest.SHA512}},
		{name: "EC", selectors: []digest.Algorithm{digest.None, digest.SHA256, digest.SHA3_256}},
		{name: "Ed25519", selectors: []digest.Algorithm{digest.None, digest.SHA256, digest.BLAKE2b_256}},
	}
	families[0].keyPEM = rsaPEM(t)
	families[1].keyPEM = ecPEM(t)
	families[2].keyPEM = ed25519PEM(t)

	message := []byte("the quick brown fox jumps over the lazy dog")

	for _, family := range families {
		h := newHandle(t, family.keyPEM)
		for _, selector := range family.selectors {
			t.Run(family.name+"/"+selector.String(), func(t *testing.T) {
				sig, err := h.Sign(message, selector)
				require.NoError(t, err)
				require.NotEmpty(t, sig)

				require.NoError(t, h.Verify(message, sig, selector))

				tampered := append([]byte(nil), message...)
				tampered[0] ^= 0x01
				err = h.Verify(tampered, sig, selector)
				require.Error(t, err)
				assert.Equal(t, primitive.StatusVerifyFailed, primitive.StatusOf(err))
			})
		}
	}
}

func TestSign_Verify_MLDSA(t *testing.T) {
	pub, priv, err := mldsa65.GenerateKey(cryptorand.Reader)
	require.NoError(t, err)
	raw, err := priv.MarshalBinary()
	require.NoError(t, err)

	h := newHandle(t, pemBytes("ML-DSA-65 PRIVATE KEY", raw))
	require.Equal(t, AlgMLDSA65, h.Type())

	message := []byte("post-quantum signature round trip")
	sig, err := h.Sign(message, digest.None)
	require.NoError(t, err)
	require.NoError(t, h.Verify(message, sig, digest.None))

	// A handle holding only the public half verifies the same signature.
	pubRaw, err := pub.MarshalBinary()
	require.NoError(t, err)
	verifier, err := New(AlgNone, WithLogger(logging.Nop()))
	require.NoError(t, err)
	defer func() { _ = verifier.Close() }()
	require.NoError(t, verifier.ParsePublicKey(pemBytes("ML-DSA-65 PUBLIC KEY", pubRaw)))
	require.NoError(t, verifier.Verify(message, sig, digest.None))
}

// Ed25519 and ML-DSA sign whole messages: their operable length is unbounded,
// so a multi-kilobyte input passes through undigested.
func TestSign_LongMessagePassThrough(t *testing.T) {
	message := bytes.Repeat([]byte("unbounded operand "), 512)

	t.Run("Ed25519", func(t *testing.T) {
		h := newHandle(t, ed25519PEM(t))
		require.Greater(t, h.MaxOperableLength(), len(message))

		sig, err := h.Sign(message, digest.None)
		require.NoError(t, err)
		require.NoError(t, h.Verify(message, sig, digest.None))
	})

	t.Run("MLDSA65", func(t *testing.T) {
		_, priv, err := mldsa65.GenerateKey(cryptorand.Reader)
		require.NoError(t, err)
		raw, err := priv.MarshalBinary()
		require.NoError(t, err)
		h := newHandle(t, pemBytes("ML-DSA-65 PRIVATE KEY", raw))

		sig, err := h.Sign(message, digest.None)
		require.NoError(t, err)
		require.NoError(t, h.Verify(message, sig, digest.None))
	})
}

func TestVerify_PublicOnlyHandle(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(cryptorand.Reader, 2048)
	require.NoError(t, err)

	signer := newHandle(t, pkcs8PEM(t, rsaKey))
	message := []byte("signed privately, verified publicly")
	sig, err := signer.Sign(message, digest.SHA256)
	require.NoError(t, err)

	verifier, err := New(AlgNone, WithLogger(logging.Nop()))
	require.NoError(t, err)
	defer func() { _ = verifier.Close() }()
	require.NoError(t, verifier.ParsePublicKey(pkixPEM(t, &rsaKey.PublicKey)))

	require.NoError(t, verifier.Verify(message, sig, digest.SHA256))
	assert.False(t, verifier.HasPrivate())
}

// Sign returns an empty result alongside the error, never a partial
// signature.
func TestSign_EmptyResultOnFailure(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(cryptorand.Reader, 2048)
	require.NoError(t, err)

	h, err := New(AlgNone, WithLogger(logging.Nop()))
	require.NoError(t, err)
	defer func() { _ = h.Close() }()
	require.NoError(t, h.ParsePublicKey(pkixPEM(t, &rsaKey.PublicKey)))

	sig, err := h.Sign([]byte("message"), digest.SHA256)
	assert.True(t, errors.Is(err, primitive.StatusKeyRequired))
	assert.Nil(t, sig)
}

// ===== Encrypt and Decrypt =====

func TestEncrypt_Decrypt_RoundTrip(t *testing.T) {
	h := newHandle(t, rsaPEM(t))

	plaintext := []byte("attack at dawn")
	ciphertext, err := h.Encrypt(plaintext)
	require.NoError(t, err)
	assert.Len(t, ciphertext, h.KeySizeBytes())

	// A full-size ciphertext sits exactly at the operable limit.
	decrypted, err := h.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

// Oversized inputs are rejected before the primitive is consulted: the error
// is the engine's own, with no primitive status attached.
func TestEncrypt_InputTooLong(t *testing.T) {
	h := newHandle(t, rsaPEM(t))

	oversized := make([]byte, h.MaxOperableLength()+1)
	_, err := h.Encrypt(oversized)
	assert.True(t, errors.Is(err, ErrInputTooLong))
	assert.Equal(t, primitive.StatusOK, primitive.StatusOf(err))
}

// An input of exactly the operable length passes the guard and fails in the
// primitive instead, with the padding envelope rejecting it.
func TestEncrypt_AtLimitReachesPrimitive(t *testing.T) {
	h := newHandle(t, rsaPEM(t))

	atLimit := make([]byte, h.MaxOperableLength())
	_, err := h.Encrypt(atLimit)
	assert.True(t, errors.Is(err, primitive.StatusEncryptFailed), "got %v", err)
}

func TestDecrypt_InputTooLong(t *testing.T) {
	h := newHandle(t, rsaPEM(t))

	oversized := make([]byte, h.MaxOperableLength()+1)
	_, err := h.Decrypt(oversized)
	assert.True(t, errors.Is(err, ErrInputTooLong))
}

func TestEncrypt_SignatureOnlyKey(t *testing.T) {
	h := newHandle(t, ecPEM(t))

	_, err := h.Encrypt([]byte("message"))
	assert.True(t, errors.Is(err, primitive.StatusFeatureUnavailable))

	_, err = h.Decrypt([]byte("ct"))
	assert.True(t, errors.Is(err, primitive.StatusFeatureUnavailable))
}

// ===== Diagnostics =====

func TestSign_FailureLogsStatusHex(t *testing.T) {
	var buf bytes.Buffer
	h, err := New(AlgNone, WithLogger(logging.New(&buf, false)))
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	_, err = h.Sign([]byte("message"), digest.SHA256)
	require.Error(t, err)

	logged := buf.String()
	assert.Contains(t, logged, `"op":"sign"`)
	assert.Contains(t, logged, `"status":"-0x3E80"`)
	assert.Contains(t, logged, `"level":"error"`)
	assert.Contains(t, logged, `"handle":"`+h.ID()+`"`)
}

func TestParse_FailureLogsStatusHex(t *testing.T) {
	var buf bytes.Buffer
	h, err := New(AlgNone, WithLogger(logging.New(&buf, false)))
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	require.Error(t, h.ParsePrivateKey([]byte("not a key"), nil))

	logged := buf.String()
	assert.Contains(t, logged, `"op":"parse_private_key"`)
	assert.Contains(t, logged, `"status":"-0x3D00"`)
}

// A failed verification is a result, not a fault: nothing is written to the
// diagnostic sink.
func TestVerify_FailureIsSilent(t *testing.T) {
	var buf bytes.Buffer
	h, err := New(AlgNone, WithLogger(logging.New(&buf, false)))
	require.NoError(t, err)
	defer func() { _ = h.Close() }()
	require.NoError(t, h.ParsePrivateKey(rsaPEM(t), nil))

	message := []byte("message")
	sig, err := h.Sign(message, digest.SHA256)
	require.NoError(t, err)

	err = h.Verify([]byte("a different message"), sig, digest.SHA256)
	require.Error(t, err)
	assert.Equal(t, primitive.StatusVerifyFailed, primitive.StatusOf(err))

	assert.Zero(t, buf.Len(), "verify must not emit diagnostics: %s", buf.String())
}
