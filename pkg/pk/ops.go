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
	"crypto"
	"fmt"
	"time"

	"github.com/jeremyhahn/go-pubkey/pkg/digest"
	"github.com/jeremyhahn/go-pubkey/pkg/metrics"
	"github.com/jeremyhahn/go-pubkey/pkg/primitive"
)

// Prepare normalizes a message into the operand the signing primitives
// consume. With the None selector the message passes through untouched as
// long as it is shorter than the key's maximum operable length; in every
// other case the message is digested with the selected algorithm. Prepare
// emits no diagnostics; Sign logs the failure when it acts on one.
func (h *KeyHandle) Prepare(message []byte, selector digest.Algorithm) ([]byte, error) {
	if selector == digest.None && len(message) < h.MaxOperableLength() {
		return message, nil
	}
	return digest.Sum(message, selector)
}

// Sign signs message with the bound private key. The message is normalized
// through Prepare first. On failure Sign logs the raw status code and
// returns an empty result along with the error.
func (h *KeyHandle) Sign(message []byte, selector digest.Algorithm) ([]byte, error) {
	start := time.Now()
	operand, err := h.Prepare(message, selector)
	if err != nil {
		h.record(metrics.OpSign, start, err)
		h.logFailure(metrics.OpSign, err)
		return nil, err
	}

	var sig [primitive.MaxSignatureSize]byte
	n, err := h.ctx.Sign(signingHash(selector), operand, sig[:], h.random)
	h.record(metrics.OpSign, start, err)
	if err != nil {
		h.logFailure(metrics.OpSign, err)
		return nil, err
	}
	return sig[:n], nil
}

// Verify checks signature over message. The message is normalized through
// Prepare exactly as Sign normalizes it. The returned error carries the raw
// verification status and nil means the signature is valid. Verify emits no
// diagnostics: rejecting a signature is a result, not a fault, and the
// caller decides its severity.
func (h *KeyHandle) Verify(message, signature []byte, selector digest.Algorithm) error {
	start := time.Now()
	operand, err := h.Prepare(message, selector)
	if err == nil {
		err = h.ctx.Verify(signingHash(selector), operand, signature)
	}
	h.record(metrics.OpVerify, start, err)
	return err
}

// Encrypt encrypts plaintext with the bound public key. Plaintext longer
// than the key's maximum operable length is rejected with ErrInputTooLong
// before the primitive is consulted.
func (h *KeyHandle) Encrypt(plaintext []byte) ([]byte, error) {
	start := time.Now()
	if err := h.checkSize(len(plaintext)); err != nil {
		h.record(metrics.OpEncrypt, start, err)
		h.logFailure(metrics.OpEncrypt, err)
		return nil, err
	}

	var out [primitive.MaxMPISize]byte
	n, err := h.ctx.Encrypt(plaintext, out[:], h.random)
	h.record(metrics.OpEncrypt, start, err)
	if err != nil {
		h.logFailure(metrics.OpEncrypt, err)
		return nil, err
	}
	return out[:n], nil
}

// Decrypt decrypts ciphertext with the bound private key. Ciphertext longer
// than the key's maximum operable length is rejected with ErrInputTooLong
// before the primitive is consulted.
func (h *KeyHandle) Decrypt(ciphertext []byte) ([]byte, error) {
	start := time.Now()
	if err := h.checkSize(len(ciphertext)); err != nil {
		h.record(metrics.OpDecrypt, start, err)
		h.logFailure(metrics.OpDecrypt, err)
		return nil, err
	}

	var out [primitive.MaxMPISize]byte
	n, err := h.ctx.Decrypt(ciphertext, out[:], h.random)
	h.record(metrics.OpDecrypt, start, err)
	if err != nil {
		h.logFailure(metrics.OpDecrypt, err)
		return nil, err
	}
	return out[:n], nil
}

// checkSize rejects inputs longer than the key's maximum operable length.
// Inputs of exactly the maximum length are admitted; the primitive itself
// enforces any tighter envelope, such as the PKCS#1 v1.5 padding overhead.
func (h *KeyHandle) checkSize(n int) error {
	limit := h.MaxOperableLength()
	if n > limit {
		return fmt.Errorf("%w: %d bytes, key allows %d", ErrInputTooLong, n, limit)
	}
	return nil
}

// signingHash maps the selector to the crypto.Hash identifier the primitive
// needs for signature encoding, zero for None. Callers run Prepare first,
// which vets the selector.
func signingHash(selector digest.Algorithm) crypto.Hash {
	if selector == digest.None {
		return 0
	}
	hfn, _ := selector.CryptoHash()
	return hfn
}

// record publishes the operation outcome to the metrics registry.
func (h *KeyHandle) record(op string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	metrics.RecordOperation(op, h.Type().String(), status, time.Since(start).Seconds())
}

// logFailure emits the operation's failure diagnostic. Primitive failures
// are reported by their raw status code rendered in hexadecimal.
func (h *KeyHandle) logFailure(op string, err error) {
	event := h.logger.Error().Str("op", op)
	if code := primitive.StatusOf(err); code != primitive.StatusOK {
		event.Str("status", code.Hex())
		metrics.RecordError(op, h.Type().String(), code.Hex())
	}
	event.Msg(err.Error())
}
