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

package primitive

import (
	"crypto"
	"crypto/ed25519"
	"fmt"
	"io"
	"math"
)

// ed25519Suite implements pure Ed25519. The scheme signs whole messages, so
// the operable length is unbounded and the digest function parameter is
// ignored; callers that pre-hash get RFC 8032 behavior over the digest.
type ed25519Suite struct{}

var _ suite = ed25519Suite{}

func (ed25519Suite) algorithm() Algorithm { return AlgEd25519 }

func (ed25519Suite) name() string { return "ED25519" }

func (ed25519Suite) canDo(alg Algorithm) bool {
	return alg == AlgEd25519
}

func (ed25519Suite) sizeBits(pub crypto.PublicKey) int {
	if _, ok := pub.(ed25519.PublicKey); !ok {
		return 0
	}
	return ed25519.PublicKeySize * 8
}

func (ed25519Suite) maxOperable(pub crypto.PublicKey) int {
	if _, ok := pub.(ed25519.PublicKey); !ok {
		return 0
	}
	return math.MaxInt32
}

func (ed25519Suite) sign(priv crypto.PrivateKey, _ crypto.Hash, digest, sig []byte, _ io.Reader) (int, error) {
	if priv == nil {
		return 0, fmt.Errorf("%w: context holds no private key", StatusKeyRequired)
	}
	key, ok := priv.(ed25519.PrivateKey)
	if !ok {
		return 0, fmt.Errorf("%w: expected Ed25519 private key, got %T", StatusTypeMismatch, priv)
	}
	return copyOut(sig, ed25519.Sign(key, digest))
}

func (ed25519Suite) verify(pub crypto.PublicKey, _ crypto.Hash, digest, signature []byte) error {
	if pub == nil {
		return fmt.Errorf("%w: context holds no public key", StatusBadInputData)
	}
	key, ok := pub.(ed25519.PublicKey)
	if !ok {
		return fmt.Errorf("%w: expected Ed25519 public key, got %T", StatusTypeMismatch, pub)
	}
	if len(signature) != ed25519.SignatureSize {
		return fmt.Errorf("%w: %d bytes", StatusSignatureMismatch, len(signature))
	}
	if !ed25519.Verify(key, digest, signature) {
		return StatusVerifyFailed
	}
	return nil
}

func (ed25519Suite) encrypt(crypto.PublicKey, []byte, []byte, io.Reader) (int, error) {
	return 0, fmt.Errorf("%w: Ed25519 keys do not encrypt", StatusFeatureUnavailable)
}

func (ed25519Suite) decrypt(crypto.PrivateKey, []byte, []byte, io.Reader) (int, error) {
	return 0, fmt.Errorf("%w: Ed25519 keys do not decrypt", StatusFeatureUnavailable)
}
