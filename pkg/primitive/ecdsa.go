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
	"crypto/ecdh"
	"crypto/ecdsa"
	"fmt"
	"io"
)

// ecSuite covers the three elliptic-curve tags. AlgECKey keys sign ECDSA and
// agree keys, AlgECDSA keys are signature-restricted, and AlgECKeyDH keys
// (X25519 and agreement-only NIST keys) support no engine operations.
type ecSuite struct {
	tag Algorithm
}

var _ suite = ecSuite{}

func (s ecSuite) algorithm() Algorithm { return s.tag }

func (s ecSuite) name() string { return s.tag.String() }

func (s ecSuite) canDo(alg Algorithm) bool {
	switch s.tag {
	case AlgECKey:
		return alg == AlgECKey || alg == AlgECKeyDH || alg == AlgECDSA
	case AlgECKeyDH:
		return alg == AlgECKey || alg == AlgECKeyDH
	case AlgECDSA:
		return alg == AlgECDSA
	}
	return false
}

func (s ecSuite) sizeBits(pub crypto.PublicKey) int {
	switch key := pub.(type) {
	case *ecdsa.PublicKey:
		return key.Curve.Params().BitSize
	case *ecdh.PublicKey:
		switch key.Curve() {
		case ecdh.P256():
			return 256
		case ecdh.P384():
			return 384
		case ecdh.P521():
			return 521
		case ecdh.X25519():
			return 256
		}
	}
	return 0
}

func (s ecSuite) maxOperable(pub crypto.PublicKey) int {
	return (s.sizeBits(pub) + 7) / 8
}

func (s ecSuite) sign(priv crypto.PrivateKey, _ crypto.Hash, digest, sig []byte, random io.Reader) (int, error) {
	if s.tag == AlgECKeyDH {
		return 0, fmt.Errorf("%w: key is restricted to key agreement", StatusFeatureUnavailable)
	}
	if priv == nil {
		return 0, fmt.Errorf("%w: context holds no private key", StatusKeyRequired)
	}
	key, ok := priv.(*ecdsa.PrivateKey)
	if !ok {
		return 0, fmt.Errorf("%w: expected EC private key, got %T", StatusTypeMismatch, priv)
	}
	raw, err := ecdsa.SignASN1(random, key, digest)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", StatusBadInputData, err)
	}
	return copyOut(sig, raw)
}

func (s ecSuite) verify(pub crypto.PublicKey, _ crypto.Hash, digest, signature []byte) error {
	if s.tag == AlgECKeyDH {
		return fmt.Errorf("%w: key is restricted to key agreement", StatusFeatureUnavailable)
	}
	if pub == nil {
		return fmt.Errorf("%w: context holds no public key", StatusBadInputData)
	}
	key, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: expected EC public key, got %T", StatusTypeMismatch, pub)
	}
	if !ecdsa.VerifyASN1(key, digest, signature) {
		return StatusVerifyFailed
	}
	return nil
}

func (s ecSuite) encrypt(crypto.PublicKey, []byte, []byte, io.Reader) (int, error) {
	return 0, fmt.Errorf("%w: EC keys do not encrypt", StatusFeatureUnavailable)
}

func (s ecSuite) decrypt(crypto.PrivateKey, []byte, []byte, io.Reader) (int, error) {
	return 0, fmt.Errorf("%w: EC keys do not decrypt", StatusFeatureUnavailable)
}
