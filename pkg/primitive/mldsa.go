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
	"fmt"
	"io"
	"math"

	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// mldsaSuite implements the three ML-DSA (FIPS 204) parameter sets in pure
// mode. Like Ed25519, ML-DSA signs whole messages: the operable length is
// unbounded and the digest function parameter is ignored.
type mldsaSuite struct {
	tag Algorithm
}

var _ suite = mldsaSuite{}

func (s mldsaSuite) algorithm() Algorithm { return s.tag }

func (s mldsaSuite) name() string { return s.tag.String() }

func (s mldsaSuite) canDo(alg Algorithm) bool {
	return alg == s.tag
}

func (s mldsaSuite) sizeBits(pub crypto.PublicKey) int {
	switch pub.(type) {
	case *mldsa44.PublicKey:
		if s.tag == AlgMLDSA44 {
			return mldsa44.PublicKeySize * 8
		}
	case *mldsa65.PublicKey:
		if s.tag == AlgMLDSA65 {
			return mldsa65.PublicKeySize * 8
		}
	case *mldsa87.PublicKey:
		if s.tag == AlgMLDSA87 {
			return mldsa87.PublicKeySize * 8
		}
	}
	return 0
}

func (s mldsaSuite) maxOperable(pub crypto.PublicKey) int {
	if s.sizeBits(pub) == 0 {
		return 0
	}
	return math.MaxInt32
}

func (s mldsaSuite) sign(priv crypto.PrivateKey, _ crypto.Hash, digest, sig []byte, random io.Reader) (int, error) {
	if priv == nil {
		return 0, fmt.Errorf("%w: context holds no private key", StatusKeyRequired)
	}
	if !s.matchesPrivate(priv) {
		return 0, fmt.Errorf("%w: expected %s private key, got %T", StatusTypeMismatch, s.tag, priv)
	}
	signer := priv.(crypto.Signer)
	raw, err := signer.Sign(random, digest, crypto.Hash(0))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", StatusBadInputData, err)
	}
	return copyOut(sig, raw)
}

func (s mldsaSuite) verify(pub crypto.PublicKey, _ crypto.Hash, digest, signature []byte) error {
	if pub == nil {
		return fmt.Errorf("%w: context holds no public key", StatusBadInputData)
	}
	switch key := pub.(type) {
	case *mldsa44.PublicKey:
		if s.tag != AlgMLDSA44 {
			break
		}
		if !mldsa44.Verify(key, digest, nil, signature) {
			return StatusVerifyFailed
		}
		return nil
	case *mldsa65.PublicKey:
		if s.tag != AlgMLDSA65 {
			break
		}
		if !mldsa65.Verify(key, digest, nil, signature) {
			return StatusVerifyFailed
		}
		return nil
	case *mldsa87.PublicKey:
		if s.tag != AlgMLDSA87 {
			break
		}
		if !mldsa87.Verify(key, digest, nil, signature) {
			return StatusVerifyFailed
		}
		return nil
	}
	return fmt.Errorf("%w: expected %s public key, got %T", StatusTypeMismatch, s.tag, pub)
}

func (s mldsaSuite) encrypt(crypto.PublicKey, []byte, []byte, io.Reader) (int, error) {
	return 0, fmt.Errorf("%w: ML-DSA keys do not encrypt", StatusFeatureUnavailable)
}

func (s mldsaSuite) decrypt(crypto.PrivateKey, []byte, []byte, io.Reader) (int, error) {
	return 0, fmt.Errorf("%w: ML-DSA keys do not decrypt", StatusFeatureUnavailable)
}

func (s mldsaSuite) matchesPrivate(priv crypto.PrivateKey) bool {
	switch priv.(type) {
	case *mldsa44.PrivateKey:
		return s.tag == AlgMLDSA44
	case *mldsa65.PrivateKey:
		return s.tag == AlgMLDSA65
	case *mldsa87.PrivateKey:
		return s.tag == AlgMLDSA87
	}
	return false
}
