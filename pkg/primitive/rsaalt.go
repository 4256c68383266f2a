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
	"crypto/rsa"
	"fmt"
	"io"
)

// BindSigner wraps an externally-held RSA key into ctx. The private
// operations delegate to signer (and to its crypto.Decrypter side when it
// has one); the public operations use the signer's public key locally.
// Non-RSA signers are rejected with StatusTypeMismatch. Whatever the context
// held before is replaced.
func BindSigner(ctx *Context, signer crypto.Signer) error {
	if ctx == nil || signer == nil {
		return fmt.Errorf("%w: nil context or signer", StatusBadInputData)
	}
	pub, ok := signer.Public().(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: rsa-alt requires an RSA signer, got %T", StatusTypeMismatch, signer.Public())
	}
	return ctx.bind(AlgRSAAlt, signer, pub)
}

// rsaAltSuite proxies RSA operations through a bound crypto.Signer, for keys
// held in hardware or a remote service. It answers capability queries as an
// RSA key (canDo reports AlgRSA, matching how the key behaves), while its
// own tag distinguishes it from locally-held RSA contexts.
type rsaAltSuite struct{}

var _ suite = rsaAltSuite{}

func (rsaAltSuite) algorithm() Algorithm { return AlgRSAAlt }

func (rsaAltSuite) name() string { return "RSA-ALT" }

func (rsaAltSuite) canDo(alg Algorithm) bool {
	return alg == AlgRSA
}

func (rsaAltSuite) sizeBits(pub crypto.PublicKey) int {
	return rsaBits(pub)
}

func (rsaAltSuite) maxOperable(pub crypto.PublicKey) int {
	return (rsaBits(pub) + 7) / 8
}

func (rsaAltSuite) sign(priv crypto.PrivateKey, hfn crypto.Hash, digest, sig []byte, random io.Reader) (int, error) {
	if priv == nil {
		return 0, fmt.Errorf("%w: context holds no signer", StatusKeyRequired)
	}
	signer, ok := priv.(crypto.Signer)
	if !ok {
		return 0, fmt.Errorf("%w: expected crypto.Signer, got %T", StatusTypeMismatch, priv)
	}
	raw, err := signer.Sign(random, digest, hfn)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", StatusBadInputData, err)
	}
	return copyOut(sig, raw)
}

func (rsaAltSuite) verify(pub crypto.PublicKey, hfn crypto.Hash, digest, signature []byte) error {
	key, err := rsaPublic(pub)
	if err != nil {
		return err
	}
	if err := rsa.VerifyPKCS1v15(key, hfn, digest, signature); err != nil {
		return fmt.Errorf("%w: %v", StatusVerifyFailed, err)
	}
	return nil
}

func (rsaAltSuite) encrypt(pub crypto.PublicKey, plaintext, out []byte, random io.Reader) (int, error) {
	key, err := rsaPublic(pub)
	if err != nil {
		return 0, err
	}
	ciphertext, err := rsa.EncryptPKCS1v15(random, key, plaintext)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", StatusEncryptFailed, err)
	}
	return copyOut(out, ciphertext)
}

func (rsaAltSuite) decrypt(priv crypto.PrivateKey, ciphertext, out []byte, random io.Reader) (int, error) {
	if priv == nil {
		return 0, fmt.Errorf("%w: context holds no signer", StatusKeyRequired)
	}
	decrypter, ok := priv.(crypto.Decrypter)
	if !ok {
		return 0, fmt.Errorf("%w: bound signer cannot decrypt", StatusFeatureUnavailable)
	}
	plaintext, err := decrypter.Decrypt(random, ciphertext, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", StatusDecryptFailed, err)
	}
	return copyOut(out, plaintext)
}
