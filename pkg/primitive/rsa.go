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

// rsaSuite implements RSASSA-PKCS1-v1_5 signatures and RSAES-PKCS1-v1_5
// encryption. A zero hfn signs the operand directly without a DigestInfo
// prefix, for callers that pre-hash or sign short raw data.
type rsaSuite struct{}

var _ suite = rsaSuite{}

func (rsaSuite) algorithm() Algorithm { return AlgRSA }

func (rsaSuite) name() string { return "RSA" }

func (rsaSuite) canDo(alg Algorithm) bool {
	return alg == AlgRSA || alg == AlgRSASSAPSS
}

func (rsaSuite) sizeBits(pub crypto.PublicKey) int {
	return rsaBits(pub)
}

func (rsaSuite) maxOperable(pub crypto.PublicKey) int {
	return (rsaBits(pub) + 7) / 8
}

func (rsaSuite) sign(priv crypto.PrivateKey, hfn crypto.Hash, digest, sig []byte, random io.Reader) (int, error) {
	key, err := rsaPrivate(priv)
	if err != nil {
		return 0, err
	}
	raw, err := rsa.SignPKCS1v15(random, key, hfn, digest)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", StatusBadInputData, err)
	}
	return copyOut(sig, raw)
}

func (rsaSuite) verify(pub crypto.PublicKey, hfn crypto.Hash, digest, signature []byte) error {
	key, err := rsaPublic(pub)
	if err != nil {
		return err
	}
	if err := rsa.VerifyPKCS1v15(key, hfn, digest, signature); err != nil {
		return fmt.Errorf("%w: %v", StatusVerifyFailed, err)
	}
	return nil
}

func (rsaSuite) encrypt(pub crypto.PublicKey, plaintext, out []byte, random io.Reader) (int, error) {
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

func (rsaSuite) decrypt(priv crypto.PrivateKey, ciphertext, out []byte, random io.Reader) (int, error) {
	key, err := rsaPrivate(priv)
	if err != nil {
		return 0, err
	}
	plaintext, err := rsa.DecryptPKCS1v15(random, key, ciphertext)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", StatusDecryptFailed, err)
	}
	return copyOut(out, plaintext)
}

// pssSuite implements RSASSA-PSS signatures with salt length equal to the
// digest length. PSS is signature-only and always requires a concrete
// digest function.
type pssSuite struct{}

var _ suite = pssSuite{}

func (pssSuite) algorithm() Algorithm { return AlgRSASSAPSS }

func (pssSuite) name() string { return "RSASSA-PSS" }

func (pssSuite) canDo(alg Algorithm) bool {
	return alg == AlgRSASSAPSS
}

func (pssSuite) sizeBits(pub crypto.PublicKey) int {
	return rsaBits(pub)
}

func (pssSuite) maxOperable(pub crypto.PublicKey) int {
	return (rsaBits(pub) + 7) / 8
}

func (pssSuite) sign(priv crypto.PrivateKey, hfn crypto.Hash, digest, sig []byte, random io.Reader) (int, error) {
	key, err := rsaPrivate(priv)
	if err != nil {
		return 0, err
	}
	if hfn == 0 {
		return 0, fmt.Errorf("%w: PSS requires a digest function", StatusBadInputData)
	}
	raw, err := rsa.SignPSS(random, key, hfn, digest, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       hfn,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", StatusBadInputData, err)
	}
	return copyOut(sig, raw)
}

func (pssSuite) verify(pub crypto.PublicKey, hfn crypto.Hash, digest, signature []byte) error {
	key, err := rsaPublic(pub)
	if err != nil {
		return err
	}
	if hfn == 0 {
		return fmt.Errorf("%w: PSS requires a digest function", StatusBadInputData)
	}
	err = rsa.VerifyPSS(key, hfn, digest, signature, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       hfn,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", StatusVerifyFailed, err)
	}
	return nil
}

func (pssSuite) encrypt(crypto.PublicKey, []byte, []byte, io.Reader) (int, error) {
	return 0, fmt.Errorf("%w: RSASSA-PSS is signature-only", StatusFeatureUnavailable)
}

func (pssSuite) decrypt(crypto.PrivateKey, []byte, []byte, io.Reader) (int, error) {
	return 0, fmt.Errorf("%w: RSASSA-PSS is signature-only", StatusFeatureUnavailable)
}

func rsaBits(pub crypto.PublicKey) int {
	key, ok := pub.(*rsa.PublicKey)
	if !ok {
		return 0
	}
	return key.N.BitLen()
}

func rsaPrivate(priv crypto.PrivateKey) (*rsa.PrivateKey, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: context holds no private key", StatusKeyRequired)
	}
	key, ok := priv.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected RSA private key, got %T", StatusTypeMismatch, priv)
	}
	return key, nil
}

func rsaPublic(pub crypto.PublicKey) (*rsa.PublicKey, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: context holds no public key", StatusBadInputData)
	}
	key, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected RSA public key, got %T", StatusTypeMismatch, pub)
	}
	return key, nil
}
