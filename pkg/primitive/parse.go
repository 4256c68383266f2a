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
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
	"github.com/youmark/pkcs8"
)

// PEM block types accepted by the parse paths.
const (
	pemTypePKCS8          = "PRIVATE KEY"
	pemTypePKCS8Encrypted = "ENCRYPTED PRIVATE KEY"
	pemTypePKCS1Private   = "RSA PRIVATE KEY"
	pemTypeSEC1           = "EC PRIVATE KEY"
	pemTypePKIX           = "PUBLIC KEY"
	pemTypePKCS1Public    = "RSA PUBLIC KEY"
	pemTypeMLDSA44Private = "ML-DSA-44 PRIVATE KEY"
	pemTypeMLDSA65Private = "ML-DSA-65 PRIVATE KEY"
	pemTypeMLDSA87Private = "ML-DSA-87 PRIVATE KEY"
	pemTypeMLDSA44Public  = "ML-DSA-44 PUBLIC KEY"
	pemTypeMLDSA65Public  = "ML-DSA-65 PUBLIC KEY"
	pemTypeMLDSA87Public  = "ML-DSA-87 PUBLIC KEY"
)

// ParsePrivateKey decodes key into ctx, deriving the algorithm tag from the
// decoded type. PEM and raw DER are both accepted; supported encodings are
// PKCS#8 (plain and encrypted), PKCS#1, SEC1, legacy DEK-Info encrypted PEM,
// and raw ML-DSA blocks. A zero-length passphrase means the material is
// expected to be unencrypted. On failure the context is left untouched and
// the returned error carries a raw status code.
func ParsePrivateKey(ctx *Context, key, passphrase []byte) error {
	if ctx == nil {
		return fmt.Errorf("%w: nil context", StatusBadInputData)
	}
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key material", StatusKeyInvalidFormat)
	}

	block, _ := pem.Decode(key)
	if block == nil {
		return parsePrivateDER(ctx, key, passphrase)
	}

	der := block.Bytes
	if x509.IsEncryptedPEMBlock(block) { //nolint:staticcheck // legacy RFC 1423 keys still circulate
		if len(passphrase) == 0 {
			return fmt.Errorf("%w: key material is encrypted", StatusPasswordRequired)
		}
		decrypted, err := x509.DecryptPEMBlock(block, passphrase) //nolint:staticcheck
		if err != nil {
			return fmt.Errorf("%w: %v", StatusPasswordMismatch, err)
		}
		der = decrypted
	}

	switch block.Type {
	case pemTypePKCS8:
		decoded, err := x509.ParsePKCS8PrivateKey(der)
		if err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return bindPrivate(ctx, decoded)
	case pemTypePKCS8Encrypted:
		return parseEncryptedPKCS8(ctx, der, passphrase)
	case pemTypePKCS1Private:
		decoded, err := x509.ParsePKCS1PrivateKey(der)
		if err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return bindPrivate(ctx, decoded)
	case pemTypeSEC1:
		decoded, err := x509.ParseECPrivateKey(der)
		if err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return bindPrivate(ctx, decoded)
	case pemTypeMLDSA44Private:
		return parseMLDSAPrivate(ctx, AlgMLDSA44, der)
	case pemTypeMLDSA65Private:
		return parseMLDSAPrivate(ctx, AlgMLDSA65, der)
	case pemTypeMLDSA87Private:
		return parseMLDSAPrivate(ctx, AlgMLDSA87, der)
	default:
		return parsePrivateDER(ctx, der, passphrase)
	}
}

// ParsePublicKey decodes key into ctx, restricted to public encodings: PKIX,
// PKCS#1, and raw ML-DSA blocks, as PEM or raw DER.
func ParsePublicKey(ctx *Context, key []byte) error {
	if ctx == nil {
		return fmt.Errorf("%w: nil context", StatusBadInputData)
	}
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key material", StatusKeyInvalidFormat)
	}

	block, _ := pem.Decode(key)
	if block == nil {
		return parsePublicDER(ctx, key)
	}

	switch block.Type {
	case pemTypePKIX:
		decoded, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return bindPublic(ctx, decoded)
	case pemTypePKCS1Public:
		decoded, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return bindPublic(ctx, decoded)
	case pemTypeMLDSA44Public:
		return parseMLDSAPublic(ctx, AlgMLDSA44, block.Bytes)
	case pemTypeMLDSA65Public:
		return parseMLDSAPublic(ctx, AlgMLDSA65, block.Bytes)
	case pemTypeMLDSA87Public:
		return parseMLDSAPublic(ctx, AlgMLDSA87, block.Bytes)
	default:
		return parsePublicDER(ctx, block.Bytes)
	}
}

// parsePrivateDER tries the bare-DER private encodings in order. Encrypted
// PKCS#8 DER is attempted last and only when a passphrase accompanies it.
func parsePrivateDER(ctx *Context, der, passphrase []byte) error {
	if decoded, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return bindPrivate(ctx, decoded)
	}
	if decoded, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return bindPrivate(ctx, decoded)
	}
	if decoded, err := x509.ParseECPrivateKey(der); err == nil {
		return bindPrivate(ctx, decoded)
	}
	if len(passphrase) > 0 {
		return parseEncryptedPKCS8(ctx, der, passphrase)
	}
	return fmt.Errorf("%w: unrecognized private key encoding", StatusKeyInvalidFormat)
}

func parsePublicDER(ctx *Context, der []byte) error {
	if decoded, err := x509.ParsePKIXPublicKey(der); err == nil {
		return bindPublic(ctx, decoded)
	}
	if decoded, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return bindPublic(ctx, decoded)
	}
	return fmt.Errorf("%w: unrecognized public key encoding", StatusKeyInvalidFormat)
}

func parseEncryptedPKCS8(ctx *Context, der, passphrase []byte) error {
	if len(passphrase) == 0 {
		return fmt.Errorf("%w: key material is encrypted", StatusPasswordRequired)
	}
	decoded, err := pkcs8.ParsePKCS8PrivateKey(der, passphrase)
	if err != nil {
		if isPasswordError(err) {
			return fmt.Errorf("%w: %v", StatusPasswordMismatch, err)
		}
		return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
	}
	return bindPrivate(ctx, decoded)
}

func parseMLDSAPrivate(ctx *Context, alg Algorithm, raw []byte) error {
	switch alg {
	case AlgMLDSA44:
		var key mldsa44.PrivateKey
		if err := key.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return ctx.bind(alg, &key, key.Public())
	case AlgMLDSA65:
		var key mldsa65.PrivateKey
		if err := key.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return ctx.bind(alg, &key, key.Public())
	default:
		var key mldsa87.PrivateKey
		if err := key.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return ctx.bind(alg, &key, key.Public())
	}
}

func parseMLDSAPublic(ctx *Context, alg Algorithm, raw []byte) error {
	switch alg {
	case AlgMLDSA44:
		var key mldsa44.PublicKey
		if err := key.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return ctx.bind(alg, nil, &key)
	case AlgMLDSA65:
		var key mldsa65.PublicKey
		if err := key.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return ctx.bind(alg, nil, &key)
	default:
		var key mldsa87.PublicKey
		if err := key.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return ctx.bind(alg, nil, &key)
	}
}

// bindPrivate derives the algorithm tag from the decoded key type and binds
// both key halves.
func bindPrivate(ctx *Context, key crypto.PrivateKey) error {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		if err := k.Validate(); err != nil {
			return fmt.Errorf("%w: %v", StatusKeyInvalidFormat, err)
		}
		return ctx.bind(AlgRSA, k, &k.PublicKey)
	case *ecdsa.PrivateKey:
		return ctx.bind(AlgECKey, k, &k.PublicKey)
	case ed25519.PrivateKey:
		return ctx.bind(AlgEd25519, k, k.Public())
	case *ecdh.PrivateKey:
		return ctx.bind(AlgECKeyDH, k, k.PublicKey())
	default:
		return fmt.Errorf("%w: unsupported private key type %T", StatusUnknownAlgorithm, key)
	}
}

func bindPublic(ctx *Context, key crypto.PublicKey) error {
	switch k := key.(type) {
	case *rsa.PublicKey:
		return ctx.bind(AlgRSA, nil, k)
	case *ecdsa.PublicKey:
		return ctx.bind(AlgECKey, nil, k)
	case ed25519.PublicKey:
		return ctx.bind(AlgEd25519, nil, k)
	case *ecdh.PublicKey:
		return ctx.bind(AlgECKeyDH, nil, k)
	default:
		return fmt.Errorf("%w: unsupported public key type %T", StatusInvalidPublicKey, key)
	}
}

// isPasswordError classifies decrypt failures from the pkcs8 package, which
// reports wrong passphrases through several message shapes.
func isPasswordError(err error) bool {
	msg := err.Error()
	for _, probe := range []string{"incorrect password", "asn1: structure error", "tags don't match"} {
		if strings.Contains(msg, probe) {
			return true
		}
	}
	return false
}
