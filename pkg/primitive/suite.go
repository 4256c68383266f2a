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
	"io"

	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

const (
	// MaxMPISize is the largest bignum the suites operate on, in bytes
	// (an 8192-bit RSA modulus). Encrypt and decrypt output buffers must
	// hold at least this many bytes.
	MaxMPISize = 1024

	// MaxSignatureSize is the largest signature any registered suite can
	// emit. ML-DSA-87 produces the largest signatures in the registry.
	MaxSignatureSize = mldsa87.SignatureSize
)

// suite is the per-family operation table a Context dispatches through.
// Implementations receive whatever key halves the context holds; a nil
// private key must yield StatusKeyRequired from sign and decrypt, and keys
// of an unexpected concrete type must yield StatusTypeMismatch.
type suite interface {
	// algorithm returns the family tag the suite is registered under.
	algorithm() Algorithm

	// name returns the human-readable family label.
	name() string

	// canDo reports whether keys of this family support operations of the
	// given algorithm family.
	canDo(alg Algorithm) bool

	// sizeBits returns the key size in bits, or zero when pub is nil.
	sizeBits(pub crypto.PublicKey) int

	// maxOperable returns the largest input length one operation accepts.
	maxOperable(pub crypto.PublicKey) int

	// sign writes a signature over digest into sig and returns the number
	// of bytes written. hfn names the digest function that produced the
	// operand; zero means the operand is signed as presented.
	sign(priv crypto.PrivateKey, hfn crypto.Hash, digest, sig []byte, random io.Reader) (int, error)

	// verify checks signature against digest. A nil return means valid.
	verify(pub crypto.PublicKey, hfn crypto.Hash, digest, signature []byte) error

	// encrypt writes ciphertext for plaintext into out and returns the
	// number of bytes written.
	encrypt(pub crypto.PublicKey, plaintext, out []byte, random io.Reader) (int, error)

	// decrypt writes plaintext for ciphertext into out and returns the
	// number of bytes written.
	decrypt(priv crypto.PrivateKey, ciphertext, out []byte, random io.Reader) (int, error)
}

// suites is the dispatch registry keyed by algorithm tag.
var suites = map[Algorithm]suite{
	AlgRSA:       rsaSuite{},
	AlgRSASSAPSS: pssSuite{},
	AlgECKey:     ecSuite{tag: AlgECKey},
	AlgECKeyDH:   ecSuite{tag: AlgECKeyDH},
	AlgECDSA:     ecSuite{tag: AlgECDSA},
	AlgRSAAlt:    rsaAltSuite{},
	AlgEd25519:   ed25519Suite{},
	AlgMLDSA44:   mldsaSuite{tag: AlgMLDSA44},
	AlgMLDSA65:   mldsaSuite{tag: AlgMLDSA65},
	AlgMLDSA87:   mldsaSuite{tag: AlgMLDSA87},
}

// copyOut writes result into out, enforcing the fixed-buffer contract.
func copyOut(out, result []byte) (int, error) {
	if len(out) < len(result) {
		return 0, StatusBufferTooSmall
	}
	return copy(out, result), nil
}
