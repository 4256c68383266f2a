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
	"fmt"
	"strings"
)

// =============================================================================
// Algorithm Tags
// =============================================================================

// Algorithm identifies a public-key algorithm family. The tag selects the
// operation suite a context dispatches through; AlgNone is the sentinel for
// "no algorithm bound".
type Algorithm string

const (
	// AlgNone is the uninitialized tag. A context carrying it holds no
	// usable key material.
	AlgNone Algorithm = "NONE"

	// AlgRSA is an RSA key usable for RSASSA-PKCS1-v1_5 signatures and
	// RSAES-PKCS1-v1_5 encryption.
	AlgRSA Algorithm = "RSA"

	// AlgECKey is a generic elliptic-curve key usable for ECDSA signatures
	// and key agreement.
	AlgECKey Algorithm = "EC"

	// AlgECKeyDH is an elliptic-curve key restricted to key agreement,
	// such as X25519. It supports no engine operations.
	AlgECKeyDH Algorithm = "EC-DH"

	// AlgECDSA is an elliptic-curve key restricted to ECDSA signatures.
	AlgECDSA Algorithm = "ECDSA"

	// AlgRSAAlt is an externally-held RSA key reached through a bound
	// crypto.Signer rather than local key material.
	AlgRSAAlt Algorithm = "RSA-ALT"

	// AlgRSASSAPSS is an RSA key restricted to RSASSA-PSS signatures.
	AlgRSASSAPSS Algorithm = "RSASSA-PSS"

	// AlgEd25519 is an Ed25519 signing key.
	AlgEd25519 Algorithm = "ED25519"

	// AlgMLDSA44 is an ML-DSA-44 (FIPS 204) signing key.
	AlgMLDSA44 Algorithm = "ML-DSA-44"

	// AlgMLDSA65 is an ML-DSA-65 (FIPS 204) signing key.
	AlgMLDSA65 Algorithm = "ML-DSA-65"

	// AlgMLDSA87 is an ML-DSA-87 (FIPS 204) signing key.
	AlgMLDSA87 Algorithm = "ML-DSA-87"
)

// String returns the string representation.
func (a Algorithm) String() string {
	return string(a)
}

// Lower returns the lowercase form of the tag.
func (a Algorithm) Lower() string {
	return strings.ToLower(string(a))
}

// Equals performs case-insensitive comparison.
func (a Algorithm) Equals(s string) bool {
	return strings.EqualFold(string(a), s)
}

// Algorithms returns the tags with a registered suite, in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgRSA,
		AlgECKey,
		AlgECKeyDH,
		AlgECDSA,
		AlgRSAAlt,
		AlgRSASSAPSS,
		AlgEd25519,
		AlgMLDSA44,
		AlgMLDSA65,
		AlgMLDSA87,
	}
}

// ParseAlgorithm converts a string to an Algorithm tag. It accepts any case
// and returns an error wrapping StatusUnknownAlgorithm for unrecognized
// input.
func ParseAlgorithm(s string) (Algorithm, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == string(AlgNone) {
		return AlgNone, nil
	}
	for _, alg := range Algorithms() {
		if string(alg) == normalized {
			return alg, nil
		}
	}
	return AlgNone, fmt.Errorf("%w: %q", StatusUnknownAlgorithm, s)
}
