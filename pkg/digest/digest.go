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

// Package digest names the message digest algorithms understood by the key
// engine and computes digests by name. Algorithm names follow the standard
// library crypto.Hash naming with dashes.
//
// An Algorithm may be known by name yet unavailable at runtime: MD4 and
// RIPEMD-160 are recognized identifiers but their implementations are not
// linked into the binary, so selecting them fails with ErrUnavailable.
package digest

import (
	"crypto"
	"fmt"
	"hash"
	"strings"

	_ "crypto/md5"    // Link in MD5
	_ "crypto/sha1"   // Link in SHA-1
	_ "crypto/sha256" // Link in SHA-224 and SHA-256
	_ "crypto/sha512" // Link in the SHA-512 family

	_ "golang.org/x/crypto/blake2b" // Link in BLAKE2b-256/384/512
	_ "golang.org/x/crypto/blake2s" // Link in BLAKE2s-256
	_ "golang.org/x/crypto/sha3"    // Link in SHA3-224/256/384/512
)

// Algorithm identifies a message digest by name.
type Algorithm string

const (
	// None selects no digest. Engine operations treat None as a request
	// to use the message bytes directly.
	None Algorithm = "NONE"

	// MD4 is MD4 (legacy, insecure, not linked in).
	MD4 Algorithm = "MD4"

	// MD5 is MD5 (legacy, insecure).
	MD5 Algorithm = "MD5"

	// SHA1 is SHA-1 (legacy, use SHA-256+ for new applications).
	SHA1 Algorithm = "SHA-1"

	// SHA224 is SHA-224.
	SHA224 Algorithm = "SHA-224"

	// SHA256 is SHA-256 (recommended minimum).
	SHA256 Algorithm = "SHA-256"

	// SHA384 is SHA-384.
	SHA384 Algorithm = "SHA-384"

	// SHA512 is SHA-512.
	SHA512 Algorithm = "SHA-512"

	// SHA512_224 is SHA-512/224.
	SHA512_224 Algorithm = "SHA-512/224"

	// SHA512_256 is SHA-512/256.
	SHA512_256 Algorithm = "SHA-512/256"

	// SHA3_224 is SHA3-224.
	SHA3_224 Algorithm = "SHA3-224"

	// SHA3_256 is SHA3-256.
	SHA3_256 Algorithm = "SHA3-256"

	// SHA3_384 is SHA3-384.
	SHA3_384 Algorithm = "SHA3-384"

	// SHA3_512 is SHA3-512.
	SHA3_512 Algorithm = "SHA3-512"

	// BLAKE2s_256 is BLAKE2s-256.
	BLAKE2s_256 Algorithm = "BLAKE2s-256"

	// BLAKE2b_256 is BLAKE2b-256.
	BLAKE2b_256 Algorithm = "BLAKE2b-256"

	// BLAKE2b_384 is BLAKE2b-384.
	BLAKE2b_384 Algorithm = "BLAKE2b-384"

	// BLAKE2b_512 is BLAKE2b-512.
	BLAKE2b_512 Algorithm = "BLAKE2b-512"

	// RIPEMD160 is RIPEMD-160 (legacy, not linked in).
	RIPEMD160 Algorithm = "RIPEMD-160"
)

// cryptoHashes maps digest names to their crypto.Hash identifiers. None is
// deliberately absent.
var cryptoHashes = map[Algorithm]crypto.Hash{
	MD4:         crypto.MD4,
	MD5:         crypto.MD5,
	SHA1:        crypto.SHA1,
	SHA224:      crypto.SHA224,
	SHA256:      crypto.SHA256,
	SHA384:      crypto.SHA384,
	SHA512:      crypto.SHA512,
	SHA512_224:  crypto.SHA512_224,
	SHA512_256:  crypto.SHA512_256,
	SHA3_224:    crypto.SHA3_224,
	SHA3_256:    crypto.SHA3_256,
	SHA3_384:    crypto.SHA3_384,
	SHA3_512:    crypto.SHA3_512,
	BLAKE2s_256: crypto.BLAKE2s_256,
	BLAKE2b_256: crypto.BLAKE2b_256,
	BLAKE2b_384: crypto.BLAKE2b_384,
	BLAKE2b_512: crypto.BLAKE2b_512,
	RIPEMD160:   crypto.RIPEMD160,
}

// String returns the string representation.
func (a Algorithm) String() string {
	return string(a)
}

// Lower returns the lowercase form of the algorithm name.
func (a Algorithm) Lower() string {
	return strings.ToLower(string(a))
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (a Algorithm) Equals(s string) bool {
	return strings.EqualFold(string(a), s)
}

// CryptoHash returns the crypto.Hash identifier for the algorithm.
func (a Algorithm) CryptoHash() (crypto.Hash, error) {
	if a == None {
		return 0, ErrNoAlgorithm
	}
	h, ok := cryptoHashes[a]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
	return h, nil
}

// Available reports whether an implementation of the algorithm is linked
// into the binary. None and unknown names report false.
func (a Algorithm) Available() bool {
	h, ok := cryptoHashes[a]
	return ok && h.Available()
}

// Size returns the digest length in bytes, or zero for None and unknown
// names. The size is known even for algorithms that are not linked in.
func (a Algorithm) Size() int {
	h, ok := cryptoHashes[a]
	if !ok {
		return 0
	}
	return h.Size()
}

// Algorithms returns all recognized digest names, None excluded, in a
// stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		MD4,
		MD5,
		SHA1,
		SHA224,
		SHA256,
		SHA384,
		SHA512,
		SHA512_224,
		SHA512_256,
		SHA3_224,
		SHA3_256,
		SHA3_384,
		SHA3_512,
		BLAKE2s_256,
		BLAKE2b_256,
		BLAKE2b_384,
		BLAKE2b_512,
		RIPEMD160,
	}
}

// Parse converts a string to an Algorithm. Matching is case-insensitive and
// accepts common undashed spellings such as SHA256.
func Parse(s string) (Algorithm, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	switch normalized {
	case "", "NONE":
		return None, nil
	case "MD4":
		return MD4, nil
	case "MD5":
		return MD5, nil
	case "SHA-1", "SHA1":
		return SHA1, nil
	case "SHA-224", "SHA224":
		return SHA224, nil
	case "SHA-256", "SHA256":
		return SHA256, nil
	case "SHA-384", "SHA384":
		return SHA384, nil
	case "SHA-512", "SHA512":
		return SHA512, nil
	case "SHA-512/224", "SHA512/224":
		return SHA512_224, nil
	case "SHA-512/256", "SHA512/256":
		return SHA512_256, nil
	case "SHA3-224", "SHA3_224":
		return SHA3_224, nil
	case "SHA3-256", "SHA3_256":
		return SHA3_256, nil
	case "SHA3-384", "SHA3_384":
		return SHA3_384, nil
	case "SHA3-512", "SHA3_512":
		return SHA3_512, nil
	case "BLAKE2S-256", "BLAKE2S_256":
		return BLAKE2s_256, nil
	case "BLAKE2B-256", "BLAKE2B_256":
		return BLAKE2b_256, nil
	case "BLAKE2B-384", "BLAKE2B_384":
		return BLAKE2b_384, nil
	case "BLAKE2B-512", "BLAKE2B_512":
		return BLAKE2b_512, nil
	case "RIPEMD-160", "RIPEMD160":
		return RIPEMD160, nil
	default:
		return None, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, s)
	}
}

// New returns a fresh hash.Hash for the algorithm.
func New(a Algorithm) (hash.Hash, error) {
	h, err := a.CryptoHash()
	if err != nil {
		return nil, err
	}
	if !h.Available() {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, a)
	}
	return h.New(), nil
}

// Sum computes the digest of data using the named algorithm.
func Sum(data []byte, a Algorithm) ([]byte, error) {
	hasher, err := New(a)
	if err != nil {
		return nil, err
	}
	n, err := hasher.Write(data)
	if err != nil {
		return nil, fmt.Errorf("digest: failed to write data to hasher: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("digest: incomplete write to hasher: wrote %d of %d bytes", n, len(data))
	}
	return hasher.Sum(nil), nil
}
