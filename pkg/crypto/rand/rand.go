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

// Package rand provides the random bit generators that key handles bind at
// construction time and feed into every signing and decryption operation.
//
// # Sources
//
// Two sources are provided:
//   - System: the operating system CSPRNG via crypto/rand
//   - CTRDRBG: a deterministic random bit generator per NIST SP 800-90A,
//     built on AES-256 in counter mode without a derivation function
//
// System is the right default. CTRDRBG exists for deployments that need a
// seeded, reseedable generator with an auditable construction, and for
// deterministic testing through an injected entropy reader.
//
// # Usage
//
//	drbg, err := rand.NewCTRDRBG(&rand.Config{
//	    Personalization: []byte("pubkey-signing"),
//	})
//	if err != nil {
//	    ...
//	}
//	defer drbg.Close()
//	nonce, err := drbg.Rand(32)
//
// Both sources implement io.Reader and can be passed anywhere the standard
// library expects a randomness reader, such as rsa.SignPKCS1v15.
//
// # Thread Safety
//
// All Source implementations are safe for concurrent use.
package rand

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrClosed indicates the generator has been closed and zeroized
	ErrClosed = errors.New("rand: generator is closed")

	// ErrSeedTooLong indicates personalization or additional input longer than SeedLen
	ErrSeedTooLong = errors.New("rand: seed material exceeds seed length")

	// ErrRequestTooLarge indicates a single generate request larger than MaxRequest
	ErrRequestTooLarge = errors.New("rand: request exceeds maximum size")
)

// Source represents a random bit generator.
type Source interface {
	// Read implements io.Reader. Implementations fill p completely or
	// return an error.
	io.Reader

	// Rand returns n random bytes.
	Rand(n int) ([]byte, error)

	// Reseed mixes fresh entropy into the generator state. Sources
	// without reseedable state treat this as a no-op.
	Reseed(additional []byte) error

	// Available reports whether the source is ready for use.
	Available() bool

	// Close releases the source and zeroizes any internal state.
	Close() error
}

// System returns a Source backed by the operating system CSPRNG.
// It never fails, never needs reseeding, and has no state to close.
func System() Source {
	return systemSource{}
}

type systemSource struct{}

var _ Source = systemSource{}

func (systemSource) Read(p []byte) (int, error) {
	return rand.Read(p)
}

func (systemSource) Rand(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("rand: invalid request size %d", n)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (systemSource) Reseed([]byte) error {
	return nil
}

func (systemSource) Available() bool {
	return true
}

func (systemSource) Close() error {
	return nil
}
