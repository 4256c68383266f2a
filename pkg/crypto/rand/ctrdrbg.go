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

package rand

import (
	"crypto/aes"
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

const (
	keyLen   = 32
	blockLen = aes.BlockSize

	// SeedLen is the seed material length for AES-256 CTR-DRBG without a
	// derivation function: key length plus block length.
	SeedLen = keyLen + blockLen

	// MaxRequest bounds the output of a single generate call. Larger
	// reads are satisfied by chaining generate calls.
	MaxRequest = 1024

	// DefaultReseedInterval is the number of generate calls permitted
	// before the generator reseeds itself from its entropy source.
	DefaultReseedInterval = 10000
)

// Config contains CTR-DRBG configuration.
type Config struct {
	// Entropy supplies seed material for instantiation and reseeding.
	// Defaults to the operating system CSPRNG. Tests may inject a
	// deterministic reader here; production code should not.
	Entropy io.Reader

	// Personalization differentiates DRBG instances seeded from the same
	// entropy source. At most SeedLen bytes.
	Personalization []byte

	// ReseedInterval is the number of generate calls permitted between
	// reseeds. Defaults to DefaultReseedInterval.
	ReseedInterval uint64
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if len(c.Personalization) > SeedLen {
		return fmt.Errorf("%w: personalization is %d bytes, max %d",
			ErrSeedTooLong, len(c.Personalization), SeedLen)
	}
	return nil
}

// CTRDRBG is a deterministic random bit generator per NIST SP 800-90A,
// section 10.2.1, using AES-256 in counter mode without a derivation
// function. Seed material is the entropy input XORed with the zero-padded
// personalization string.
type CTRDRBG struct {
	mu      sync.Mutex
	key     [keyLen]byte
	v       [blockLen]byte
	counter uint64
	entropy io.Reader
	reseed  uint64
	closed  bool
}

var _ Source = (*CTRDRBG)(nil)

// NewCTRDRBG instantiates a CTR-DRBG. A nil config selects the operating
// system CSPRNG as the entropy source with no personalization.
func NewCTRDRBG(cfg *Config) (*CTRDRBG, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entropy := cfg.Entropy
	if entropy == nil {
		entropy = rand.Reader
	}
	interval := cfg.ReseedInterval
	if interval == 0 {
		interval = DefaultReseedInterval
	}

	d := &CTRDRBG{
		entropy: entropy,
		reseed:  interval,
	}

	seed, err := d.seedMaterial(cfg.Personalization)
	if err != nil {
		return nil, err
	}
	if err := d.update(seed); err != nil {
		return nil, err
	}
	d.counter = 1
	return d, nil
}

// seedMaterial draws SeedLen bytes of entropy and XORs in the zero-padded
// additional input.
func (d *CTRDRBG) seedMaterial(additional []byte) ([]byte, error) {
	if len(additional) > SeedLen {
		return nil, fmt.Errorf("%w: additional input is %d bytes, max %d",
			ErrSeedTooLong, len(additional), SeedLen)
	}
	seed := make([]byte, SeedLen)
	if _, err := io.ReadFull(d.entropy, seed); err != nil {
		return nil, fmt.Errorf("rand: entropy source: %w", err)
	}
	for i, b := range additional {
		seed[i] ^= b
	}
	return seed, nil
}

// update is the CTR_DRBG_Update function: encrypt successive counter blocks,
// XOR with the provided seed material, and split the result into the new key
// and counter value. provided must be exactly SeedLen bytes.
func (d *CTRDRBG) update(provided []byte) error {
	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		return fmt.Errorf("rand: %w", err)
	}

	temp := make([]byte, 0, SeedLen)
	ct := make([]byte, blockLen)
	for len(temp) < SeedLen {
		incBlock(&d.v)
		block.Encrypt(ct, d.v[:])
		temp = append(temp, ct...)
	}
	temp = temp[:SeedLen]
	for i := range temp {
		temp[i] ^= provided[i]
	}
	copy(d.key[:], temp[:keyLen])
	copy(d.v[:], temp[keyLen:])
	return nil
}

// Generate fills out with random bytes, mixing in the optional additional
// input. A single call produces at most MaxRequest bytes; use Read or Rand
// for larger amounts.
func (d *CTRDRBG) Generate(out, additional []byte) error {
	if len(out) > MaxRequest {
		return fmt.Errorf("%w: %d bytes requested, max %d",
			ErrRequestTooLarge, len(out), MaxRequest)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}

	if d.counter > d.reseed {
		if err := d.reseedLocked(nil); err != nil {
			return err
		}
	}

	padded := make([]byte, SeedLen)
	if len(additional) > 0 {
		if len(additional) > SeedLen {
			return fmt.Errorf("%w: additional input is %d bytes, max %d",
				ErrSeedTooLong, len(additional), SeedLen)
		}
		copy(padded, additional)
		if err := d.update(padded); err != nil {
			return err
		}
	}

	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		return fmt.Errorf("rand: %w", err)
	}
	ct := make([]byte, blockLen)
	for remaining := out; len(remaining) > 0; {
		incBlock(&d.v)
		block.Encrypt(ct, d.v[:])
		n := copy(remaining, ct)
		remaining = remaining[n:]
	}

	if err := d.update(padded); err != nil {
		return err
	}
	d.counter++
	return nil
}

// Read implements io.Reader, chaining generate calls for requests larger
// than MaxRequest.
func (d *CTRDRBG) Read(p []byte) (int, error) {
	for chunk := p; len(chunk) > 0; {
		n := len(chunk)
		if n > MaxRequest {
			n = MaxRequest
		}
		if err := d.Generate(chunk[:n], nil); err != nil {
			return len(p) - len(chunk), err
		}
		chunk = chunk[n:]
	}
	return len(p), nil
}

// Rand returns n random bytes.
func (d *CTRDRBG) Rand(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("rand: invalid request size %d", n)
	}
	buf := make([]byte, n)
	if _, err := d.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Reseed draws fresh entropy, mixes in the optional additional input, and
// resets the reseed counter.
func (d *CTRDRBG) Reseed(additional []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	return d.reseedLocked(additional)
}

func (d *CTRDRBG) reseedLocked(additional []byte) error {
	seed, err := d.seedMaterial(additional)
	if err != nil {
		return err
	}
	if err := d.update(seed); err != nil {
		return err
	}
	d.counter = 1
	return nil
}

// Available reports whether the generator is usable.
func (d *CTRDRBG) Available() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed
}

// Close zeroizes the generator state. Further use returns ErrClosed.
func (d *CTRDRBG) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.key {
		d.key[i] = 0
	}
	for i := range d.v {
		d.v[i] = 0
	}
	d.counter = 0
	d.closed = true
	return nil
}

// incBlock increments a counter block as a big-endian integer.
func incBlock(v *[blockLen]byte) {
	for i := blockLen - 1; i >= 0; i-- {
		v[i]++
		if v[i] != 0 {
			break
		}
	}
}
