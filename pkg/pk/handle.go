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

package pk

import (
	"crypto"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeremyhahn/go-pubkey/pkg/crypto/rand"
	"github.com/jeremyhahn/go-pubkey/pkg/logging"
	"github.com/jeremyhahn/go-pubkey/pkg/metrics"
	"github.com/jeremyhahn/go-pubkey/pkg/primitive"
)

// Algorithm identifies a key family. It is the primitive layer's tag type,
// re-exported so callers of this package rarely need to import primitive.
type Algorithm = primitive.Algorithm

// Algorithm tags accepted by New and reported by Type.
const (
	AlgNone      = primitive.AlgNone
	AlgRSA       = primitive.AlgRSA
	AlgECKey     = primitive.AlgECKey
	AlgECKeyDH   = primitive.AlgECKeyDH
	AlgECDSA     = primitive.AlgECDSA
	AlgRSAAlt    = primitive.AlgRSAAlt
	AlgRSASSAPSS = primitive.AlgRSASSAPSS
	AlgEd25519   = primitive.AlgEd25519
	AlgMLDSA44   = primitive.AlgMLDSA44
	AlgMLDSA65   = primitive.AlgMLDSA65
	AlgMLDSA87   = primitive.AlgMLDSA87
)

// KeyHandle owns one asymmetric key context together with the randomness
// source and diagnostic logger bound at construction. The handle is for a
// single owner: it is not safe for concurrent use and must not be copied.
// Pass the pointer.
type KeyHandle struct {
	id     string
	ctx    *primitive.Context
	random rand.Source
	logger zerolog.Logger
}

// New creates a key handle for the given algorithm family. AlgNone produces
// a valid empty handle that a later parse or bind populates. Unknown tags
// fail with a status error.
func New(alg Algorithm, opts ...Option) (*KeyHandle, error) {
	ctx, err := primitive.NewContext(alg)
	if err != nil {
		return nil, err
	}
	h := &KeyHandle{
		id:     uuid.New().String(),
		ctx:    ctx,
		random: rand.System(),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With().Str("handle", h.id).Logger()
	return h, nil
}

// ID returns the handle's unique identifier, present on every diagnostic
// event the handle emits.
func (h *KeyHandle) ID() string {
	return h.id
}

// IsValid reports whether the handle carries an algorithm context. A fresh
// AlgNone handle, a reset handle, and a closed handle all report false.
func (h *KeyHandle) IsValid() bool {
	return h != nil && h.ctx.Algorithm() != primitive.AlgNone
}

// Type returns the algorithm tag of the bound key, AlgNone when empty.
func (h *KeyHandle) Type() Algorithm {
	if h == nil {
		return primitive.AlgNone
	}
	return h.ctx.Algorithm()
}

// Name returns the human-readable algorithm name, "NONE" when empty.
func (h *KeyHandle) Name() string {
	if h == nil {
		return primitive.AlgNone.String()
	}
	return h.ctx.Name()
}

// KeySizeBits returns the bound key's size in bits, zero when no key
// material is loaded.
func (h *KeyHandle) KeySizeBits() int {
	if h == nil {
		return 0
	}
	return h.ctx.SizeBits()
}

// KeySizeBytes returns KeySizeBits rounded up to whole bytes.
func (h *KeyHandle) KeySizeBytes() int {
	if h == nil {
		return 0
	}
	return h.ctx.SizeBytes()
}

// MaxOperableLength returns the largest input the bound key processes in a
// single operation. Encrypt and Decrypt reject longer inputs, and Prepare
// uses it to decide whether an undigested message may pass through.
func (h *KeyHandle) MaxOperableLength() int {
	if h == nil {
		return 0
	}
	return h.ctx.MaxOperable()
}

// CanDo reports whether the bound key can service operations of the given
// algorithm family.
func (h *KeyHandle) CanDo(alg Algorithm) bool {
	return h != nil && h.ctx.CanDo(alg)
}

// HasPrivate reports whether the handle holds the private half of its key.
func (h *KeyHandle) HasPrivate() bool {
	return h != nil && h.ctx.HasPrivate()
}

// Random returns the randomness source bound at construction.
func (h *KeyHandle) Random() rand.Source {
	return h.random
}

// Reset discards the key material and algorithm context, returning the
// handle to its empty state. The handle stays usable: a later parse or bind
// repopulates it. Resetting an empty handle is a no-op.
func (h *KeyHandle) Reset() {
	h.ctx.Free()
}

// Close resets the handle and releases its randomness source. The handle is
// empty afterward and operations fail with a status error.
func (h *KeyHandle) Close() error {
	h.ctx.Free()
	if h.random == nil {
		return nil
	}
	return h.random.Close()
}

// BindSigner attaches an opaque crypto.Signer, typically a hardware-backed
// RSA key, under the RSA-ALT algorithm tag. The previous key material is
// discarded first, so a failed bind leaves the handle empty.
func (h *KeyHandle) BindSigner(signer crypto.Signer) error {
	start := time.Now()
	h.Reset()
	err := primitive.BindSigner(h.ctx, signer)
	h.record(metrics.OpBindSigner, start, err)
	if err != nil {
		h.logFailure(metrics.OpBindSigner, err)
		return err
	}
	return nil
}
