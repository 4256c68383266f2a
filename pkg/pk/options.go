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
	"github.com/rs/zerolog"

	"github.com/jeremyhahn/go-pubkey/pkg/crypto/rand"
)

// Option is a functional option for configuring a KeyHandle.
type Option func(*KeyHandle)

// WithRandom binds the randomness source used by signing and decryption.
// Default is the operating system CSPRNG. The handle owns the source and
// closes it with Close.
func WithRandom(source rand.Source) Option {
	return func(h *KeyHandle) {
		h.random = source
	}
}

// WithLogger injects the diagnostic logger that receives failure events.
// Default is the shared stderr logger. Use logging.Nop to silence a handle.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *KeyHandle) {
		h.logger = logger
	}
}
