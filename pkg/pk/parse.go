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
	"os"
	"time"

	"github.com/jeremyhahn/go-pubkey/pkg/metrics"
	"github.com/jeremyhahn/go-pubkey/pkg/primitive"
)

// ParsePrivateKey decodes private key material into the handle and derives
// the algorithm tag from the decoded type. The handle is reset first, so a
// failed parse leaves it empty rather than holding the previous key. A
// zero-length passphrase means the material is expected to be unencrypted.
func (h *KeyHandle) ParsePrivateKey(key, passphrase []byte) error {
	start := time.Now()
	h.Reset()
	err := primitive.ParsePrivateKey(h.ctx, key, passphrase)
	h.record(metrics.OpParsePrivateKey, start, err)
	if err != nil {
		h.logFailure(metrics.OpParsePrivateKey, err)
		return err
	}
	h.logger.Debug().
		Str("algorithm", h.Name()).
		Int("bits", h.KeySizeBits()).
		Msg("private key loaded")
	return nil
}

// ParsePublicKey decodes public key material into the handle and derives
// the algorithm tag from the decoded type. The handle is reset first.
func (h *KeyHandle) ParsePublicKey(key []byte) error {
	start := time.Now()
	h.Reset()
	err := primitive.ParsePublicKey(h.ctx, key)
	h.record(metrics.OpParsePublicKey, start, err)
	if err != nil {
		h.logFailure(metrics.OpParsePublicKey, err)
		return err
	}
	h.logger.Debug().
		Str("algorithm", h.Name()).
		Int("bits", h.KeySizeBits()).
		Msg("public key loaded")
	return nil
}

// ParsePrivateKeyFile loads path and parses it as private key material. An
// unreadable file is treated as empty key material, so the failure surfaces
// as a key format status rather than a distinct I/O error.
func (h *KeyHandle) ParsePrivateKeyFile(path string, passphrase []byte) error {
	return h.ParsePrivateKey(readKeyFile(path), passphrase)
}

// ParsePublicKeyFile loads path and parses it as public key material. An
// unreadable file is treated as empty key material.
func (h *KeyHandle) ParsePublicKeyFile(path string) error {
	return h.ParsePublicKey(readKeyFile(path))
}

// readKeyFile reads key material, mapping any read failure to empty bytes.
func readKeyFile(path string) []byte {
	key, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return key
}
