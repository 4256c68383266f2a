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
	"fmt"
	"io"
)

// Context is one asymmetric key bound to its family's operation suite.
// It is a tagged handle: the suite pointer is the dispatch table, the key
// halves are the opaque state. A Context is for exclusive single-owner use
// and must not be shared across goroutines without external synchronization.
type Context struct {
	s    suite
	priv crypto.PrivateKey
	pub  crypto.PublicKey
}

// NewContext returns a context bound to the given family's suite. AlgNone
// yields a valid, empty context with no suite bound. Tags without a
// registered suite return an error wrapping StatusUnknownAlgorithm.
func NewContext(alg Algorithm) (*Context, error) {
	if alg == AlgNone {
		return &Context{}, nil
	}
	s, ok := suites[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", StatusUnknownAlgorithm, alg)
	}
	return &Context{s: s}, nil
}

// Free releases the context's key state. The context reports AlgNone
// afterward and may be repopulated by a parse or bind. Safe to call
// repeatedly.
func (c *Context) Free() {
	if c == nil {
		return
	}
	c.s = nil
	c.priv = nil
	c.pub = nil
}

// Algorithm returns the bound family tag, or AlgNone for an empty context.
func (c *Context) Algorithm() Algorithm {
	if c == nil || c.s == nil {
		return AlgNone
	}
	return c.s.algorithm()
}

// Name returns the human-readable label of the bound family.
func (c *Context) Name() string {
	if c == nil || c.s == nil {
		return AlgNone.String()
	}
	return c.s.name()
}

// CanDo reports whether the bound key supports operations of the given
// family. An empty context supports nothing, and no context supports
// AlgNone.
func (c *Context) CanDo(alg Algorithm) bool {
	if c == nil || c.s == nil || alg == AlgNone {
		return false
	}
	return c.s.canDo(alg)
}

// SizeBits returns the bound key's size in bits, or zero when no key is
// bound.
func (c *Context) SizeBits() int {
	if c == nil || c.s == nil {
		return 0
	}
	return c.s.sizeBits(c.pub)
}

// SizeBytes returns SizeBits rounded up to whole bytes.
func (c *Context) SizeBytes() int {
	return (c.SizeBits() + 7) / 8
}

// MaxOperable returns the largest input length the bound key processes in
// one sign, encrypt, or decrypt call. Zero when no key is bound.
func (c *Context) MaxOperable() int {
	if c == nil || c.s == nil {
		return 0
	}
	return c.s.maxOperable(c.pub)
}

// HasPrivate reports whether the context holds the private half of its key.
func (c *Context) HasPrivate() bool {
	return c != nil && c.priv != nil
}

// Sign produces a signature over digest into sig and returns the number of
// bytes written. hfn names the digest function that produced the operand;
// zero signs the operand as presented. sig must hold MaxSignatureSize bytes.
func (c *Context) Sign(hfn crypto.Hash, digest, sig []byte, random io.Reader) (int, error) {
	if c == nil || c.s == nil {
		return 0, fmt.Errorf("%w: no key bound", StatusBadInputData)
	}
	return c.s.sign(c.priv, hfn, digest, sig, random)
}

// Verify checks signature over digest. A nil return means the signature is
// valid; every failure carries a raw status code.
func (c *Context) Verify(hfn crypto.Hash, digest, signature []byte) error {
	if c == nil || c.s == nil {
		return fmt.Errorf("%w: no key bound", StatusBadInputData)
	}
	return c.s.verify(c.pub, hfn, digest, signature)
}

// Encrypt produces ciphertext for plaintext into out and returns the number
// of bytes written. out must hold MaxMPISize bytes.
func (c *Context) Encrypt(plaintext, out []byte, random io.Reader) (int, error) {
	if c == nil || c.s == nil {
		return 0, fmt.Errorf("%w: no key bound", StatusBadInputData)
	}
	return c.s.encrypt(c.pub, plaintext, out, random)
}

// Decrypt recovers plaintext for ciphertext into out and returns the number
// of bytes written. out must hold MaxMPISize bytes.
func (c *Context) Decrypt(ciphertext, out []byte, random io.Reader) (int, error) {
	if c == nil || c.s == nil {
		return 0, fmt.Errorf("%w: no key bound", StatusBadInputData)
	}
	return c.s.decrypt(c.priv, ciphertext, out, random)
}

// BindKey attaches key material to a context whose suite is already bound,
// replacing whatever the context held. priv may be nil for a public-only
// context. Binding to an empty context is StatusBadInputData; parse derives
// the suite instead.
func BindKey(c *Context, priv crypto.PrivateKey, pub crypto.PublicKey) error {
	if c == nil || c.s == nil {
		return fmt.Errorf("%w: no suite bound", StatusBadInputData)
	}
	if pub == nil {
		return fmt.Errorf("%w: public key required", StatusInvalidPublicKey)
	}
	c.priv = priv
	c.pub = pub
	return nil
}

// bind rebinds the context to the suite registered for alg and attaches the
// key halves. Used by the parse paths after the decoded type derives the
// tag.
func (c *Context) bind(alg Algorithm, priv crypto.PrivateKey, pub crypto.PublicKey) error {
	s, ok := suites[alg]
	if !ok {
		return fmt.Errorf("%w: %q", StatusUnknownAlgorithm, alg)
	}
	c.s = s
	c.priv = priv
	c.pub = pub
	return nil
}
