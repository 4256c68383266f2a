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
	"bytes"
	"testing"
)

func TestSystem_Read(t *testing.T) {
	src := System()
	defer func() { _ = src.Close() }()

	if !src.Available() {
		t.Fatal("system source should be available")
	}

	buf := make([]byte, 64)
	n, err := src.Read(buf)
	if err != nil {
		t.Fatalf("failed to read from system source: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("short read: got %d bytes, want %d", n, len(buf))
	}
	if bytes.Equal(buf, make([]byte, 64)) {
		t.Fatal("system source returned all zeros")
	}
}

func TestSystem_Rand(t *testing.T) {
	src := System()
	defer func() { _ = src.Close() }()

	a, err := src.Rand(32)
	if err != nil {
		t.Fatalf("failed to generate random bytes: %v", err)
	}
	if len(a) != 32 {
		t.Fatalf("got %d bytes, want 32", len(a))
	}

	b, err := src.Rand(32)
	if err != nil {
		t.Fatalf("failed to generate random bytes: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two draws returned identical bytes")
	}
}

func TestSystem_RandNegative(t *testing.T) {
	src := System()
	defer func() { _ = src.Close() }()

	if _, err := src.Rand(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestSystem_RandZero(t *testing.T) {
	src := System()
	defer func() { _ = src.Close() }()

	buf, err := src.Rand(0)
	if err != nil {
		t.Fatalf("zero-length request should succeed: %v", err)
	}
	if len(buf) != 0 {
		t.Fatalf("got %d bytes, want 0", len(buf))
	}
}

func TestSystem_Reseed(t *testing.T) {
	src := System()
	defer func() { _ = src.Close() }()

	// The kernel manages its own entropy pool; reseeding is a no-op.
	if err := src.Reseed([]byte("additional")); err != nil {
		t.Fatalf("reseed should succeed: %v", err)
	}
}
