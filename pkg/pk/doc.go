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

// Package pk provides key handles: single-owner wrappers that bind one
// asymmetric key context to a randomness source and a diagnostic logger, and
// expose a uniform sign, verify, encrypt, and decrypt surface across key
// families.
//
// # Key Handles
//
// A KeyHandle is created for an algorithm family, or empty and populated by
// parsing key material. The handle derives its algorithm tag from whatever
// key it holds, so one handle type serves RSA, EC, Ed25519, ML-DSA, and
// opaque signers alike:
//
//	handle, err := pk.New(pk.AlgNone)
//	if err != nil {
//	    ...
//	}
//	defer handle.Close()
//
//	if err := handle.ParsePrivateKey(pemBytes, nil); err != nil {
//	    ...
//	}
//	sig, err := handle.Sign(message, digest.SHA256)
//
// # Error Model
//
// Failed operations return errors carrying the raw status code of the
// primitive layer and log the code in hexadecimal through the handle's
// logger. Verify is the exception: it returns the raw status without
// logging, leaving disposition to the caller, and a nil return means the
// signature is valid.
//
// # Ownership
//
// A handle has exactly one owner. It is not safe for concurrent use and
// must not be copied; pass the pointer. Reset returns a handle to its empty
// state for reuse, Close additionally releases the randomness source.
package pk
