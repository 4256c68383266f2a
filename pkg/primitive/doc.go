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

// Package primitive is the low-level public-key layer: algorithm tags,
// per-family operation suites, key decoding, and the raw status codes every
// failure is reported with.
//
// A Context pairs an opaque key with the suite registered for its algorithm
// family. Callers obtain a Context through NewContext, populate it with
// ParsePrivateKey, ParsePublicKey, BindKey, or BindSigner, and invoke
// Sign, Verify, Encrypt, and Decrypt against it. Every operation writes into
// a caller-supplied fixed-capacity buffer and reports the produced length,
// so output sizing is explicit at each call site.
//
// Errors returned by this package carry a Status code recoverable with
// StatusOf. Codes cross package boundaries raw; nothing above this layer
// reinterprets them.
package primitive
