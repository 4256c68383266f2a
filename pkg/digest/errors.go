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

package digest

import "errors"

var (
	// ErrNoAlgorithm indicates the NONE selector was used where a digest is required
	ErrNoAlgorithm = errors.New("digest: no algorithm selected")

	// ErrUnknownAlgorithm indicates the algorithm name is not recognized
	ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

	// ErrUnavailable indicates the algorithm is known but not linked into the binary
	ErrUnavailable = errors.New("digest: algorithm not available")
)
