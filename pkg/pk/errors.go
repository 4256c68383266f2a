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

import "errors"

var (
	// ErrInputTooLong indicates input longer than the key's maximum operable
	// length, rejected before reaching the primitive layer
	ErrInputTooLong = errors.New("pk: input exceeds maximum operable length")
)
