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
	"errors"
	"fmt"
)

// Status is a raw status code from the primitive layer. Zero is success;
// failures are negative codes in the primitive's own error space. Status
// implements error so codes travel through call chains unmodified, and
// diagnostics always render the numeric value in hexadecimal ("-0x3E80").
type Status int

const (
	// StatusOK indicates success. It is never surfaced as an error value.
	StatusOK Status = 0

	// StatusAllocFailed indicates a context could not be allocated.
	StatusAllocFailed Status = -0x3F80

	// StatusTypeMismatch indicates key material of the wrong algorithm
	// family for the requested binding.
	StatusTypeMismatch Status = -0x3F00

	// StatusBadInputData indicates invalid input to a primitive operation,
	// including operations invoked on a context with no key bound.
	StatusBadInputData Status = -0x3E80

	// StatusKeyRequired indicates an operation that needs the private half
	// of a key bound with only its public half.
	StatusKeyRequired Status = -0x3E00

	// StatusKeyInvalidFormat indicates key material that could not be
	// decoded in any supported encoding.
	StatusKeyInvalidFormat Status = -0x3D00

	// StatusUnknownAlgorithm indicates an algorithm tag or decoded key type
	// with no registered suite.
	StatusUnknownAlgorithm Status = -0x3C80

	// StatusPasswordRequired indicates encrypted key material presented
	// without a passphrase.
	StatusPasswordRequired Status = -0x3C00

	// StatusPasswordMismatch indicates encrypted key material that failed
	// to decrypt with the supplied passphrase.
	StatusPasswordMismatch Status = -0x3B80

	// StatusInvalidPublicKey indicates public key material that decoded
	// structurally but is not a usable public key.
	StatusInvalidPublicKey Status = -0x3B00

	// StatusFeatureUnavailable indicates an operation the bound key family
	// does not support.
	StatusFeatureUnavailable Status = -0x3980

	// StatusSignatureMismatch indicates a signature whose structure does
	// not match the bound key family.
	StatusSignatureMismatch Status = -0x3900

	// StatusBufferTooSmall indicates an output buffer smaller than the
	// produced result.
	StatusBufferTooSmall Status = -0x3880

	// StatusVerifyFailed indicates a signature that did not verify.
	StatusVerifyFailed Status = -0x5100

	// StatusRandomFailed indicates the randomness source failed during a
	// randomized operation.
	StatusRandomFailed Status = -0x5180

	// StatusEncryptFailed indicates the encryption primitive rejected the
	// operation.
	StatusEncryptFailed Status = -0x5200

	// StatusDecryptFailed indicates the decryption primitive rejected the
	// operation, including padding failures.
	StatusDecryptFailed Status = -0x5280
)

var statusText = map[Status]string{
	StatusOK:                 "ok",
	StatusAllocFailed:        "context allocation failed",
	StatusTypeMismatch:       "key type mismatch",
	StatusBadInputData:       "bad input data",
	StatusKeyRequired:        "private key required",
	StatusKeyInvalidFormat:   "invalid key format",
	StatusUnknownAlgorithm:   "unknown algorithm",
	StatusPasswordRequired:   "password required",
	StatusPasswordMismatch:   "password mismatch",
	StatusInvalidPublicKey:   "invalid public key",
	StatusFeatureUnavailable: "feature unavailable",
	StatusSignatureMismatch:  "signature length mismatch",
	StatusBufferTooSmall:     "output buffer too small",
	StatusVerifyFailed:       "verification failed",
	StatusRandomFailed:       "random source failed",
	StatusEncryptFailed:      "encryption failed",
	StatusDecryptFailed:      "decryption failed",
}

// Error implements the error interface.
func (s Status) Error() string {
	return fmt.Sprintf("primitive: %s (%s)", s.Text(), s.Hex())
}

// Text returns the human-readable description of the status code.
func (s Status) Text() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return "unknown status"
}

// Hex renders the code the way diagnostics report it, e.g. "-0x3E80".
func (s Status) Hex() string {
	if s < 0 {
		return fmt.Sprintf("-0x%04X", -int(s))
	}
	return fmt.Sprintf("0x%04X", int(s))
}

// StatusOf extracts the status code carried by err. It returns StatusOK when
// err is nil or carries no primitive status.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return StatusOK
}
