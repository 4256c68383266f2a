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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Hex(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"OK", StatusOK, "0x0000"},
		{"BadInputData", StatusBadInputData, "-0x3E80"},
		{"AllocFailed", StatusAllocFailed, "-0x3F80"},
		{"TypeMismatch", StatusTypeMismatch, "-0x3F00"},
		{"KeyInvalidFormat", StatusKeyInvalidFormat, "-0x3D00"},
		{"UnknownAlgorithm", StatusUnknownAlgorithm, "-0x3C80"},
		{"FeatureUnavailable", StatusFeatureUnavailable, "-0x3980"},
		{"BufferTooSmall", StatusBufferTooSmall, "-0x3880"},
		{"VerifyFailed", StatusVerifyFailed, "-0x5100"},
		{"DecryptFailed", StatusDecryptFailed, "-0x5280"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Hex())
		})
	}
}

func TestStatus_Error(t *testing.T) {
	msg := StatusBadInputData.Error()
	assert.Contains(t, msg, "bad input data")
	assert.Contains(t, msg, "-0x3E80")
}

// A status must survive fmt.Errorf wrapping so callers can recover the raw
// code from any operation error.
func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("%w: decoding trailer", StatusKeyInvalidFormat)
	doubly := fmt.Errorf("parse private key: %w", wrapped)

	assert.Equal(t, StatusKeyInvalidFormat, StatusOf(wrapped))
	assert.Equal(t, StatusKeyInvalidFormat, StatusOf(doubly))
	assert.Equal(t, StatusOK, StatusOf(nil))
	assert.Equal(t, StatusOK, StatusOf(errors.New("no status inside")))

	assert.True(t, errors.Is(wrapped, StatusKeyInvalidFormat))
	assert.False(t, errors.Is(wrapped, StatusBadInputData))
}

func TestStatus_TextCoverage(t *testing.T) {
	known := []Status{
		StatusOK,
		StatusAllocFailed,
		StatusTypeMismatch,
		StatusBadInputData,
		StatusKeyRequired,
		StatusKeyInvalidFormat,
		StatusUnknownAlgorithm,
		StatusPasswordRequired,
		StatusPasswordMismatch,
		StatusInvalidPublicKey,
		StatusFeatureUnavailable,
		StatusSignatureMismatch,
		StatusBufferTooSmall,
		StatusVerifyFailed,
		StatusRandomFailed,
		StatusEncryptFailed,
		StatusDecryptFailed,
	}
	for _, s := range known {
		assert.NotEqual(t, "unknown status", s.Text(), "missing text for %s", s.Hex())
	}
	assert.Equal(t, "unknown status", Status(-0x7F00).Text())
}
