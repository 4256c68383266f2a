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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlgorithm_String(t *testing.T) {
	tests := []struct {
		name string
		alg  Algorithm
		want string
	}{
		{"None", AlgNone, "NONE"},
		{"RSA", AlgRSA, "RSA"},
		{"ECKey", AlgECKey, "EC"},
		{"ECKeyDH", AlgECKeyDH, "EC-DH"},
		{"ECDSA", AlgECDSA, "ECDSA"},
		{"RSAAlt", AlgRSAAlt, "RSA-ALT"},
		{"PSS", AlgRSASSAPSS, "RSASSA-PSS"},
		{"Ed25519", AlgEd25519, "ED25519"},
		{"MLDSA44", AlgMLDSA44, "ML-DSA-44"},
		{"MLDSA65", AlgMLDSA65, "ML-DSA-65"},
		{"MLDSA87", AlgMLDSA87, "ML-DSA-87"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.alg.String())
		})
	}
}

func TestAlgorithm_Equals(t *testing.T) {
	tests := []struct {
		name  string
		alg   Algorithm
		input string
		want  bool
	}{
		{"RSA_Exact", AlgRSA, "RSA", true},
		{"RSA_Lower", AlgRSA, "rsa", true},
		{"PSS_Mixed", AlgRSASSAPSS, "rsassa-pss", true},
		{"MLDSA_Lower", AlgMLDSA65, "ml-dsa-65", true},
		{"Different", AlgRSA, "EC", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.alg.Equals(tt.input))
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"RSA", "RSA", AlgRSA, false},
		{"RSA_Lower", "rsa", AlgRSA, false},
		{"EC", "EC", AlgECKey, false},
		{"ECDH", "ec-dh", AlgECKeyDH, false},
		{"PSS", "RSASSA-PSS", AlgRSASSAPSS, false},
		{"MLDSA87", "ml-dsa-87", AlgMLDSA87, false},
		{"None", "NONE", AlgNone, false},
		{"Whitespace", "  ed25519  ", AlgEd25519, false},
		{"Unknown", "DSA", AlgNone, true},
		{"Empty", "", AlgNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, StatusUnknownAlgorithm))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every tag returned by Algorithms must resolve to a registered suite whose
// own tag matches.
func TestAlgorithms_RegistryComplete(t *testing.T) {
	for _, alg := range Algorithms() {
		s, ok := suites[alg]
		assert.True(t, ok, "no suite registered for %s", alg)
		assert.Equal(t, alg, s.algorithm())
	}
	assert.Len(t, suites, len(Algorithms()))
}
