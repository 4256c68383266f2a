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

// Package metrics provides Prometheus instrumentation for key engine
// operations. It exposes operation counters, latency histograms, and error
// counters labeled by operation, algorithm, and raw status code.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all engine metrics
	Namespace = "pubkey"

	// Label names
	LabelOperation = "operation"
	LabelAlgorithm = "algorithm"
	LabelStatus    = "status"
	LabelCode      = "code"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation names
	OpParsePrivateKey = "parse_private_key"
	OpParsePublicKey  = "parse_public_key"
	OpSign            = "sign"
	OpVerify          = "verify"
	OpEncrypt         = "encrypt"
	OpDecrypt         = "decrypt"
	OpBindSigner      = "bind_signer"
)

var (
	// OperationsTotal tracks the total number of engine operations by
	// operation, algorithm, and status. Use RecordOperation to increment
	// this counter with the appropriate labels.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of key engine operations by operation, algorithm, and status",
		},
		[]string{LabelOperation, LabelAlgorithm, LabelStatus},
	)

	// OperationDuration tracks the duration of engine operations in seconds.
	// Buckets are optimized for typical cryptographic operation latencies.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of key engine operations in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{LabelOperation, LabelAlgorithm},
	)

	// ErrorsTotal tracks failed operations by operation, algorithm, and raw
	// status code rendered in hexadecimal (for example "-0x3E80").
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total number of failed operations by operation, algorithm, and status code",
		},
		[]string{LabelOperation, LabelAlgorithm, LabelCode},
	)

	// enabled tracks whether metrics collection is enabled
	enabled atomic.Bool
)

func init() {
	// Metrics are enabled by default
	enabled.Store(true)
}

// RecordOperation records an engine operation with its duration and status.
//
// Example:
//
//	start := time.Now()
//	sig, err := handle.Sign(message, digest.SHA256)
//	duration := time.Since(start).Seconds()
//	if err != nil {
//	    metrics.RecordOperation(metrics.OpSign, "RSA", metrics.StatusError, duration)
//	} else {
//	    metrics.RecordOperation(metrics.OpSign, "RSA", metrics.StatusSuccess, duration)
//	}
func RecordOperation(operation, algorithm, status string, duration float64) {
	if !enabled.Load() {
		return
	}
	OperationsTotal.WithLabelValues(operation, algorithm, status).Inc()
	OperationDuration.WithLabelValues(operation, algorithm).Observe(duration)
}

// RecordError records a failed operation with its raw status code rendered
// in hexadecimal.
func RecordError(operation, algorithm, code string) {
	if !enabled.Load() {
		return
	}
	ErrorsTotal.WithLabelValues(operation, algorithm, code).Inc()
}

// Enable enables metrics collection.
func Enable() {
	enabled.Store(true)
}

// Disable disables metrics collection.
// Useful for testing or when metrics are not desired.
func Disable() {
	enabled.Store(false)
}

// IsEnabled returns whether metrics collection is currently enabled.
func IsEnabled() bool {
	return enabled.Load()
}
