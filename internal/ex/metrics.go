// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome constants for lookup metrics.
const (
	OutcomeResolved  = "resolved"
	OutcomeNotFound  = "not_found"
	OutcomeAmbiguous = "ambiguous"
)

// Status constants for evaluation metrics.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Lookups counts command-token resolutions by outcome.
// Use RegisterMetrics to register this with a Prometheus registry.
var Lookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "exmode_lookups_total",
		Help: "Total number of command lookups by outcome",
	},
	[]string{"outcome"},
)

// Evaluations counts command evaluations by command, implementation kind,
// and status.
var Evaluations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "exmode_evaluations_total",
		Help: "Total number of command evaluations",
	},
	[]string{"command", "kind", "status"},
)

// HintSyntheses counts syntax-hint computations.
var HintSyntheses = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "exmode_hint_syntheses_total",
		Help: "Total number of syntax hint syntheses",
	},
)

// RegisterMetrics registers this package's metrics with the given
// Prometheus registry. Panics if registration fails (prometheus
// convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Lookups)
	reg.MustRegister(Evaluations)
	reg.MustRegister(HintSyntheses)
}

func recordLookup(outcome string) {
	Lookups.WithLabelValues(outcome).Inc()
}

func recordEvaluation(command, kind, status string) {
	Evaluations.WithLabelValues(command, kind, status).Inc()
}

func recordHintSynthesis() {
	HintSyntheses.Inc()
}
