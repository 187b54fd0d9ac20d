// Package metrics defines and registers all custom Prometheus metrics for the
// quiz-system API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics self-register with the default Prometheus registry via promauto;
// the /metrics endpoint exposes them alongside the echoprometheus request
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quiz_system"

// ── Authentication metrics ────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - outcome: "created", "duplicate_username", "duplicate_email",
//     "weak_password", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts by outcome ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// TokenValidationsTotal counts bearer-token validations on protected routes.
// Label:
//   - result: "valid", "malformed", "bad_signature", "issuer_mismatch",
//     "audience_mismatch", or "expired"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, labelled by result.",
	},
	[]string{"result"},
)

// ── View pipeline metrics ─────────────────────────────────────────────────────

// QuizViewsTotal counts view events that completed processing successfully.
var QuizViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_views_total",
		Help:      "Total number of quiz view events successfully processed.",
	},
)

// QuizViewErrorsTotal counts view events that failed processing.
var QuizViewErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_view_errors_total",
		Help:      "Total number of quiz view events that failed processing.",
	},
)

// QuizViewsDedupTotal counts repeat-view decisions.
// Label:
//   - result: "hit" (repeat view, skipped) or "miss" (new view, counted)
var QuizViewsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_views_dedup_total",
		Help:      "Total number of repeat-view checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ViewQueueDepth tracks the current number of view events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ViewQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "view_queue_depth",
		Help:      "Current number of view events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
