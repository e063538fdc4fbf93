// Package metrics defines and registers all custom Prometheus metrics for
// the studio API. It is the single source of truth for metric names, labels,
// and help strings; metrics register themselves with the default registry at
// init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations by outcome.
// Label:
//   - result: "success", "email_taken", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token verifications performed by the
// request authenticator.
// Label:
//   - result: "ok", "malformed", "bad_signature", "expired",
//     "unknown_subject", "load_error"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, labelled by result.",
	},
	[]string{"result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsCreatedTotal counts newly created sessions.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created.",
	},
)

// ParticipationsTotal counts participation changes.
// Label:
//   - action: "join" or "leave"
var ParticipationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "participations_total",
		Help:      "Total number of session participation changes, labelled by action.",
	},
	[]string{"action"},
)
