// Package metrics defines and registers all custom Prometheus metrics for
// the film manager API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "filmmanager"

// ── Synchronization metrics ───────────────────────────────────────────────────

// SyncRunsTotal counts synchronization runs.
// Label:
//   - result: "synced" (new films inserted), "noop" (nothing new),
//     "skipped" (another run held the lease) or "error"
var SyncRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Total number of catalog synchronization runs, by result.",
	},
	[]string{"result"},
)

// FilmsSyncedTotal counts films inserted by synchronization runs.
var FilmsSyncedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "films_synced_total",
		Help:      "Total number of films inserted from the external catalog.",
	},
)

// SyncDuration measures how long a full fetch-diff-insert run takes.
var SyncDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of a catalog synchronization run end-to-end.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginAttemptsTotal counts credential validations.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)
