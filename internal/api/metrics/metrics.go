// Package metrics defines and registers all custom Prometheus metrics for the
// user-management API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "invalid_data", "conflict", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts requests rejected by an authorization policy.
// Label:
//   - policy: "admin_only" or "admin_or_self"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied by an authorization policy.",
	},
	[]string{"policy"},
)

// RoleCacheTotal counts role-existence cache decisions.
// Label:
//   - result: "hit" (answered from Redis) or "miss" (fell through to MongoDB)
var RoleCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_cache_total",
		Help:      "Total number of role-existence cache checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
