// Package metrics defines the custom Prometheus metrics of the auth API.
// They are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/99minutos/auth-service/internal/core/domain"
)

const namespace = "auth"

// Result labels shared by the counters below.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// RegistrationsTotal counts registration attempts.
// Label result: "success", an auth error code (e.g. "duplicate_username"),
// "bad_request" or "error".
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts, labelled like RegistrationsTotal.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RoleGrantsTotal counts make-creator and make-admin calls.
var RoleGrantsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_grants_total",
		Help:      "Total number of role grant attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// RoleSeedingTotal counts seed-roles calls.
// Label result: "created", "already_done" or "error".
var RoleSeedingTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_seeding_total",
		Help:      "Total number of role seeding calls, by result.",
	},
	[]string{"result"},
)

var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// Result turns an operation error into a low-cardinality label value.
func Result(err error) string {
	if err == nil {
		return ResultSuccess
	}
	if ae, ok := domain.AsAuthError(err); ok {
		return string(ae.Code)
	}
	return ResultError
}
