// Package metrics defines and registers all custom Prometheus metrics for
// the shiftboard API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shiftboard"

// EmployeesCreatedTotal counts employees added to the roster.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employees created.",
	},
)

// ShiftsCreatedTotal counts created shifts.
// Label:
//   - assigned: "true" when the shift was created with an employee, "false"
//     for open shifts
var ShiftsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shifts_created_total",
		Help:      "Total number of shifts created, by assignment.",
	},
	[]string{"assigned"},
)

// TimeOffRequestsTotal counts filed time-off requests.
var TimeOffRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeoff_requests_total",
		Help:      "Total number of time-off requests filed.",
	},
)

// TimeOffDecisionsTotal counts manager decisions on time-off requests.
// Label:
//   - decision: "approved" or "rejected"
var TimeOffDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeoff_decisions_total",
		Help:      "Total number of time-off decisions, by outcome.",
	},
	[]string{"decision"},
)

// ScheduleWeekDuration measures how long a week-schedule read takes,
// including cache lookups and employee resolution.
var ScheduleWeekDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "schedule_week_duration_seconds",
		Help:      "Duration of week schedule reads end-to-end.",
		Buckets:   prometheus.DefBuckets,
	},
)
