package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchpad_operations_total",
			Help: "Total ledger operations by outcome",
		},
		[]string{"operation", "status"},
	)

	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchpad_events_total",
			Help: "Total domain notifications emitted",
		},
		[]string{"type"},
	)
)
