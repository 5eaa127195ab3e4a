package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	computationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sousvide_computations_total",
		Help: "Computations served over the websocket, by food category.",
	}, []string{"food"})

	unreachableTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sousvide_unreachable_total",
		Help: "Requests whose target core temperature was at or above the bath temperature.",
	})

	activeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sousvide_active_connections",
		Help: "Open websocket connections.",
	})
)
