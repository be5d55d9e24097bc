package grocery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nuestrasrecetas",
		Subsystem: "grocery",
		Name:      "builds_total",
		Help:      "Number of grocery lists built.",
	})

	rowsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nuestrasrecetas",
		Subsystem: "grocery",
		Name:      "rows_total",
		Help:      "Total aggregated rows produced across all builds.",
	})
)
