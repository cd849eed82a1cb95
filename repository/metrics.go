package repository

import (
	"hackaplan/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func observeQuery(name string) *prometheus.Timer {
	return prometheus.NewTimer(metrics.QueryDuration.WithLabelValues(name))
}
