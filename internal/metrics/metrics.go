// Package metrics exposes Prometheus counters for lifecycle activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StatusTransitions counts committed lifecycle transitions per entity
	// kind and resulting status.
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worktrack_status_transitions_total",
			Help: "Total number of committed status transitions",
		},
		[]string{"entity", "status"},
	)

	// ProjectCascades counts project status changes forced by task toggles.
	ProjectCascades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worktrack_project_cascades_total",
			Help: "Total number of project transitions triggered by task cascades",
		},
		[]string{"direction"}, // direction: completed, reopened
	)
)

// RecordTransition increments the transition counter.
func RecordTransition(entity, status string) {
	StatusTransitions.WithLabelValues(entity, status).Inc()
}

// RecordCascade increments the cascade counter.
func RecordCascade(direction string) {
	ProjectCascades.WithLabelValues(direction).Inc()
}
