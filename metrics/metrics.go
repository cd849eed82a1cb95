package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "hackaplan_sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})

var ParticipantsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "hackaplan_participants_created_total",
	Help: "Number of participants registered",
})

var RegistrationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hackaplan_team_registrations_total",
	Help: "Project registrations by outcome",
}, []string{"outcome"})

var ScoresAssignedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "hackaplan_scores_assigned_total",
	Help: "Number of jury scores written",
})

var ScoreEventsPublishedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hackaplan_score_events_published_total",
	Help: "Score events handed to publishers by publisher and outcome",
}, []string{"publisher", "outcome"})

var PodiumsComputedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "hackaplan_podiums_computed_total",
	Help: "Number of podium validations served",
})

var ScoreSocketGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "hackaplan_score_socket_connections",
	Help: "Open live score websocket connections",
})
