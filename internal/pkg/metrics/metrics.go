package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tabletop"

// Notification kinds used as label values.
const (
	KindNewEvent    = "new_event"
	KindPlayerJoin  = "player_joined"
	KindPlayerLeave = "player_left"
	KindUpcoming    = "upcoming"
)

type Metrics struct {
	NotificationsSent   *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec
	NotifierRuns        prometheus.Counter
	NotifierNotified    prometheus.Counter
	NotifierFailures    prometheus.Counter
	GameLookups         *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		NotificationsSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Push notifications accepted by the gateway.",
		}, []string{"kind"}),
		NotificationsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "Push notifications the gateway rejected.",
		}, []string{"kind"}),
		NotifierRuns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "runs_total",
			Help:      "Upcoming-reservation scans executed.",
		}),
		NotifierNotified: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "notified_total",
			Help:      "Reservations whose upcoming flag was flipped by a scan.",
		}),
		NotifierFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "failures_total",
			Help:      "Reservations a scan could not process.",
		}),
		GameLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_lookups_total",
			Help:      "Remote game catalog lookups by outcome.",
		}, []string{"result"}),
	}
}

// NewNop returns metrics bound to a throwaway registry, for tests and tools.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
