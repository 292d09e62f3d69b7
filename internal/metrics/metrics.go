package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the explorer host's movement and connection counters.
// A single instance is created at startup and shared by the engine and the
// stream handler.
type Metrics struct {
	Moves            prometheus.Counter
	RejectedMoves    *prometheus.CounterVec
	FloorTransitions *prometheus.CounterVec
	RoomEntries      prometheus.Counter
	ConnectedClients prometheus.Gauge
}

// New registers the collectors with the given registry. Passing nil uses
// the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "explorer",
			Name:      "moves_total",
			Help:      "Accepted movement ticks.",
		}),
		RejectedMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explorer",
			Name:      "rejected_moves_total",
			Help:      "Movement ticks rejected, by reason.",
		}, []string{"reason"}),
		FloorTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explorer",
			Name:      "floor_transitions_total",
			Help:      "Stair floor transitions, by destination floor.",
		}, []string{"floor"}),
		RoomEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "explorer",
			Name:      "room_entries_total",
			Help:      "Room boundary crossings.",
		}),
		ConnectedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "explorer",
			Name:      "connected_clients",
			Help:      "Currently connected websocket clients.",
		}),
	}
	reg.MustRegister(m.Moves, m.RejectedMoves, m.FloorTransitions, m.RoomEntries, m.ConnectedClients)
	return m
}

// Handler returns the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
