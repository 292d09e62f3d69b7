package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_RegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Moves.Inc()
	m.Moves.Inc()
	m.RejectedMoves.WithLabelValues("blocked").Inc()
	m.FloorTransitions.WithLabelValues("upper").Inc()
	m.ConnectedClients.Set(3)

	if got := testutil.ToFloat64(m.Moves); got != 2 {
		t.Errorf("moves_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RejectedMoves.WithLabelValues("blocked")); got != 1 {
		t.Errorf("rejected_moves_total{blocked} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.FloorTransitions.WithLabelValues("upper")); got != 1 {
		t.Errorf("floor_transitions_total{upper} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ConnectedClients); got != 3 {
		t.Errorf("connected_clients = %v, want 3", got)
	}
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected MustRegister to panic on duplicate registration")
		}
	}()
	New(reg)
}
