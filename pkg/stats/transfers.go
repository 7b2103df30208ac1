package stats

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// TransferMetrics counts the outcome of spends from the events published on
// the event bus.
type TransferMetrics struct {
	events *prometheus.CounterVec
}

// NewTransferMetrics registers the transfer counters with reg.
func NewTransferMetrics(reg prometheus.Registerer) (*TransferMetrics, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neuron",
		Subsystem: "transfers",
		Name:      "events_total",
		Help:      "Number of transfer events by topic.",
	}, []string{"topic"})

	if err := reg.Register(events); err != nil {
		return nil, err
	}
	return &TransferMetrics{events}, nil
}

// HandleEvent has the signature of an event bus handler.
func (m *TransferMetrics) HandleEvent(topic, _ string) {
	m.events.WithLabelValues(strings.ToLower(topic)).Inc()
}
