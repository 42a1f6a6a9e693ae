package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/sage/internal/domain/tone"
)

// Reply Prometheus metrics.
var (
	RepliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sage",
			Name:      "replies_total",
			Help:      "Total number of composed replies",
		},
		[]string{"tone"},
	)

	ReplyPicks = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sage",
			Name:      "reply_picks",
			Help:      "Number of corpus entries rendered per reply",
			Buckets:   []float64{0, 1, 2, 3, 5, 8},
		},
	)

	SelectionFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sage",
			Name:      "selection_fallback_total",
			Help:      "Picks added by the fallback fill because no better-scoring entry existed",
		},
	)
)

var registerReplyOnce sync.Once

// RegisterReplyMetrics registers Prometheus reply metrics. Safe to call more than once.
func RegisterReplyMetrics() {
	registerReplyOnce.Do(func() {
		prometheus.MustRegister(RepliesTotal)
		prometheus.MustRegister(ReplyPicks)
		prometheus.MustRegister(SelectionFallbackTotal)
	})
}

// ReplyRecorder feeds reply observations into the Prometheus metrics.
type ReplyRecorder struct{}

// RecordReply implements chat.Recorder.
func (ReplyRecorder) RecordReply(t tone.Tone, picks, fallback int) {
	label := string(t)
	if !t.IsValid() {
		label = "other"
	}
	RepliesTotal.WithLabelValues(label).Inc()
	ReplyPicks.Observe(float64(picks))
	SelectionFallbackTotal.Add(float64(fallback))
}
