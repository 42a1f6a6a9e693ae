package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/sage/internal/domain/tone"
)

func TestReplyRecorder_CountsByTone(t *testing.T) {
	before := testutil.ToFloat64(RepliesTotal.WithLabelValues("poetic"))
	fallbackBefore := testutil.ToFloat64(SelectionFallbackTotal)

	ReplyRecorder{}.RecordReply(tone.Poetic, 2, 1)

	if got := testutil.ToFloat64(RepliesTotal.WithLabelValues("poetic")) - before; got != 1 {
		t.Errorf("expected replies_total{tone=poetic} +1, got +%f", got)
	}
	if got := testutil.ToFloat64(SelectionFallbackTotal) - fallbackBefore; got != 1 {
		t.Errorf("expected selection_fallback_total +1, got +%f", got)
	}
	if testutil.CollectAndCount(ReplyPicks) == 0 {
		t.Error("expected reply_picks to have observations")
	}
}

func TestReplyRecorder_UnknownToneLabel(t *testing.T) {
	before := testutil.ToFloat64(RepliesTotal.WithLabelValues("other"))

	ReplyRecorder{}.RecordReply(tone.Tone("whimsical"), 2, 0)

	if got := testutil.ToFloat64(RepliesTotal.WithLabelValues("other")) - before; got != 1 {
		t.Errorf("expected replies_total{tone=other} +1, got +%f", got)
	}
}

func TestRegisterReplyMetrics_Idempotent(t *testing.T) {
	RegisterReplyMetrics()
	RegisterReplyMetrics()
}
