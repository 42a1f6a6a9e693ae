package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sage/internal/domain/tone"
	"github.com/kailas-cloud/sage/internal/logger"
	"github.com/kailas-cloud/sage/internal/usecase/compose"
	"github.com/kailas-cloud/sage/internal/usecase/search"
)

// Reply is a composed answer together with the tone it was requested in.
type Reply struct {
	Text    string
	Tone    tone.Tone
	Sources []string
}

// Service answers questions from the corpus.
type Service struct {
	selector Selector
	limit    int
	recorder Recorder
}

// New creates a Service picking search.DefaultLimit entries per reply.
func New(selector Selector) *Service {
	return &Service{selector: selector, limit: search.DefaultLimit}
}

// WithLimit sets how many entries a reply is built from. Negative values are ignored.
func (s *Service) WithLimit(limit int) *Service {
	if limit >= 0 {
		s.limit = limit
	}
	return s
}

// WithRecorder attaches a reply observer.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Reply selects entries for query and renders them in tone t.
// query is expected to be trimmed already. It never fails.
func (s *Service) Reply(ctx context.Context, query string, t tone.Tone) Reply {
	ctx = logger.WithFields(ctx, zap.String("tone", string(t)))

	picks := s.selector.Select(query, s.limit)
	text := compose.Compose(query, t, search.Entries(picks))

	srcs := make([]string, len(picks))
	for i, p := range picks {
		srcs[i] = p.Entry.Source()
	}

	fallback := search.FallbackCount(picks)
	if s.recorder != nil {
		s.recorder.RecordReply(t, len(picks), fallback)
	}

	logger.FromContext(ctx).Debug("reply composed",
		zap.Strings("sources", srcs),
		zap.Int("fallback", fallback),
		zap.Int("query_len", len(query)),
	)

	return Reply{Text: text, Tone: t, Sources: srcs}
}
