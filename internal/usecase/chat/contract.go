package chat

import (
	"github.com/kailas-cloud/sage/internal/domain/tone"
	"github.com/kailas-cloud/sage/internal/usecase/search"
)

// Selector picks corpus entries for a query.
type Selector interface {
	Select(query string, limit int) []search.Pick
}

// Recorder observes composed replies.
type Recorder interface {
	RecordReply(t tone.Tone, picks, fallback int)
}
