package sage

import "github.com/kailas-cloud/sage/internal/domain/tone"

// Tone selects the framing of a reply.
type Tone = tone.Tone

// Supported tones.
const (
	Neutral     = tone.Neutral
	Poetic      = tone.Poetic
	Scientific  = tone.Scientific
	Traditional = tone.Traditional
)

// Tones returns the supported tones, neutral first.
func Tones() []Tone {
	return tone.All()
}

// Entry is one quotable passage of a custom corpus.
type Entry struct {
	Source string   // unique citation, e.g. "Tao Te Ching 8"
	Text   string   // the passage
	Tags   []string // keywords; matched case-insensitively as substrings of the question
}

// Reply is a composed answer.
type Reply struct {
	Text    string
	Tone    Tone
	Sources []string // citations quoted, in reply order
}

// Ranked is one corpus entry with its relevance to a question.
type Ranked struct {
	Source string
	Score  int
}
