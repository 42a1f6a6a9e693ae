// Package compose renders selected corpus entries into tone-specific reply text.
package compose

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/sage/internal/domain/corpus"
	"github.com/kailas-cloud/sage/internal/domain/tone"
)

// template is the fixed frame of one tone: lines before the picks, a
// formatter for each pick (n is 1-based), and lines after the picks.
type template struct {
	header func(query string) []string
	pick   func(n int, e corpus.Entry) string
	footer []string
}

var templates = map[tone.Tone]template{
	tone.Poetic: {
		header: func(q string) []string {
			return []string{fmt.Sprintf("O seeker of sparks, you ask: ‘%s’.", q)}
		},
		pick: func(_ int, e corpus.Entry) string {
			return "• " + e.Text() + " — " + e.Source()
		},
		footer: []string{
			"Between dawn and dusk, the answer drifts like light on water;",
			"walk gently, gather what is true, and let wonder be your compass.",
		},
	},
	tone.Scientific: {
		header: func(q string) []string {
			return []string{
				"Question: " + q,
				"Method: sources were ranked by keyword and term overlap with the question; the strongest matches follow.",
			}
		},
		pick: func(n int, e corpus.Entry) string {
			return strconv.Itoa(n) + ". " + e.Source() + ": " + e.Text()
		},
		footer: []string{
			"Synthesis: treat each source as a hypothesis, state your assumptions, and test the predictions against evidence.",
		},
	},
	tone.Traditional: {
		header: func(q string) []string {
			return []string{
				"You inquire: " + q,
				"The elders have left these words for such a question:",
			}
		},
		pick: func(_ int, e corpus.Entry) string {
			return "• " + e.Source() + ": " + e.Text()
		},
		footer: []string{
			"Receive these teachings with humility, and test them by your conduct before you call them your own.",
		},
	},
	tone.Neutral: {
		header: func(q string) []string {
			return []string{
				"You asked: " + q,
				"Relevant teachings:",
			}
		},
		pick: func(_ int, e corpus.Entry) string {
			return "• " + e.Source() + ": " + e.Text()
		},
		footer: []string{
			"In practice: clarify the goal, compare the perspectives above, and choose the path that fits your constraints and values.",
		},
	},
}

// Compose renders picks for query in the given tone. Unknown tones render as
// tone.Neutral. Lines are joined with "\n" and there is no trailing newline.
func Compose(query string, t tone.Tone, picks []corpus.Entry) string {
	tpl, ok := templates[t]
	if !ok {
		tpl = templates[tone.Neutral]
	}

	header := tpl.header(query)
	lines := make([]string, 0, len(header)+len(picks)+len(tpl.footer))
	lines = append(lines, header...)
	for i, e := range picks {
		lines = append(lines, tpl.pick(i+1, e))
	}
	lines = append(lines, tpl.footer...)

	return strings.Join(lines, "\n")
}
