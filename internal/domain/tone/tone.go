package tone

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTone signals a tone outside the supported set.
var ErrInvalidTone = errors.New("invalid tone")

// Tone is the stylistic rendering mode of a reply.
type Tone string

// Supported tones.
const (
	// Neutral is the default rendering, also used for unrecognised values.
	Neutral     Tone = "neutral"
	Poetic      Tone = "poetic"
	Scientific  Tone = "scientific"
	Traditional Tone = "traditional"
)

// All returns the supported tones in display order.
func All() []Tone {
	return []Tone{Neutral, Poetic, Scientific, Traditional}
}

// IsValid checks if the tone is one of the supported values.
func (t Tone) IsValid() bool {
	return t == Neutral || t == Poetic || t == Scientific || t == Traditional
}

// Parse converts raw input into a Tone. Empty input yields Neutral.
func Parse(s string) (Tone, error) {
	if strings.TrimSpace(s) == "" {
		return Neutral, nil
	}
	t := Tone(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidTone, s, joined())
	}
	return t, nil
}

func joined() string {
	names := make([]string, 0, 4)
	for _, t := range All() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
