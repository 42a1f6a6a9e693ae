package sage

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	entries     []Entry
	limit       int
	cacheSize   int
	maxChars    int
	lenientTone bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCorpus replaces the built-in corpus. Sources must be unique.
func WithCorpus(entries ...Entry) Option {
	return optionFunc(func(c *clientConfig) {
		c.entries = append(c.entries[:0:0], entries...)
	})
}

// WithLimit sets how many passages a reply quotes.
// Default: 2. Zero renders the framing only.
func WithLimit(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.limit = n
	})
}

// WithCache memoizes selections for the given number of distinct questions.
// Default: 0 (disabled).
func WithCache(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheSize = size
	})
}

// WithMaxPromptChars bounds the question length in characters.
// Default: 4000.
func WithMaxPromptChars(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxChars = n
	})
}

// WithLenientTone answers unknown tones in the neutral tone instead of failing.
func WithLenientTone() Option {
	return optionFunc(func(c *clientConfig) {
		c.lenientTone = true
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
