package sage

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/sage/internal/domain"
	"github.com/kailas-cloud/sage/internal/domain/corpus"
	"github.com/kailas-cloud/sage/internal/domain/prompt"
	"github.com/kailas-cloud/sage/internal/domain/tone"
	chatuc "github.com/kailas-cloud/sage/internal/usecase/chat"
	searchuc "github.com/kailas-cloud/sage/internal/usecase/search"
)

// Internal interfaces for substitution in tests.
type chatUseCase interface {
	Reply(ctx context.Context, query string, t tone.Tone) chatuc.Reply
}

type rankUseCase interface {
	Rank(query string) []searchuc.Pick
}

// Client is the sage SDK entry point. It is safe for concurrent use.
type Client struct {
	chat        chatUseCase
	ranker      rankUseCase
	corpus      corpus.Corpus
	maxChars    int
	lenientTone bool
	obs         *observer
}

// New creates a Client over the built-in corpus unless WithCorpus is given.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		limit:    searchuc.DefaultLimit,
		maxChars: prompt.DefaultMaxChars,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.limit < 0 {
		return nil, fmt.Errorf("sage: limit must not be negative, got %d", cfg.limit)
	}
	if cfg.maxChars <= 0 {
		return nil, fmt.Errorf("sage: max prompt chars must be positive, got %d", cfg.maxChars)
	}

	c, err := buildCorpus(cfg.entries)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	selector := searchuc.New(c).WithCache(cfg.cacheSize)
	return &Client{
		chat:        chatuc.New(selector).WithLimit(cfg.limit),
		ranker:      selector,
		corpus:      c,
		maxChars:    cfg.maxChars,
		lenientTone: cfg.lenientTone,
		obs:         obs,
	}, nil
}

func buildCorpus(entries []Entry) (corpus.Corpus, error) {
	if entries == nil {
		return corpus.Default(), nil
	}
	built := make([]corpus.Entry, 0, len(entries))
	for _, e := range entries {
		ce, err := corpus.NewEntry(e.Source, e.Text, e.Tags...)
		if err != nil {
			return corpus.Corpus{}, fmt.Errorf("sage: %w", err)
		}
		built = append(built, ce)
	}
	c, err := corpus.New(built...)
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("sage: %w", err)
	}
	return c, nil
}

// Ask answers question in tone t. An empty tone means Neutral.
// Errors wrap ErrValidation: ErrPromptEmpty, ErrPromptTooLong or ErrInvalidTone.
func (c *Client) Ask(ctx context.Context, question string, t Tone) (reply Reply, err error) {
	start := time.Now()
	defer func() { c.obs.observe("ask", start, err, "tone", string(t)) }()

	p, err := prompt.New(question, c.maxChars)
	if err != nil {
		return Reply{}, err
	}

	parsed, err := tone.Parse(string(t))
	if err != nil {
		if !c.lenientTone {
			return Reply{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		parsed = tone.Neutral
	}

	r := c.chat.Reply(ctx, p.String(), parsed)
	return Reply{Text: r.Text, Tone: r.Tone, Sources: r.Sources}, nil
}

// Rank scores every corpus entry against question, best first.
// Equal scores keep corpus order.
func (c *Client) Rank(question string) []Ranked {
	start := time.Now()
	defer func() { c.obs.observe("rank", start, nil) }()

	picks := c.ranker.Rank(question)
	out := make([]Ranked, len(picks))
	for i, p := range picks {
		out[i] = Ranked{Source: p.Entry.Source(), Score: p.Score}
	}
	return out
}

// Sources returns the corpus citations in corpus order.
func (c *Client) Sources() []string {
	sources := make([]string, c.corpus.Len())
	for i := range sources {
		sources[i] = c.corpus.At(i).Source()
	}
	return sources
}

// Passage returns the corpus entry cited as source.
func (c *Client) Passage(source string) (Entry, bool) {
	e, ok := c.corpus.Lookup(source)
	if !ok {
		return Entry{}, false
	}
	return Entry{Source: e.Source(), Text: e.Text(), Tags: e.Tags()}, true
}
