// Package sage provides an in-process Go client for the sage reply engine:
// questions are matched against a curated wisdom corpus and answered in one
// of several tones, without running the HTTP service.
//
//	client, _ := sage.New(sage.WithCache(256))
//	reply, err := client.Ask(ctx, "what did krishna say about duty?", sage.Poetic)
//	if errors.Is(err, sage.ErrValidation) {
//	    // empty or oversized prompt, unknown tone
//	}
//	fmt.Println(reply.Text)
//
// A custom corpus replaces the built-in one:
//
//	client, _ := sage.New(sage.WithCorpus(
//	    sage.Entry{Source: "Poor Richard", Text: "Well done is better than well said.", Tags: []string{"action"}},
//	))
package sage
