package pipeline

import (
	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/text/wordfreq"
	"github.com/matzehuels/wordstorm/pkg/errors"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// Count returns the weighted words for opts. Explicit Words are used as given;
// otherwise Texts are tokenized and counted.
func Count(opts Options) ([]cloud.Word, wordfreq.Stats, error) {
	if err := opts.ValidateForCount(); err != nil {
		return nil, wordfreq.Stats{}, err
	}

	if len(opts.Words) > 0 {
		words := wordcloud.Words{Words: opts.Words}.ToCloud()
		return words, wordfreq.Stats{Unique: len(words)}, nil
	}

	c := wordfreq.NewCounter(opts.CountOptions())
	for _, text := range opts.Texts {
		c.Add(text)
	}
	words := c.Words()
	if len(words) == 0 {
		return nil, c.Stats(), errors.New(errors.ErrCodeInvalidWords, "no words left after filtering")
	}
	return words, c.Stats(), nil
}
