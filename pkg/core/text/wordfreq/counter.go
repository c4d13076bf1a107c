// Package wordfreq turns free text into weighted words for a cloud.
//
// Text is tokenized by [Tokenize], filtered against a stopword list and a
// minimum length, and counted. [Counter.Words] returns the most frequent
// tokens as [cloud.Word] values weighted by their count.
package wordfreq

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
)

// Defaults for [Options].
const (
	DefaultMinLength = 2
	DefaultTopN      = 40
)

// Options configures a [Counter].
type Options struct {
	// MinLength is the minimum token length in runes. Symbol tokens such as
	// emoji are exempt. Zero means DefaultMinLength.
	MinLength int
	// Stopwords replaces the default [English] list when non-nil. An empty
	// non-nil slice disables stopword filtering.
	Stopwords []string
	// Extra stopwords are added to Stopwords.
	Extra []string
	// TopN limits [Counter.Words]. Zero means DefaultTopN, negative means all.
	TopN int
}

func (o *Options) normalize() {
	if o.MinLength <= 0 {
		o.MinLength = DefaultMinLength
	}
	if o.Stopwords == nil {
		o.Stopwords = English
	}
	if o.TopN == 0 {
		o.TopN = DefaultTopN
	}
}

// Stats summarizes what a [Counter] has seen.
type Stats struct {
	Tokens int `json:"tokens"` // all tokens
	Kept   int `json:"kept"`   // tokens that passed the filters
	Unique int `json:"unique"` // distinct kept tokens
}

// Counter accumulates token counts. The zero value is not usable; use
// [NewCounter].
type Counter struct {
	opts   Options
	stop   map[string]struct{}
	counts map[string]int
	stats  Stats
}

// NewCounter returns an empty counter.
func NewCounter(opts Options) *Counter {
	opts.normalize()
	stop := make(map[string]struct{}, len(opts.Stopwords)+len(opts.Extra))
	for _, lists := range [][]string{opts.Stopwords, opts.Extra} {
		for _, w := range lists {
			for _, tok := range Tokenize(w) {
				stop[tok] = struct{}{}
			}
		}
	}
	return &Counter{opts: opts, stop: stop, counts: make(map[string]int)}
}

// Add counts the tokens of text.
func (c *Counter) Add(text string) {
	for _, tok := range Tokenize(text) {
		c.stats.Tokens++
		if !c.keep(tok) {
			continue
		}
		c.stats.Kept++
		if c.counts[tok] == 0 {
			c.stats.Unique++
		}
		c.counts[tok]++
	}
}

// ReadFrom counts every line of r. It implements [io.ReaderFrom].
func (c *Counter) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		n += int64(len(sc.Bytes())) + 1
		c.Add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read text: %w", err)
	}
	return n, nil
}

func (c *Counter) keep(tok string) bool {
	if _, ok := c.stop[tok]; ok {
		return false
	}
	return isSymbol(tok) || utf8.RuneCountInString(tok) >= c.opts.MinLength
}

// Count returns how often tok was kept.
func (c *Counter) Count(tok string) int { return c.counts[tok] }

// Stats returns the running totals.
func (c *Counter) Stats() Stats { return c.stats }

// Words returns the most frequent tokens, by count descending and then text
// ascending, limited to TopN.
func (c *Counter) Words() []cloud.Word {
	words := make([]cloud.Word, 0, len(c.counts))
	for text, n := range c.counts {
		words = append(words, cloud.Word{Text: text, Weight: float64(n)})
	}
	slices.SortFunc(words, func(a, b cloud.Word) int {
		if a.Weight != b.Weight {
			return cmp.Compare(b.Weight, a.Weight)
		}
		return cmp.Compare(a.Text, b.Text)
	})
	if c.opts.TopN > 0 && len(words) > c.opts.TopN {
		words = words[:c.opts.TopN]
	}
	return words
}

// Count tokenizes and counts texts in one go.
func Count(opts Options, texts ...string) []cloud.Word {
	c := NewCounter(opts)
	for _, t := range texts {
		c.Add(t)
	}
	return c.Words()
}
