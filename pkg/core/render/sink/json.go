package sink

import (
	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*wordcloud.Layout)

// WithJSONStyle records the style name (e.g., "plain", "storm") in the JSON
// output for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(l *wordcloud.Layout) { l.Style = s } }

// WithJSONTitle records the backdrop title.
func WithJSONTitle(t string) JSONOption { return func(l *wordcloud.Layout) { l.Title = t } }

// RenderJSON renders the layout as a wordcloud layout document.
func RenderJSON(l cloud.Layout, opts ...JSONOption) ([]byte, error) {
	out := wordcloud.FromCloud(l)
	for _, opt := range opts {
		opt(&out)
	}
	return wordcloud.MarshalLayout(out)
}
