// Package wordcloud provides the serialization formats for word lists and
// layouts.
//
// This package defines the canonical wire format for wordstorm data, used for
// JSON files, API bodies, the cache and the document store.
//
// # Architecture
//
// The package sits at the serialization boundary between internal
// representations and external formats:
//
//   - [Words], [Layout]: Serialization types (this package)
//   - pkg/core/cloud.Word, cloud.Layout: Internal representation
//
// Use [NewWords]/[Words.ToCloud] and [FromCloud]/[Layout.ToCloud] to convert
// between them.
//
// # Words
//
// A words file lists weighted words:
//
//	{
//	  "words": [{"text": "storm", "weight": 12}, {"text": "rain", "weight": 4}]
//	}
//
// A bare JSON array of the same entries is accepted on read.
//
// # Layouts
//
// A layout carries the canvas, the configuration it was built with (including
// the seed) and the placed words in placement order. It is enough to render
// the cloud again without re-running placement:
//
//	l, _ := wordcloud.ReadLayoutFile("storm.layout.json")
//	svg := sink.RenderSVG(l.ToCloud())
//
// # Concurrency
//
// All functions are safe for concurrent use.
package wordcloud
