// Package pkg provides the core libraries for Wordstorm word clouds.
//
// # Overview
//
// Wordstorm turns text into word clouds: words are weighted by frequency,
// placed on a canvas without overlap, and rendered as SVG, PNG, PDF, JSON
// or an animated terminal preview. The pkg directory is organized into:
//
//  1. [core] - Domain logic (word counting, placement, animation, rendering)
//  2. [pipeline] - Orchestration (count → layout → render) with caching
//  3. [wordcloud] - Serialization types for word lists and layouts
//  4. [cache] and [store] - Result cache and saved-cloud storage
//  5. [config], [errors], [observability] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Text
//	  ↓
//	[core/text/wordfreq] (tokenize, drop stopwords, weight)
//	  ↓
//	[core/cloud] (spiral placement on an occupancy grid)
//	  ↓
//	[core/render/sink] (SVG, PNG, PDF, JSON, terminal)
//
// [core/cloud/motion] plans the entrance and float animation that the SVG
// sink and the terminal preview play back.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Texts:   []string{speech},
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("cloud.svg", result.Artifacts["svg"], 0644)
//
// [core]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/core
// [core/text/wordfreq]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/core/text/wordfreq
// [core/cloud]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/core/cloud
// [core/cloud/motion]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/core/cloud/motion
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/core/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/pipeline
// [wordcloud]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/wordcloud
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordstorm/pkg/observability
package pkg
