package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/render/sink"
	"github.com/matzehuels/wordstorm/pkg/core/render/styles"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently; the first failure cancels the rest.
func Render(ctx context.Context, l cloud.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	artifacts := make(map[string][]byte, len(opts.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(ctx, l, style, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, l cloud.Layout, style styles.Style, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOptions(style, opts)...), nil
	case FormatPNG:
		return sink.RenderPNG(l,
			sink.WithPNGStyle(style),
			sink.WithPNGTitle(opts.Title),
			sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(ctx, l, svgOptions(style, opts)...)
	case FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONStyle(opts.Style), sink.WithJSONTitle(opts.Title))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func svgOptions(style styles.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.Animate {
		svgOpts = append(svgOpts, sink.WithAnimation(opts.MotionParams()), sink.WithEmbeddedFont())
	}
	return svgOpts
}

// RenderFromLayoutData renders output from serialized layout data.
// Style and title recorded in the layout apply when opts leaves them empty.
func RenderFromLayoutData(ctx context.Context, data []byte, opts Options) (map[string][]byte, error) {
	parsed, err := wordcloud.UnmarshalLayout(data)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return Render(ctx, parsed.ToCloud(), ApplyLayoutMetadata(opts, parsed))
}

// ApplyLayoutMetadata fills style and title from a serialized layout when
// opts does not set them.
func ApplyLayoutMetadata(opts Options, l wordcloud.Layout) Options {
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	if opts.Title == "" && l.Title != "" {
		opts.Title = l.Title
	}
	return opts
}
