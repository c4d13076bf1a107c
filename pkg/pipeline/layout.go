package pipeline

import (
	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/errors"
	"github.com/matzehuels/wordstorm/pkg/fonts"
)

// GenerateLayout places words on the canvas described by opts.
func GenerateLayout(words []cloud.Word, opts Options) (cloud.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return cloud.Layout{}, err
	}
	if err := errors.ValidateWords(words); err != nil {
		return cloud.Layout{}, err
	}

	layoutOpts := []cloud.Option{cloud.WithConfig(opts.Config)}
	if opts.Measurer == MeasureFont {
		m, err := fonts.NewMeasurer()
		if err != nil {
			return cloud.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "load font metrics")
		}
		layoutOpts = append(layoutOpts, cloud.WithMeasurer(m))
	}

	l := cloud.Build(words, opts.Width, opts.Height, layoutOpts...)
	if l.Fallbacks > 0 {
		opts.Logger.Warn("some words did not fit",
			"fallbacks", l.Fallbacks,
			"words", len(l.Words))
	}
	return l, nil
}
