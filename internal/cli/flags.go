package cli

import (
	"github.com/spf13/pflag"

	"github.com/matzehuels/wordstorm/pkg/pipeline"
)

// layoutFlags are the flags shared by layout, render and preview.
type layoutFlags struct {
	palette   string
	stopwords string
}

func addLayoutFlags(fs *pflag.FlagSet, opts *pipeline.Options, lf *layoutFlags) {
	fs.Float64Var(&opts.Width, "width", 0, "canvas width (default 800)")
	fs.Float64Var(&opts.Height, "height", 0, "canvas height (default 600)")
	fs.Uint64Var(&opts.Config.Seed, "seed", 0, "random seed (default 42)")
	fs.Float64Var(&opts.Config.MaxFontSize, "max-font", 0, "font size of the heaviest word (default 80)")
	fs.Float64Var(&opts.Config.MinFontSize, "min-font", 0, "font size of the lightest word (default 22)")
	fs.Float64Var(&opts.Config.RotationRange, "rotation", 0, "maximum rotation in degrees, either way")
	fs.StringVar(&lf.palette, "palette", "", "comma-separated hex colors")
	fs.StringVar(&opts.Config.ColorPolicy, "color-policy", "", "color choice: rank (default), weight, random")
	fs.StringVar(&opts.Measurer, "measurer", "", "word box sizing: estimate (default), font")
	fs.IntVarP(&opts.TopN, "top", "n", 0, "words kept when counting text (default 40)")
	fs.StringVar(&lf.stopwords, "stopwords", "", "extra stopwords when counting text (comma-separated)")
	fs.BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
}

func (lf layoutFlags) apply(opts *pipeline.Options) {
	if p := splitList(lf.palette); len(p) > 0 {
		opts.Config.Palette = p
	}
	opts.Stopwords = append(opts.Stopwords, splitList(lf.stopwords)...)
}

// addRenderFlags registers style flags. The format flag is left to callers
// since preview has none.
func addRenderFlags(fs *pflag.FlagSet, opts *pipeline.Options) {
	fs.StringVar(&opts.Style, "style", "", "visual style: plain (default), storm")
	fs.StringVar(&opts.Title, "title", "", "title drawn behind the cloud (storm style)")
	fs.BoolVar(&opts.Animate, "animate", false, "animate the SVG (entrance and float)")
	fs.Float64Var(&opts.Scale, "scale", 0, "PNG scale factor (default 2)")
}
