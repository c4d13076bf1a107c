package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// layoutCommand creates the layout command for placing words.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		lf      layoutFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [words.json | text files...]",
		Short: "Place weighted words on a canvas",
		Long: `Place weighted words on a canvas.

The layout command takes a word list (produced by 'count') or plain text and
computes where every word goes. The output is a layout.json file that can be
rendered with 'visualize' or previewed with 'preview'.

Results are cached locally for faster subsequent runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lf.apply(&opts)
			return c.runLayout(cmd.Context(), args, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file (default: <input>.layout.json, "-" for stdout)`)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Style, "style", "", "style recorded in the layout for later rendering")
	cmd.Flags().StringVar(&opts.Title, "title", "", "title recorded in the layout for later rendering")
	addLayoutFlags(cmd.Flags(), &opts, &lf)

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, paths []string, opts pipeline.Options, output string, noCache bool) error {
	in, err := readInputs(paths)
	if err != nil {
		return err
	}
	if in.kind == kindLayout {
		return fmt.Errorf("input is already a layout; use 'visualize' to render it")
	}

	c.applyConfig(&opts, "")
	if opts.Style != "" {
		if err := pipeline.ValidateStyle(opts.Style); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Placing words...")
	spinner.Start()
	res, err := c.place(ctx, runner, in, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}

	data, err := wordcloud.MarshalLayout(res.doc)
	if err != nil {
		return err
	}
	if output == "" {
		output = in.base + ".layout.json"
	}
	if err := writeOutput(output, append(data, '\n')); err != nil {
		return err
	}
	if output == "-" {
		return nil
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(res.words, len(res.doc.Words)-res.doc.Fallbacks, res.doc.Fallbacks, res.cached)
	printNewline()
	printNextStep("Render", appName+" visualize "+output)
	return nil
}

// placed is the outcome of counting and laying out one input.
type placed struct {
	doc    wordcloud.Layout
	words  int
	cached bool
}

// place turns an input into a layout document. Layout inputs pass through;
// text is counted first.
func (c *CLI) place(ctx context.Context, runner *pipeline.Runner, in *input, opts pipeline.Options) (placed, error) {
	switch in.kind {
	case kindLayout:
		return placed{doc: in.layout, words: len(in.layout.Words), cached: true}, nil
	case kindWords:
		opts.Words = in.words.Words
	default:
		opts.Texts = in.texts
	}

	words, _, err := runner.Count(ctx, opts)
	if err != nil {
		return placed{}, err
	}
	l, hit, err := runner.GenerateLayoutWithCacheInfo(ctx, words, opts)
	if err != nil {
		return placed{}, fmt.Errorf("compute layout: %w", err)
	}

	doc := wordcloud.FromCloud(l)
	doc.Style = opts.Style
	doc.Title = opts.Title
	return placed{doc: doc, words: len(words), cached: hit}, nil
}
