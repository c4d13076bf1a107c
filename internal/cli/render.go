package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/store"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// renderCommand creates the render command: count, layout and render in one go.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		save       bool
		lf         layoutFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [text files... | words.json]",
		Short: "Turn text into a rendered word cloud",
		Long: `Turn text into a rendered word cloud.

This runs the whole pipeline: count, layout and render. Every stage is
cached, so re-rendering the same text with a different style or format
skips the layout.

Use --save to keep the result in the local cloud library (see 'clouds').`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lf.apply(&opts)
			return c.runRender(cmd.Context(), args, opts, renderFlags{
				formats: formatsStr,
				output:  output,
				noCache: noCache,
				save:    save,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&save, "save", false, "save the cloud to the local library")
	addLayoutFlags(cmd.Flags(), &opts, &lf)
	addRenderFlags(cmd.Flags(), &opts)

	return cmd
}

type renderFlags struct {
	formats string
	output  string
	noCache bool
	save    bool
}

func (c *CLI) runRender(ctx context.Context, paths []string, opts pipeline.Options, f renderFlags) error {
	in, err := readInputs(paths)
	if err != nil {
		return err
	}
	switch in.kind {
	case kindLayout:
		return fmt.Errorf("input is already a layout; use 'visualize' to render it")
	case kindWords:
		opts.Words = in.words.Words
	default:
		opts.Texts = in.texts
	}

	c.applyConfig(&opts, f.formats)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Rendering word cloud...")
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		output:    f.output,
		stem:      in.base,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}
	printStats(result.Stats.WordCount, result.Stats.Placed, result.Stats.Fallbacks, result.CacheInfo.LayoutHit)

	if f.save {
		id, err := c.saveCloud(ctx, result, opts)
		if err != nil {
			return err
		}
		printDetail("saved as %s", id)
		printNewline()
		printNextStep("Preview", appName+" clouds show "+id)
	}
	return nil
}

// saveCloud stores a pipeline result in the local library.
func (c *CLI) saveCloud(ctx context.Context, result *pipeline.Result, opts pipeline.Options) (string, error) {
	st, err := c.openLibrary()
	if err != nil {
		return "", err
	}
	defer st.Close()

	doc := wordcloud.FromCloud(result.Layout)
	doc.Style = opts.Style
	doc.Title = opts.Title
	cl := store.New(opts.Title, wordcloud.NewWords(result.Words).Words, doc)
	if err := st.Save(ctx, cl); err != nil {
		return "", fmt.Errorf("save cloud: %w", err)
	}
	c.Logger.Debug("saved cloud", "id", cl.ID, "path", st.Path())
	return cl.ID, nil
}
