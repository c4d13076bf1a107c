package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstorm/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a computed layout",
		Long: `Render a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it to SVG, PNG, PDF or JSON. The layout holds every position, size and
color, so this step is purely about drawing.

Style and title recorded in the layout apply unless overridden by flags.

Use 'render' as a shortcut to go directly from text to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), args[0], opts, formatsStr, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")
	addRenderFlags(cmd.Flags(), &opts)

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, path string, opts pipeline.Options, formats, output string, noCache bool) error {
	in, err := readInput(path)
	if err != nil {
		return err
	}
	if in.kind != kindLayout {
		return fmt.Errorf("%s is not a layout; run 'layout' first or use 'render'", path)
	}

	c.applyConfig(&opts, formats)
	opts = pipeline.ApplyLayoutMetadata(opts, in.layout)
	if err := opts.ValidateForRender(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %d words...", len(in.layout.Words)))
	spinner.Start()
	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, in.layout.ToCloud(), opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		output:    output,
		stem:      in.base,
		cacheHit:  cacheHit,
	})
}
