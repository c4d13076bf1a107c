package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstorm/pkg/core/render/sink"
	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// previewCommand creates the preview command for drawing a cloud in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		static  bool
		cols    int
		rows    int
		noCache bool
		lf      layoutFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [layout.json | words.json | text files...]",
		Short: "Preview a word cloud in the terminal",
		Long: `Preview a word cloud in the terminal.

Plays the entrance and float animation on a character grid. Any input is
accepted: text and word lists are laid out first, layouts are shown as-is.

Output that is not a terminal, or --static, gets a single still frame.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lf.apply(&opts)
			return c.runPreview(cmd.Context(), args, opts, previewFlags{
				static:  static,
				cols:    cols,
				rows:    rows,
				noCache: noCache,
			})
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "print one still frame instead of animating")
	cmd.Flags().IntVar(&cols, "cols", defaultCols, "columns of the still frame")
	cmd.Flags().IntVar(&rows, "rows", defaultRows, "rows of the still frame")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Title, "title", "", "title shown above the cloud")
	addLayoutFlags(cmd.Flags(), &opts, &lf)

	return cmd
}

type previewFlags struct {
	static     bool
	cols, rows int
	noCache    bool
}

func (c *CLI) runPreview(ctx context.Context, paths []string, opts pipeline.Options, f previewFlags) error {
	in, err := readInputs(paths)
	if err != nil {
		return err
	}
	c.applyConfig(&opts, "")

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := c.place(ctx, runner, in, opts)
	if err != nil {
		return err
	}
	return c.showLayout(ctx, res.doc, opts, f)
}

// showLayout draws doc as a still frame or runs the animated preview.
func (c *CLI) showLayout(ctx context.Context, doc wordcloud.Layout, opts pipeline.Options, f previewFlags) error {
	title := opts.Title
	if title == "" {
		title = doc.Title
	}
	l := doc.ToCloud()

	if f.static || !isTerminal(stdout) {
		if title != "" {
			fmt.Fprintln(stdout, StyleTitle.Render(title))
		}
		fmt.Fprintln(stdout, sink.RenderTerminal(l, f.cols, f.rows))
		return nil
	}

	c.Logger.Debug("starting preview", "words", len(l.Words))
	p := tea.NewProgram(NewPreviewModel(l, opts.MotionParams(), title),
		tea.WithAltScreen(),
		tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
