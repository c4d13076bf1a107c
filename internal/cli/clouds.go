package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/store"
)

// libraryDir overrides the FileStore location; empty uses its default.
var libraryDir string

func (c *CLI) openLibrary() (*store.FileStore, error) {
	st, err := store.NewFileStore(libraryDir)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	return st, nil
}

// cloudsCommand creates the clouds command for the local library of saved clouds.
func (c *CLI) cloudsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clouds",
		Short: "Manage saved word clouds",
		Long: `Manage saved word clouds.

Clouds are saved with 'render --save' and kept as JSON files under
~/.config/wordstorm/clouds.`,
	}

	cmd.AddCommand(c.cloudsListCommand())
	cmd.AddCommand(c.cloudsShowCommand())
	cmd.AddCommand(c.cloudsExportCommand())
	cmd.AddCommand(c.cloudsRemoveCommand())

	return cmd
}

func (c *CLI) cloudsListCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved clouds, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openLibrary()
			if err != nil {
				return err
			}
			defer st.Close()

			list, err := st.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				printInfo("No saved clouds")
				printNextStep("Save one", appName+" render --save speech.txt")
				return nil
			}
			fmt.Fprintln(stdout, cloudTable(list))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum clouds to list (default 50)")
	return cmd
}

func (c *CLI) cloudsShowCommand() *cobra.Command {
	var f previewFlags
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Preview a saved cloud in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.getCloud(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			opts := pipeline.Options{Title: cl.Title}
			return c.showLayout(cmd.Context(), cl.Layout, opts, f)
		},
	}
	cmd.Flags().BoolVar(&f.static, "static", false, "print one still frame instead of animating")
	cmd.Flags().IntVar(&f.cols, "cols", defaultCols, "columns of the still frame")
	cmd.Flags().IntVar(&f.rows, "rows", defaultRows, "rows of the still frame")
	return cmd
}

func (c *CLI) cloudsExportCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	opts := pipeline.Options{}
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Render a saved cloud to files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cl, err := c.getCloud(ctx, args[0])
			if err != nil {
				return err
			}

			c.applyConfig(&opts, formatsStr)
			opts = pipeline.ApplyLayoutMetadata(opts, cl.Layout)
			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			artifacts, hit, err := runner.RenderWithCacheInfo(ctx, cl.Layout.ToCloud(), opts)
			if err != nil {
				return err
			}
			return writeArtifacts(artifactWriteParams{
				artifacts: artifacts,
				formats:   opts.Formats,
				output:    output,
				stem:      cl.ID,
				cacheHit:  hit,
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	addRenderFlags(cmd.Flags(), &opts)
	return cmd
}

func (c *CLI) cloudsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete saved clouds",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openLibrary()
			if err != nil {
				return err
			}
			defer st.Close()

			for _, id := range args {
				if err := st.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("delete %s: %w", id, err)
				}
				printSuccess("Deleted %s", id)
			}
			return nil
		},
	}
}

func (c *CLI) getCloud(ctx context.Context, id string) (*store.Cloud, error) {
	st, err := c.openLibrary()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	cl, err := st.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cloud %s: %w", id, err)
	}
	return cl, nil
}

func cloudTable(list []store.Summary) string {
	rows := make([][]string, len(list))
	for i, s := range list {
		title := s.Title
		if title == "" {
			title = "—"
		}
		rows[i] = []string{s.ID, title, fmt.Sprint(s.Words), formatRelativeTime(s.CreatedAt)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Title", "Words", "Saved").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleDim
			case col == 2:
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}

// formatRelativeTime renders t as "just now", "5m ago", "3h ago", "2d ago",
// or a date beyond a month.
func formatRelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("2006-01-02")
}
