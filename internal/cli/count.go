package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// countCommand creates the count command, the first pipeline stage.
func (c *CLI) countCommand() *cobra.Command {
	var (
		output    string
		stopwords string
		show      int
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "count [text files...]",
		Short: "Count the words of one or more texts",
		Long: `Count the words of one or more texts.

Texts are tokenized, lowercased, and filtered against an English stopword
list. The heaviest words are written as a word list (<input>.words.json)
that 'layout' and 'render' accept. Reads stdin when no file or "-" is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stopwords = splitList(stopwords)
			return c.runCount(cmd.Context(), args, opts, output, show)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file (default: <input>.words.json, "-" for stdout)`)
	cmd.Flags().IntVarP(&opts.TopN, "top", "n", 0, "number of words to keep (default 40)")
	cmd.Flags().IntVar(&opts.MinLength, "min-length", 0, "shortest word kept, in runes (default 2)")
	cmd.Flags().StringVar(&stopwords, "stopwords", "", "extra stopwords (comma-separated)")
	cmd.Flags().IntVar(&show, "show", 15, "words to print (0 for none)")

	return cmd
}

func (c *CLI) runCount(ctx context.Context, paths []string, opts pipeline.Options, output string, show int) error {
	in, err := readInputs(paths)
	if err != nil {
		return err
	}
	if in.kind != kindText {
		return fmt.Errorf("count needs text, got a %s file", in.kind)
	}

	opts.Texts = in.texts
	c.applyConfig(&opts, "")

	prog := newProgress(loggerFromContext(ctx))
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	words, stats, err := runner.Count(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("counted words", "tokens", stats.Tokens, "unique", stats.Unique, "kept", len(words))

	list := wordcloud.NewWords(words)
	list.Source = strings.Join(paths, ",")
	list.Stats = &wordcloud.Stats{Tokens: stats.Tokens, Kept: stats.Kept, Unique: stats.Unique}
	data, err := wordcloud.MarshalWords(list)
	if err != nil {
		return err
	}

	if output == "" {
		output = in.base + ".words.json"
	}
	if err := writeOutput(output, append(data, '\n')); err != nil {
		return err
	}
	if output == "-" {
		return nil
	}

	printSuccess("Counted %d tokens", stats.Tokens)
	printFile(output)
	printStats(len(words), 0, 0, false)
	if show > 0 {
		fmt.Fprintln(stdout, wordTable(words, show))
	}
	printNewline()
	printNextStep("Lay out", appName+" layout "+output)
	return nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
