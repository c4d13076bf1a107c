package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for wordstorm.

Bash:
  $ source <(wordstorm completion bash)

Zsh:
  $ wordstorm completion zsh > "${fpath[1]}/_wordstorm"

Fish:
  $ wordstorm completion fish > ~/.config/fish/completions/wordstorm.fish

PowerShell:
  PS> wordstorm completion powershell | Out-String | Invoke-Expression

Flag values such as --format, --style and --color-policy complete too.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(stdout, true)
			case "zsh":
				return root.GenZshCompletion(stdout)
			case "fish":
				return root.GenFishCompletion(stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(stdout)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}

// flagValues lists the fixed choices of enum-like flags.
var flagValues = map[string][]string{
	"format":       sortedKeys(pipeline.ValidFormats),
	"style":        {wordcloud.StylePlain, wordcloud.StyleStorm},
	"color-policy": {cloud.ColorByRank, cloud.ColorByWeight, cloud.ColorRandom},
	"measurer":     {pipeline.MeasureEstimate, pipeline.MeasureFont},
}

// registerFlagCompletions walks the command tree and attaches value
// completion to every flag listed in flagValues.
func registerFlagCompletions(cmd *cobra.Command) {
	for name, values := range flagValues {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}
	for _, sub := range cmd.Commands() {
		registerFlagCompletions(sub)
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
