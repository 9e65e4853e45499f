package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/termkit/internal/ui"
	"github.com/spf13/cobra"
)

// pick command flags
var (
	pickTitle string
	pickMulti bool
)

var pickCmd = &cobra.Command{
	Use:   "pick OPTION...",
	Short: "Ask the user to choose from a list",
	Long: `Ask the user to choose one option (or several with --multi) and print
the choice on stdout, one per line. On a terminal the choice is made with an
interactive list; with piped input, answer with the option numbers.

Examples:
  env=$(termkit pick --title "Deploy to" staging production)
  echo 1,3 | termkit pick --multi lint test build`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return pick(ui.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()), cmd.OutOrStdout(), pickTitle, args, pickMulti)
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().StringVarP(&pickTitle, "title", "t", "Choose an option", "prompt shown above the options")
	pickCmd.Flags().BoolVarP(&pickMulti, "multi", "m", false, "allow choosing several options")
}

// pick prompts with p and writes the chosen options to out.
func pick(p *ui.Prompter, out io.Writer, title string, options []string, multi bool) error {
	if !multi {
		idx, err := p.Select(title, options)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, options[idx])
		return nil
	}

	indices, err := p.MultiSelect(title, options)
	if err != nil {
		return err
	}
	for _, idx := range indices {
		fmt.Fprintln(out, options[idx])
	}
	return nil
}
