package list

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/your-org/humanise/pkg/cmd/shared"
	"github.com/your-org/humanise/pkg/cmdutil"
	"github.com/your-org/humanise/pkg/humanise"
)

func NewCmdList(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "list [item...]",
		Short: "Join items into an English list",
		Long: `Join items into an English list with a serial comma.

With no arguments, items are read from stdin, one per line; blank lines are
skipped.`,
		Example: `  humanise list apples pears plums
  printf 'apples\npears\n' | humanise list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args
			if len(items) == 0 {
				var err error
				items, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read items: %w", err)
				}
			}

			out := struct {
				Items []string `json:"items" yaml:"items"`
				Text  string   `json:"text" yaml:"text"`
			}{Items: items, Text: humanise.List(items)}

			return shared.PrintOutput(cmd, out, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), out.Text)
				return err
			})
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			items = append(items, line)
		}
	}
	return items, scanner.Err()
}
