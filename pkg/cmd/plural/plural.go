package plural

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/your-org/humanise/pkg/cmd/shared"
	"github.com/your-org/humanise/pkg/cmdutil"
	"github.com/your-org/humanise/pkg/humanise"
)

func NewCmdPlural(f *cmdutil.Factory) *cobra.Command {
	var opposite bool

	cmd := &cobra.Command{
		Use:   "plural <count> <word>",
		Short: "Apply an English plural suffix to a word",
		Long: `Apply an English plural suffix to a word.

Only bare-"s" plurals are supported; supply a base form that pluralizes that
way. With --opposite the suffix lands on the singular instead, which covers
verb agreement ("1 machine makes", "5 machines make").`,
		Example: `  humanise plural 5 apple
  humanise plural 1 make --opposite`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse count %q: %w", args[0], err)
			}

			out := struct {
				Count    uint64 `json:"count" yaml:"count"`
				Word     string `json:"word" yaml:"word"`
				Opposite bool   `json:"opposite" yaml:"opposite"`
				Text     string `json:"text" yaml:"text"`
			}{
				Count:    count,
				Word:     args[1],
				Opposite: opposite,
				Text:     humanise.PluralSuffix(count, args[1], opposite),
			}

			return shared.PrintOutput(cmd, out, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), out.Text)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&opposite, "opposite", false, "Suffix the singular instead of the plural (verb agreement)")

	return cmd
}
