package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/your-org/humanise/pkg/build"
)

func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print humanise version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "humanise version %s", build.Version)
			if build.Commit != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\ncommit: %s", build.Commit)
			}
			if build.Date != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\ndate: %s", build.Date)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
