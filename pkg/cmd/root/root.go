package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/your-org/humanise/pkg/build"
	durationcmd "github.com/your-org/humanise/pkg/cmd/duration"
	listcmd "github.com/your-org/humanise/pkg/cmd/list"
	pluralcmd "github.com/your-org/humanise/pkg/cmd/plural"
	"github.com/your-org/humanise/pkg/cmd/version"
	"github.com/your-org/humanise/pkg/cmdutil"
	"github.com/your-org/humanise/pkg/log"
)

func NewCmdRoot(f *cmdutil.Factory) (*cobra.Command, error) {
	ios, err := f.Streams()
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   f.ExecutableName,
		Short: "Turn raw values into natural-language English.",
		Long: `Turn raw values into natural-language English.

Quick start:
  humanise duration 62345            # 1 minute, 2 seconds, and 345 milliseconds
  humanise list apples pears plums   # apples, pears, and plums`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Root().PersistentFlags().GetString("log-level")
			log.Configure(level, ios.ErrOut)
			return applyOutputPreference(cmd.Root(), f)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	root.SetContext(context.Background())

	root.PersistentFlags().Bool("json", false, "Output in JSON format when supported")
	root.PersistentFlags().Bool("yaml", false, "Output in YAML format when supported")
	root.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(
		durationcmd.NewCmdDuration(f),
		listcmd.NewCmdList(f),
		pluralcmd.NewCmdPlural(f),
		version.NewCmdVersion(),
	)

	root.Version = build.Version
	root.SetOut(ios.Out)
	root.SetErr(ios.ErrOut)

	attachJSONHelp(root)

	return root, nil
}

// applyOutputPreference promotes the configured output_format to the
// --json/--yaml flags when neither was given explicitly.
func applyOutputPreference(root *cobra.Command, f *cmdutil.Factory) error {
	flags := root.PersistentFlags()
	if flags.Changed("json") || flags.Changed("yaml") {
		return nil
	}

	cfg, err := f.ResolveConfig()
	if err != nil {
		return err
	}

	switch cfg.Preferences.OutputFormat {
	case "json":
		return flags.Set("json", "true")
	case "yaml":
		return flags.Set("yaml", "true")
	}
	return nil
}
