package shared

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/your-org/humanise/pkg/cmdutil"
)

func WantsJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Root().PersistentFlags().GetBool("json")
	return v
}

func WantsYAML(cmd *cobra.Command) bool {
	v, _ := cmd.Root().PersistentFlags().GetBool("yaml")
	return v
}

// PrintOutput emits data as JSON or YAML when the matching root flag is set,
// falling back to the command's human renderer otherwise.
func PrintOutput(cmd *cobra.Command, data interface{}, human func() error) error {
	if WantsJSON(cmd) {
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}
	if WantsYAML(cmd) {
		encoded, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}
	return human()
}

// ResolveVerbose picks the verbosity for a command: an explicit --short or
// --verbose flag wins, then the persisted preference, then verbose.
func ResolveVerbose(cmd *cobra.Command, f *cmdutil.Factory) (bool, error) {
	if cmd.Flags().Lookup("short") != nil && cmd.Flags().Changed("short") {
		v, err := cmd.Flags().GetBool("short")
		if err != nil {
			return false, err
		}
		return !v, nil
	}
	if cmd.Flags().Lookup("verbose") != nil && cmd.Flags().Changed("verbose") {
		v, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return false, err
		}
		return v, nil
	}

	cfg, err := f.ResolveConfig()
	if err != nil {
		return false, err
	}
	return cfg.DefaultVerbose(), nil
}
