package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/your-org/humanise/pkg/cmd/shared"
	"github.com/your-org/humanise/pkg/cmdutil"
	"github.com/your-org/humanise/pkg/humanise"
	"github.com/your-org/humanise/pkg/log"
)

type durationReport struct {
	InputMS   uint64             `json:"input_ms" yaml:"input_ms"`
	Breakdown humanise.Breakdown `json:"breakdown" yaml:"breakdown"`
	Text      string             `json:"text" yaml:"text"`
}

func NewCmdDuration(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration <milliseconds|duration>",
		Short: "Render a duration as an English phrase",
		Long: `Render a duration as an English phrase.

The value is either a plain millisecond count or a Go duration literal such
as 1h30m. Units go up to days only; months and years have no fixed length.
Negative durations are absolute-valued; a leading dash reads as a flag, so
put -- before a negative value.`,
		Example: `  humanise duration 62345
  humanise duration 1h30m
  humanise duration 62345 --short
  humanise duration -- -90s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseValue(args[0])
			if err != nil {
				return err
			}

			verbose, err := shared.ResolveVerbose(cmd, f)
			if err != nil {
				return err
			}

			log.L().Debug().Uint64("ms", ms).Bool("verbose", verbose).Msg("humanising duration")

			report := durationReport{
				InputMS:   ms,
				Breakdown: humanise.Decompose(ms),
				Text:      humanise.DurationMS(ms, verbose),
			}

			return shared.PrintOutput(cmd, report, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Text)
				return err
			})
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Use full unit words (minute, second, millisecond)")
	cmd.Flags().BoolP("short", "s", false, "Use abbreviated unit words (min, sec, ms)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "short")

	return cmd
}

func parseValue(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return ms, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %q: expected a millisecond count or a duration like 1h30m", raw)
	}
	if d < 0 {
		d = -d
	}
	return uint64(d.Milliseconds()), nil
}
