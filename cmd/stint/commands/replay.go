package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stint/internal/adapters/config"
	"go.trai.ch/stint/internal/app"
)

func (c *CLI) newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [sessions...]",
		Short: "Replay session files and report the time taken per task",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{config.DefaultFilename}
			}
			format, _ := cmd.Flags().GetString("format")
			parallel, _ := cmd.Flags().GetInt("parallel")
			noColor, _ := cmd.Flags().GetBool("no-color")
			opts := app.ReplayOptions{
				Format:      format,
				Color:       !noColor,
				Parallelism: parallel,
			}
			if intervals, _ := cmd.Flags().GetBool("intervals"); intervals {
				opts.Intervals = cmd.ErrOrStderr()
			}
			return c.app.Replay(cmd.Context(), args, cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringP("format", "o", "text", "Report format (text or json)")
	cmd.Flags().IntP("parallel", "p", 0, "Number of sessions replayed at once (0 means one per CPU)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("intervals", false, "Print every recorded active interval to stderr after the report")
	return cmd
}
