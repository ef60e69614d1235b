package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tbxtools/tafsort/cmd/tafsort/opts"
	"github.com/tbxtools/tafsort/pkg/config"
	"github.com/tbxtools/tafsort/pkg/operation"
	"github.com/tbxtools/tafsort/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewFromCSVCmd creates the from-csv command
func NewFromCSVCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var testLimit int

	cmd := &cobra.Command{
		Use:   "from-csv <input_dir> <mapping.csv> <output_dir>",
		Short: "Rename files using the Name/Series/Episode CSV mapping",
		Long: `from-csv copies each folder's audio file into the output directory,
renamed to "<Series> - <Episode>" from the matching CSV row. Ids without
a usable row keep their folder name and land in the unmatched/ subfolder.
Source files are never modified or deleted.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "from-csv").Logger().WithContext(cmd.Context())

			cfg := config.NewOptions(args[0], args[1], args[2], entryLimit(cmd, testLimit), rootOpts.Defaults)
			if err := config.Validate(ctx, cfg); err != nil {
				return errors.Errorf("validating options: %w", err)
			}

			tracker := status.NewTracker()
			op, err := operation.NewFromCSVOperation(operation.Options{
				Config:     cfg,
				Tracker:    tracker,
				UserLogger: status.NewUserLogger(ctx),
			})
			if err != nil {
				return errors.Errorf("creating operation: %w", err)
			}

			runner := operation.NewRunner()
			if err := runner.Run(ctx, op); err != nil {
				return err
			}

			fmt.Println(status.RenderSummary(tracker, runner.RunID()))
			return nil
		},
	}

	addTestFlag(cmd, &testLimit)
	return cmd
}

// addTestFlag adds the shared --test N cap flag
func addTestFlag(cmd *cobra.Command, limit *int) {
	cmd.Flags().IntVar(limit, "test", config.NoLimit, "only process the first N folders")
}

// entryLimit resolves the --test flag: unset means no cap, an explicit
// negative value clamps to zero.
func entryLimit(cmd *cobra.Command, value int) int {
	if !cmd.Flags().Changed("test") {
		return config.NoLimit
	}
	if value < 0 {
		return 0
	}
	return value
}
