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

// NewWithIDCmd creates the with-id command
func NewWithIDCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var testLimit int

	cmd := &cobra.Command{
		Use:   "with-id <input_dir> <output_dir>",
		Short: "Rename files to match their folder id",
		Long: `with-id copies each folder's audio file into the output directory,
renamed to the folder's id. No CSV mapping is consulted and nothing is
routed to unmatched/. Source files are never modified or deleted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "with-id").Logger().WithContext(cmd.Context())

			cfg := config.NewOptions(args[0], "", args[1], entryLimit(cmd, testLimit), rootOpts.Defaults)
			if err := config.Validate(ctx, cfg); err != nil {
				return errors.Errorf("validating options: %w", err)
			}

			tracker := status.NewTracker()
			op, err := operation.NewWithIDOperation(operation.Options{
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
