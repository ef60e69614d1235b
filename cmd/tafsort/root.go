package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tbxtools/tafsort/cmd/tafsort/commands"
	"github.com/tbxtools/tafsort/cmd/tafsort/opts"
	"github.com/tbxtools/tafsort/pkg/config"
	"github.com/tbxtools/tafsort/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	noColor    bool
)

// NewRootCmd creates the tafsort root command
func NewRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:           "tafsort",
		Short:         "Rename Toniebox audio files using a CSV mapping or folder ids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := config.LoadDefaults(cmd.Context(), configFile)
			if err != nil {
				return errors.Errorf("loading defaults: %w", err)
			}
			rootOpts.Defaults = defaults

			setupLogging(debug || defaults.Debug)
			status.EnableColorIfTerminal()
			if noColor {
				status.DisableColor()
			}
			return nil
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(commands.NewFromCSVCmd(rootOpts))
	cmd.AddCommand(commands.NewWithIDCmd(rootOpts))

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "defaults file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
