package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hpackenc/internal/config"
)

// rootFlags holds flags shared across subcommands.
type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "hpackc",
		Short: "Encode and inspect RFC 7541 HPACK header blocks",
		Long: "hpackc drives this module's HPACK encoder from the command line: " +
			"encode a header set, inspect the static table, " +
			"or serve a live occupancy dashboard.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath(), "path to config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newEncodeCmd(flags))
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newServeCmd(flags))

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	return cfg.Build()
}

func loadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}
