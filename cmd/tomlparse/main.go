// Command tomlparse reads simplified TOML files, and prints them as JSON or YAML.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		logger  = zap.NewNop()
	)

	rootCmd := &cobra.Command{
		Use:          "tomlparse",
		Short:        "Parse simplified TOML configuration files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// commands read the logger once flags are parsed
	lg := func() *zap.Logger { return logger }
	rootCmd.AddCommand(newParseCmd(lg))
	rootCmd.AddCommand(newDemoCmd(lg))

	return rootCmd
}
