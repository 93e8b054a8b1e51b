package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ktustanowski/durationreporter/cmd/demo"
	"github.com/ktustanowski/durationreporter/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:               "duration-reporter",
	Short:             "Measure how long named actions take and report their share of each event",
	PersistentPreRunE: preRun,
	SilenceUsage:      true,
}

var cfgFile string

func preRun(_ *cobra.Command, _ []string) error {
	if cfgFile == "" {
		if e := os.Getenv("CONFIG_PATH"); e != "" {
			cfgFile = e
		}
	}

	if cfgFile != "" {
		viper.SetConfigType("yaml")
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}

	return nil
}

func Execute(ctx context.Context) {
	// The demo runs when no subcommand is given.
	cmd, _, err := rootCmd.Find(os.Args[1:])
	if err == nil && cmd.Use == rootCmd.Use && !errors.Is(cmd.Flags().Parse(os.Args[1:]), pflag.ErrHelp) {
		rootCmd.SetArgs(append([]string{demo.Use}, os.Args[1:]...))
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().Int("log-level", 4, "Log level (0-6)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(demo.NewCmd())
	rootCmd.AddCommand(version.NewCmd())
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
