package demo

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ktustanowski/durationreporter/cmd/utils"
)

const Use = "demo"

var out string

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   Use,
		Short: "Measure a few scripted actions and print the reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
		Long: `The demo command begins and ends a scripted set of actions under two events, "Application Start" and
"Problematic Code". The last one is never ended on purpose, to show how open actions are reported.
It then prints the configured report, two custom listings built from the raw report data, the
warnings logged for misordered calls, and optionally the collected prometheus metrics.`,
	}

	utils.WithReportFlags(cmd)

	cmd.PersistentFlags().Float64("scale", 1, "Multiplier applied to every scripted sleep, 0 runs instantly")
	_ = viper.BindPFlag("demo.scale", cmd.PersistentFlags().Lookup("scale"))

	cmd.PersistentFlags().StringVar(&out, "out", "",
		"Specifies the file path where the reports will be written. If this flag is not provided, the output is directed to the standard output (stdout).")

	return cmd
}
