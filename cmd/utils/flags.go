package utils

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func WithReportFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("unit", "ms", "Unit durations are displayed in: ns, us, ms or s")
	_ = viper.BindPFlag("report.unit", cmd.PersistentFlags().Lookup("unit"))

	cmd.PersistentFlags().String("format", "text", "Report format: text, table or json")
	_ = viper.BindPFlag("report.format", cmd.PersistentFlags().Lookup("format"))

	cmd.PersistentFlags().Bool("metrics", false, "Collect prometheus metrics and print them after the report")
	_ = viper.BindPFlag("metrics.enabled", cmd.PersistentFlags().Lookup("metrics"))
}
