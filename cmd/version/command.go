package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktustanowski/durationreporter/internal/config"
)

func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.VersionInfo)
			return err
		},
	}
}
