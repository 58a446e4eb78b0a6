package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show the ecosystem health report",
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger()
		defer logger.Sync()
		formatter := newFormatter()

		reg, _, err := openRegistry(logger)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		formatter.FormatHealth(reg.Health())
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
