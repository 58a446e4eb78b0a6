package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
)

var infoCmd = &cobra.Command{
	Use:   "info <tool>",
	Short: "Show the full record of one tool",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger()
		defer logger.Sync()
		formatter := newFormatter()

		reg, _, err := openRegistry(logger)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		tool, ok := reg.Get(args[0])
		if !ok {
			fmt.Println(formatter.FormatError(errors.Classify(fmt.Errorf("tool not found: %s", args[0]))))
			os.Exit(1)
		}
		formatter.FormatToolDetail(tool)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
