package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and how many tools each holds",
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger()
		defer logger.Sync()
		formatter := newFormatter()

		reg, _, err := openRegistry(logger)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		formatter.FormatCategories(reg.Categories())
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
