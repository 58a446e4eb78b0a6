package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory...]",
	Short: "Discover tools and refresh the catalog",
	Long: `Walks the given directories (or the configured scan paths) looking for
tool directories, extracts their metadata, and upserts each one into the
catalog. Re-scanning is idempotent.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger()
		defer logger.Sync()
		formatter := newFormatter()

		reg, _, err := openRegistry(logger)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		count, err := reg.Scan(args)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		if jsonOutput {
			fmt.Printf("{\"tools_indexed\": %d}\n", count)
			return
		}
		fmt.Printf("Scan complete: %d tools indexed.\n", count)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
