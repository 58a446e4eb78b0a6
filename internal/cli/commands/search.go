package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
)

var (
	searchCategory   string
	searchMinQuality int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the catalog by name, description, category or capability",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger()
		defer logger.Sync()
		formatter := newFormatter()

		reg, _, err := openRegistry(logger)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		query := strings.Join(args, " ")
		tools := reg.Search(query, searchCategory, searchMinQuality)
		if len(tools) == 0 && !jsonOutput {
			fmt.Printf("No tools match %q.\n", query)
			return
		}
		formatter.FormatTools(tools)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "restrict matches to a category")
	searchCmd.Flags().IntVar(&searchMinQuality, "min-quality", 0, "minimum quality score")
}
