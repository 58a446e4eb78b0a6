package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
	"github.com/team-brain/toolregistry/internal/domain/catalog"
)

var (
	listCategory   string
	listMinQuality int
	listCompact    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged tools",
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger()
		defer logger.Sync()
		formatter := newFormatter()

		reg, _, err := openRegistry(logger)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		var tools []*catalog.Tool
		if listCategory != "" {
			tools = reg.ByCategory(listCategory)
		} else {
			tools = reg.List()
		}
		if listMinQuality > 0 {
			filtered := tools[:0:0]
			for _, t := range tools {
				if t.QualityScore >= listMinQuality {
					filtered = append(filtered, t)
				}
			}
			tools = filtered
		}

		if listCompact && !jsonOutput {
			for _, t := range tools {
				fmt.Printf("%s - %s\n", t.Name, t.Description)
			}
			return
		}
		formatter.FormatTools(tools)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listCategory, "category", "", "only tools in this category")
	listCmd.Flags().IntVar(&listMinQuality, "quality", 0, "minimum quality score")
	listCmd.Flags().BoolVar(&listCompact, "compact", false, "one line per tool")
}
