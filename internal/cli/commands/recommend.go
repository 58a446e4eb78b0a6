package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <task>...",
	Short: "Recommend tools for a task description",
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

		task := strings.Join(args, " ")
		tools := reg.Recommend(task)
		if len(tools) == 0 && !jsonOutput {
			fmt.Printf("No recommendations for %q.\n", task)
			return
		}
		formatter.FormatTools(tools)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}
