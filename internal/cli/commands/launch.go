package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
	"github.com/team-brain/toolregistry/internal/domain/launch"
)

var (
	launchInterpreter string
	launchAgent       string
)

var launchCmd = &cobra.Command{
	Use:   "launch <tool> [args...]",
	Short: "Run a cataloged tool's main script",
	Long: `Resolves the tool by name, finds its main script, and runs it through the
Python interpreter with the remaining arguments. The child inherits this
process's streams and its exit code is passed through.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger()
		defer logger.Sync()
		formatter := newFormatter()

		reg, _, err := openRegistry(logger)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		runner := launch.NewRunner(reg, launchInterpreter, launchAgent, logger)
		result := runner.Run(args[0], args[1:], false)
		if result.Stderr != "" {
			fmt.Fprintln(os.Stderr, result.Stderr)
		}
		os.Exit(result.Code)
	},
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().StringVar(&launchInterpreter, "interpreter", "", "python interpreter to use (default python3, then python)")
	launchCmd.Flags().StringVar(&launchAgent, "agent", "cli", "agent name recorded in usage events")
}
