package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/team-brain/toolregistry/internal/cli/errors"
	"github.com/team-brain/toolregistry/internal/domain/registry"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as JSON or Markdown",
	Run: func(cmd *cobra.Command, args []string) {
		logger := buildLogger()
		defer logger.Sync()
		formatter := newFormatter()

		reg, _, err := openRegistry(logger)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		format := exportFormat
		if format == "md" {
			format = registry.FormatMarkdown
		}

		dump, err := reg.Export(format)
		if err != nil {
			fmt.Println(formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, []byte(dump), 0o644); err != nil {
				fmt.Println(formatter.FormatError(errors.Classify(err)))
				os.Exit(1)
			}
			fmt.Printf("Exported to %s\n", exportOutput)
			return
		}
		fmt.Println(dump)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", registry.FormatJSON, "export format (json, markdown, md)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the export to a file instead of stdout")
}
