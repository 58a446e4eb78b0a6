package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/team-brain/toolregistry/internal/cli/inference"
	"github.com/team-brain/toolregistry/internal/cli/output"
	"github.com/team-brain/toolregistry/internal/domain/config"
	"github.com/team-brain/toolregistry/internal/domain/registry"
)

var (
	cfgFile    string
	dbPath     string
	logLevel   string
	jsonOutput bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "toolregistry",
	Short: "Team Brain Tool Registry - catalog, score and launch Python tools",
	Long: `Tool Registry discovers the Python tools in your project directories,
extracts their metadata, scores their quality, and keeps everything in a
persistent local catalog you can search, export, and launch from.`,
}

func Execute() error {
	// Bare-query inference: "toolregistry focus tracker" becomes
	// "toolregistry search focus tracker".
	if len(os.Args) > 1 {
		inferredCmd, _ := inference.InferCommand(os.Args[1:])
		if inferredCmd != "" {
			newArgs := make([]string, 0, len(os.Args)+1)
			newArgs = append(newArgs, os.Args[0])
			newArgs = append(newArgs, inferredCmd)
			newArgs = append(newArgs, os.Args[1:]...)
			os.Args = newArgs
		}
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.toolregistry/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "registry database file (default is $HOME/.toolregistry/registry.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func newFormatter() *output.Formatter {
	fmtMode := output.FormatText
	if jsonOutput {
		fmtMode = output.FormatJSON
	}
	return output.NewFormatter(fmtMode, !noColor)
}

func buildLogger() *zap.Logger {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openRegistry loads the config and opens the catalog. Every sub-command
// that touches the catalog goes through here.
func openRegistry(logger *zap.Logger) (*registry.Registry, config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.NewStore(path).Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}

	db := dbPath
	if db == "" {
		db = config.DefaultDBPath()
	}
	store, err := registry.NewStore(db, logger)
	if err != nil {
		return nil, config.Config{}, err
	}

	reg, err := registry.New(store, registry.Options{
		ScanPaths:     cfg.ScanPaths,
		GitHubBaseURL: cfg.GitHubBaseURL,
		TrackUsage:    cfg.TrackUsage,
	}, logger)
	if err != nil {
		return nil, config.Config{}, err
	}
	return reg, cfg, nil
}
