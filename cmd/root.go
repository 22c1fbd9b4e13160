package cmd

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustdocmd/docmd/internal/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docmd",
	Short: "Rust dependency documentation as markdown",
	Long: `docmd converts the documentation of a project's dependency crates into a
markdown corpus addressable by item paths like serde::Deserializer.
Run without a subcommand it serves the corpus over MCP on stdio.`,
	Run: runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(setupLogging)

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
