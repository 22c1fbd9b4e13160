package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rustdocmd/docmd/internal/build"
)

var buildCmd = &cobra.Command{
	Use:   "build <crate>",
	Short: "Build the markdown corpus for a dependency crate",
	Long: `Run cargo doc for a dependency crate, convert every generated page to
markdown, and write the corpus with its metadata sidecar.`,
	Example: `  docmd build serde
  docmd build rustdoc-types`,
	Args: cobra.ExactArgs(1),
	Run:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) {
	summary, err := build.Run(cmd.Context(), args[0], loadConfig())
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	fmt.Println(summary)
	fmt.Printf("  Run `docmd list %s` to see all items\n", summary.Library)
}
