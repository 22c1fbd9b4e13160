package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rustdocmd/docmd/internal/build"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate <crate>",
	Short: "Generate markdown from rustdoc's JSON type model",
	Long: `Produce the rustdoc JSON dump for a dependency crate with a nightly
toolchain and render one markdown page per public item from the type model,
instead of converting the HTML tree. Item kinds without a structured
renderer fall back to a name-and-docs page.`,
	Example: `  docmd generate serde
  docmd generate serde --output ./docs`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "directory to write the corpus to")
}

func runGenerate(cmd *cobra.Command, args []string) {
	summary, err := build.Generate(cmd.Context(), args[0], generateOutput, loadConfig())
	if err != nil {
		log.Fatalf("generate failed: %v", err)
	}

	fmt.Println(summary)
	fmt.Printf("  Run `docmd list %s` to see all items\n", summary.Library)
}
