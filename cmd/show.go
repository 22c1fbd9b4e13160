package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rustdocmd/docmd/internal/build"
)

var showCmd = &cobra.Command{
	Use:   "show <item-path>",
	Short: "Show the markdown documentation for an item",
	Long: `Print the documentation page for a dotted or double-colon item path.
A bare library name shows the crate overview. If the corpus has not been
built yet it is built first.`,
	Example: `  docmd show serde
  docmd show serde::Deserialize
  docmd show serde_json.de.Deserializer`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	content, err := build.Show(cmd.Context(), args[0], loadConfig())
	if err != nil {
		log.Fatalf("show failed: %v", err)
	}

	fmt.Println(content)
}
