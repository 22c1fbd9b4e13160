package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rustdocmd/docmd/internal/build"
)

var listCmd = &cobra.Command{
	Use:   "list <library>",
	Short: "List every documented item path in a library",
	Example: `  docmd list serde
  docmd list tokio`,
	Args: cobra.ExactArgs(1),
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	content, err := build.List(cmd.Context(), args[0], loadConfig())
	if err != nil {
		log.Fatalf("list failed: %v", err)
	}

	fmt.Println(content)
}
