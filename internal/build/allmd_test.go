package build

import (
	"strings"
	"testing"
)

func TestFormatAllMarkdown(t *testing.T) {
	t.Parallel()

	content := "# List of all items\n\n### Structs\n\n- Error\n- Config\n\n### Traits\n\n- Serialize\n- Deserialize\n\n### Enums\n\n- Value"
	got := FormatAllMarkdown("serde", content)

	if !strings.HasPrefix(got, "# serde\n") {
		t.Errorf("output should start with crate heading:\n%s", got)
	}
	if !strings.Contains(got, "\nList of all items\n") {
		t.Errorf("original heading should be demoted to a paragraph:\n%s", got)
	}
	if strings.Contains(got, "# List of all items") {
		t.Errorf("original H1 should not survive:\n%s", got)
	}

	for _, want := range []string{
		"\n### Structs\n",
		"\n### Traits\n",
		"\n### Enums\n",
		"- serde::Error",
		"- serde::Config",
		"- serde::Serialize",
		"- serde::Deserialize",
		"- serde::Value",
		"\n## Usage\n",
		"docmd show <ITEM_PATH>",
		"docmd show serde::Error",
		"docmd show serde::Serialize",
		"docmd show serde::Value",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Only the first item of each section appears in the examples.
	if strings.Contains(got, "docmd show serde::Config") {
		t.Errorf("examples should hold one item per section:\n%s", got)
	}
}

func TestFormatAllMarkdownNoItems(t *testing.T) {
	t.Parallel()

	got := FormatAllMarkdown("serde", "# List of all items\n")
	if !strings.Contains(got, "docmd show serde::SomeItem") {
		t.Errorf("empty listing should fall back to a placeholder example:\n%s", got)
	}
}

func TestFormatAllMarkdownKeepsCanonicalName(t *testing.T) {
	t.Parallel()

	got := FormatAllMarkdown("rustdoc_types", "# List of all items\n\n### Structs\n\n- Error\n- Config")
	if !strings.HasPrefix(got, "# rustdoc_types") {
		t.Errorf("heading should use the canonical name:\n%s", got)
	}
	if !strings.Contains(got, "- rustdoc_types::Error") {
		t.Errorf("items should carry the canonical prefix:\n%s", got)
	}
}
