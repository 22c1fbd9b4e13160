package docs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rustdocmd/docmd/internal/markdown"
)

// RenderCrateIndex builds the crate overview page: name, crate-level
// documentation, public item counts grouped by kind, and per-kind link
// lists to the item pages.
func RenderCrateIndex(crate *Crate) string {
	name := crate.RootName()
	grouped := groupItemsByKind(crate)

	var b strings.Builder
	b.WriteString(markdown.Header(markdown.SectionHeaderLevel, name))
	b.WriteString("\n\n")

	if root, ok := crate.RootItem(); ok {
		if docs := markdown.Documentation(root.DocText()); docs != "" {
			b.WriteString(docs)
			b.WriteString("\n\n")
		}
	}

	b.WriteString(renderItemCounts(grouped))
	b.WriteString("\n\n")
	b.WriteString(renderItemLists(grouped))
	b.WriteString("\n")

	b.WriteString(markdown.NextActions([]string{
		"Show a specific item: `docmd show " + name + "::<item>`",
		"List all item paths: `docmd list " + name + "`",
	}))
	return b.String()
}

// groupItemsByKind collects public, named items by their kind's display
// name, each as its module-qualified path, sorted alphabetically within each
// group. The crate root is skipped, as are fields, variants, and impl
// blocks, which have no standalone page.
func groupItemsByKind(crate *Crate) map[string][]string {
	rootKey := strconv.Itoa(crate.Root)
	grouped := make(map[string][]string)

	for key, item := range crate.Index {
		if key == rootKey || item.Name == nil || !item.IsPublic() {
			continue
		}
		kind := innerKind(item.Inner)
		switch kind {
		case "struct_field", "variant", "impl":
			continue
		}
		display := kindDisplayName(kind)
		grouped[display] = append(grouped[display], crate.RelativePath(key, &item))
	}
	for _, names := range grouped {
		sort.Strings(names)
	}
	return grouped
}

func sortedKinds(grouped map[string][]string) []string {
	kinds := make([]string, 0, len(grouped))
	for kind := range grouped {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func renderItemCounts(grouped map[string][]string) string {
	var b strings.Builder
	b.WriteString("## Item Counts\n\n")

	if len(grouped) == 0 {
		b.WriteString("No public items found.\n")
		return b.String()
	}

	total := 0
	for _, names := range grouped {
		total += len(names)
	}
	fmt.Fprintf(&b, "**Total**: %d public items\n\n", total)

	for _, kind := range sortedKinds(grouped) {
		fmt.Fprintf(&b, "- **%s**: %d\n", kind, len(grouped[kind]))
	}
	return b.String()
}

func renderItemLists(grouped map[string][]string) string {
	var b strings.Builder
	for _, kind := range sortedKinds(grouped) {
		names := grouped[kind]
		if len(names) == 0 {
			continue
		}
		b.WriteString(markdown.Header(markdown.SectionHeaderLevel+1, kind))
		b.WriteString("\n\n")
		for _, name := range names {
			fmt.Fprintf(&b, "- [%s](%s)\n", name, markdown.Filename(name))
		}
		b.WriteString("\n")
	}
	return b.String()
}
