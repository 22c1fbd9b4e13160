package build

import "strings"

// FormatAllMarkdown post-processes the converted all.html markdown: the
// crate name becomes the H1 heading, the original "List of all items"
// heading is demoted to a paragraph, every list entry is prefixed with the
// crate name, and a usage section with example show commands is appended.
func FormatAllMarkdown(crateName, content string) string {
	var result []string
	lines := strings.Split(content, "\n")

	result = append(result, "# "+crateName, "")

	if len(lines) > 0 {
		first := lines[0]
		if strings.HasPrefix(first, "# List of all items") {
			first = first[2:]
		}
		result = append(result, first)
		lines = lines[1:]
	}

	// One example item per section, capped at three overall.
	var firstItems []string
	inSection := false

	for _, line := range lines {
		if strings.HasPrefix(line, "### ") {
			inSection = true
			result = append(result, line)
			continue
		}
		item, ok := strings.CutPrefix(line, "- ")
		if !ok {
			result = append(result, line)
			continue
		}
		qualified := crateName + "::" + item
		result = append(result, "- "+qualified)
		if inSection {
			firstItems = append(firstItems, qualified)
			inSection = false
		}
	}

	result = append(result,
		"",
		"## Usage",
		"",
		"To view documentation for a specific item, use the `show` command:",
		"",
		"```shell",
		"docmd show <ITEM_PATH>",
		"```",
		"",
		"Examples:",
		"",
		"```shell",
	)

	if len(firstItems) > 3 {
		firstItems = firstItems[:3]
	}
	for _, item := range firstItems {
		result = append(result, "docmd show "+item)
	}
	if len(firstItems) == 0 {
		result = append(result, "docmd show "+crateName+"::SomeItem")
	}

	result = append(result, "```")
	return strings.Join(result, "\n")
}
