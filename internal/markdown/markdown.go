// Package markdown holds the formatting helpers shared by every generator:
// headers, code blocks, filename sanitization, and doc-comment cleanup.
package markdown

import (
	"fmt"
	"strings"
)

const (
	// ItemHeaderLevel is the header level for item titles.
	ItemHeaderLevel = 1
	// SectionHeaderLevel is the header level for sections within an item.
	SectionHeaderLevel = 2
)

// Header renders a markdown header at the given level.
func Header(level int, text string) string {
	return strings.Repeat("#", level) + " " + text
}

// CodeBlock wraps content in a fenced code block, optionally tagged with a
// language for syntax highlighting.
func CodeBlock(content, language string) string {
	return fmt.Sprintf("```%s\n%s\n```", language, content)
}

// InlineCode wraps text in single backticks.
func InlineCode(text string) string {
	return "`" + text + "`"
}

// Filename converts an item path into a deterministic, filesystem-safe
// markdown filename: generic parameters are stripped, "::" becomes "-",
// and ".md" is appended.
//
//	Filename("std::vec::Vec")                   -> "std-vec-Vec.md"
//	Filename("std::collections::HashMap<K, V>") -> "std-collections-HashMap.md"
func Filename(itemPath string) string {
	base := itemPath
	if i := strings.Index(base, "<"); i >= 0 {
		base = base[:i]
	}
	return strings.ReplaceAll(base, "::", "-") + ".md"
}

// Documentation normalizes rustdoc documentation text: each line is trimmed,
// leading "///" or "//" comment markers are stripped, and intra-doc link
// targets collapse to their visible text.
func Documentation(docs string) string {
	if docs == "" {
		return ""
	}
	lines := strings.Split(docs, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "///"):
			trimmed = strings.TrimLeft(trimmed[3:], " \t")
		case strings.HasPrefix(trimmed, "//"):
			trimmed = strings.TrimLeft(trimmed[2:], " \t")
		}
		lines[i] = trimmed
	}
	return StripIntraDocLinks(strings.Join(lines, "\n"))
}

// NextActions renders a "## Next Actions" section from a list of actions.
// Returns "" when there are none.
func NextActions(actions []string) string {
	if len(actions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Next Actions\n\n")
	for _, action := range actions {
		b.WriteString("- ")
		b.WriteString(action)
		b.WriteString("\n")
	}
	return b.String()
}

// FirstLine returns the first line of a documentation string.
func FirstLine(docs string) string {
	if i := strings.IndexByte(docs, '\n'); i >= 0 {
		return docs[:i]
	}
	return docs
}
