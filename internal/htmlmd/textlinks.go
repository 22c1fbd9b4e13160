package htmlmd

import (
	"strings"
	"unicode"
)

// stripReferenceLinks collapses markdown reference-style links embedded in
// text nodes, turning "[text][reference]" into "text". Rustdoc leaves these
// in documentation text when the link target could not be resolved to a
// page. Brackets that are not part of a reference link pass through
// unchanged, and nesting inside either part is tracked so "[a[b]][c]" keeps
// its inner brackets.
func stripReferenceLinks(text string) string {
	runes := []rune(text)
	var out strings.Builder

	for i := 0; i < len(runes); {
		if runes[i] != '[' {
			out.WriteRune(runes[i])
			i++
			continue
		}

		j := i + 1
		depth := 1
		for j < len(runes) && depth > 0 {
			switch runes[j] {
			case '[':
				depth++
			case ']':
				depth--
			}
			j++
		}

		var linkText string
		if depth == 0 {
			linkText = string(runes[i+1 : j-1])
		} else {
			// Unterminated bracket: emit the rest verbatim.
			linkText = string(runes[i+1:])
		}

		k := j
		for k < len(runes) && unicode.IsSpace(runes[k]) {
			k++
		}

		if k < len(runes) && runes[k] == '[' {
			// Reference part follows: drop it, keep only the text.
			k++
			refDepth := 1
			for k < len(runes) && refDepth > 0 {
				switch runes[k] {
				case '[':
					refDepth++
				case ']':
					refDepth--
				}
				k++
			}
			out.WriteString(linkText)
			i = k
			continue
		}

		out.WriteByte('[')
		out.WriteString(linkText)
		out.WriteByte(']')
		i = j
	}

	return out.String()
}
