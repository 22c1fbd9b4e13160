package htmlmd

import (
	"strings"

	"golang.org/x/net/html"
)

// wrapRule describes an element whose markdown form is a simple wrapping of
// its converted children.
type wrapRule struct {
	prefix    string
	suffix    string
	normalize bool
}

// wrapRules maps element names to their markdown wrapping. Elements with
// structural conversion logic (lists, definition lists, code) are handled
// separately in convertNode.
var wrapRules = map[string]wrapRule{
	"h1":         {prefix: "# ", suffix: "\n\n", normalize: true},
	"h2":         {prefix: "## ", suffix: "\n\n", normalize: true},
	"h3":         {prefix: "### ", suffix: "\n\n", normalize: true},
	"h4":         {prefix: "#### ", suffix: "\n\n", normalize: true},
	"h5":         {prefix: "##### ", suffix: "\n\n", normalize: true},
	"h6":         {prefix: "###### ", suffix: "\n\n", normalize: true},
	"p":          {suffix: "\n\n", normalize: true},
	"strong":     {prefix: "**", suffix: "**"},
	"b":          {prefix: "**", suffix: "**"},
	"em":         {prefix: "_", suffix: "_"},
	"i":          {prefix: "_", suffix: "_"},
	"blockquote": {prefix: "> ", suffix: "\n\n"},
}

// skipTags lists rustdoc chrome elements that are never rendered.
var skipTags = map[string]bool{
	"wbr":             true,
	"rustdoc-toolbar": true,
	"script":          true,
}

// skipIDs lists element ids belonging to rustdoc UI sections.
var skipIDs = map[string]bool{
	"copy-path":         true,
	"implementors":      true,
	"implementors-list": true,
}

// skipClassFragments lists class-attribute substrings that mark an element
// as rustdoc UI chrome: source links, collapsed sections, section anchors,
// breadcrumb navigation, and hover tooltips.
var skipClassFragments = []string{
	"src",
	"hideme",
	"anchor",
	"rustdoc-breadcrumbs",
	"tooltip",
}

// shouldSkip reports whether an element is rustdoc chrome that must not
// appear in the markdown output.
func shouldSkip(n *html.Node) bool {
	if skipTags[n.Data] {
		return true
	}
	if skipIDs[attr(n, "id")] {
		return true
	}
	class := attr(n, "class")
	if class == "" {
		return false
	}
	for _, fragment := range skipClassFragments {
		if strings.Contains(class, fragment) {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
