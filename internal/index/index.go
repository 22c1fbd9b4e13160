package index

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/rustdocmd/docmd/internal/htmlmd"
)

// Extract parses a rustdoc all-items page and returns the mapping from item
// names (as displayed, e.g. "de::value::Error") to the relative HTML file
// documenting them (e.g. "de/value/struct.Error.html"). A page with no item
// links is an error: rustdoc always emits at least one for a non-empty
// library.
func Extract(html string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing item index: %w", err)
	}

	mappings := make(map[string]string)
	var linkErr error
	doc.Find("ul.all-items li a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			linkErr = fmt.Errorf("item link %q has no href attribute", sel.Text())
			return
		}
		mappings[sel.Text()] = href
	})
	if linkErr != nil {
		return nil, linkErr
	}

	if len(mappings) == 0 {
		return nil, htmlmd.NewElementNotFoundError("ul.all-items li a", html)
	}
	return mappings, nil
}

// BuildItemMap turns raw extracted mappings into the final item map: keys
// gain the library's canonical prefix and values swap the HTML extension
// for markdown.
func BuildItemMap(lib Library, mappings map[string]string) map[string]string {
	itemMap := make(map[string]string, len(mappings))
	for name, htmlPath := range mappings {
		itemMap[lib.Canonical+"::"+name] = MarkdownPath(htmlPath)
	}
	return itemMap
}

// MarkdownPath swaps an ".html" extension for ".md".
func MarkdownPath(htmlPath string) string {
	return strings.TrimSuffix(htmlPath, ".html") + ".md"
}
