// Package htmlmd converts rustdoc-generated HTML pages into markdown.
//
// Only the content of the page's <main> element is converted; rustdoc's
// surrounding navigation, toolbars, and scripts are discarded along the way.
package htmlmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Convert parses a rustdoc HTML page and converts the content of its <main>
// element to markdown. Pages without a <main> element are rejected with an
// *ElementNotFoundError.
func Convert(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parsing HTML document: %w", err)
	}

	main := doc.Find("main").First()
	if main.Length() == 0 {
		return "", NewElementNotFoundError("main", src)
	}

	var b strings.Builder
	convertNode(main.Nodes[0], &b)
	return b.String(), nil
}

// convertNode renders a single element and its subtree.
func convertNode(n *html.Node, out *strings.Builder) {
	if n.Type != html.ElementNode || shouldSkip(n) {
		return
	}

	if rule, ok := wrapRules[n.Data]; ok {
		out.WriteString(rule.prefix)
		if rule.normalize {
			convertChildrenNormalized(n, out)
		} else {
			convertChildren(n, out)
		}
		out.WriteString(rule.suffix)
		return
	}

	switch n.Data {
	case "code":
		// <code> directly under <pre> is part of a code block; the fence
		// is emitted by the <pre> handler.
		if n.Parent != nil && n.Parent.Type == html.ElementNode && n.Parent.Data == "pre" {
			convertChildren(n, out)
		} else {
			out.WriteByte('`')
			convertChildren(n, out)
			out.WriteByte('`')
		}
	case "pre":
		out.WriteString("```\n")
		convertChildren(n, out)
		out.WriteString("\n```\n\n")
	case "ul":
		convertList(n, out, false)
		out.WriteByte('\n')
	case "ol":
		convertList(n, out, true)
		out.WriteByte('\n')
	case "li":
		convertChildrenNormalized(n, out)
	case "dl":
		convertDefinitionList(n, out)
		out.WriteByte('\n')
	case "dt":
		out.WriteString("- **")
		convertChildren(n, out)
		out.WriteString("**")
	case "dd":
		out.WriteString(": ")
		convertChildren(n, out)
		out.WriteByte('\n')
	case "br":
		out.WriteString("\n\n")
	default:
		// Links render their text only; containers render their children.
		convertChildren(n, out)
	}
}

// convertChildren renders the children of n in document order. Text nodes
// have non-breaking spaces replaced and reference-style link targets
// stripped; whitespace-only text nodes are dropped.
func convertChildren(n *html.Node, out *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text := strings.ReplaceAll(c.Data, " ", " ")
			text = strings.ReplaceAll(text, "&nbsp;", " ")
			if strings.TrimSpace(text) == "" {
				continue
			}
			out.WriteString(stripReferenceLinks(text))
		case html.ElementNode:
			convertNode(c, out)
		}
	}
}

// convertChildrenNormalized renders children with all runs of whitespace
// collapsed to single spaces. Used for block elements like paragraphs,
// headings, and list items where rustdoc's HTML indentation is noise.
func convertChildrenNormalized(n *html.Node, out *strings.Builder) {
	var buf strings.Builder
	convertChildren(n, &buf)
	out.WriteString(strings.Join(strings.Fields(buf.String()), " "))
}

// convertList renders the <li> children of a <ul> or <ol>.
func convertList(n *html.Node, out *strings.Builder, ordered bool) {
	index := 1
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		if ordered {
			out.WriteString(strconv.Itoa(index))
			out.WriteString(". ")
			index++
		} else {
			out.WriteString("- ")
		}
		convertChildrenNormalized(c, out)
		out.WriteByte('\n')
	}
}

// convertDefinitionList renders a <dl> as a bullet list of bold terms with
// their descriptions on the same line: "- **Term**: Description". Rustdoc
// uses this structure for its item tables on index pages.
func convertDefinitionList(n *html.Node, out *strings.Builder) {
	haveTerm := false
	haveDescription := false

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "dt":
			if haveTerm && haveDescription {
				out.WriteByte('\n')
			}
			out.WriteString("- **")
			convertChildrenNormalized(c, out)
			out.WriteString("**")
			haveTerm = true
			haveDescription = false
		case "dd":
			if haveTerm {
				out.WriteString(": ")
				convertChildrenNormalized(c, out)
				haveDescription = true
			}
		}
	}

	if haveTerm && haveDescription {
		out.WriteByte('\n')
	}
}
