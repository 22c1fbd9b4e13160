package markdown

import (
	"regexp"
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"
)

// inlineLinkRe matches inline links in source form: [label](dest). The label
// may carry inline markup like code spans.
var inlineLinkRe = regexp.MustCompile(`\[([^\[\]]+)\]\(([^()\s]+)\)`)

// refLinkRe matches reference-style links: [text][ref].
var refLinkRe = regexp.MustCompile(`\[([^\[\]]+)\]\[[^\[\]]*\]`)

// refDefRe matches reference definition lines: [ref]: target.
var refDefRe = regexp.MustCompile(`^\s*\[[^\[\]]+\]:\s+\S+.*$`)

// StripIntraDocLinks removes intra-doc link targets from rustdoc markdown
// text, keeping only the visible link text. Once documentation is split into
// per-item files the original relative targets no longer resolve. External
// (scheme-qualified) links are left alone.
//
// The markdown is parsed to AST to decide which destinations are genuine
// relative links; the replacement then happens on the source text so the
// label keeps its original markup, code spans included.
func StripIntraDocLinks(src string) string {
	doc := gm.Parse([]byte(src), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	intraDoc := make(map[string]bool)
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		link, ok := node.(*ast.Link)
		if !ok {
			return ast.GoToNext
		}
		dest := string(link.Destination)
		if dest != "" && !strings.Contains(dest, "://") {
			intraDoc[dest] = true
		}
		return ast.GoToNext
	})

	result := inlineLinkRe.ReplaceAllStringFunc(src, func(m string) string {
		sub := inlineLinkRe.FindStringSubmatch(m)
		if intraDoc[sub[2]] {
			return sub[1]
		}
		return m
	})

	// Reference-style links and their definitions don't survive splitting
	// either: collapse [text][ref] and drop [ref]: target lines.
	result = refLinkRe.ReplaceAllString(result, "$1")
	lines := strings.Split(result, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if refDefRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
