package docs

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rustdocmd/docmd/internal/markdown"
)

// RenderItem produces the markdown document for a single item, dispatching
// on the item's kind. Kinds without a dedicated renderer fall back to a
// title, documentation, and next-actions layout.
func RenderItem(item *Item, crate *Crate) (string, error) {
	switch innerKind(item.Inner) {
	case "struct":
		return RenderStruct(item, crate)
	case "enum":
		return RenderEnum(item, crate)
	case "union":
		return RenderUnion(item, crate)
	case "type_alias":
		return RenderTypeAlias(item, crate)
	case "function":
		return renderFunction(item, crate), nil
	default:
		return renderGeneric(item, crate), nil
	}
}

// generics is the shared shape of a rustdoc generics block.
type generics struct {
	Params []genericParam `json:"params"`
}

type genericParam struct {
	Name string          `json:"name"`
	Kind json.RawMessage `json:"kind"`
}

// genericParamKindLabel maps a generic parameter's kind payload to its
// display label.
func genericParamKindLabel(kind json.RawMessage) string {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(kind, &outer); err != nil {
		return "type"
	}
	for _, label := range []string{"lifetime", "type", "const"} {
		if _, ok := outer[label]; ok {
			return label
		}
	}
	return "type"
}

// genericsSection renders the "Generic Parameters" section, or "" when the
// item has no generic parameters.
func genericsSection(g generics) string {
	if len(g.Params) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(markdown.Header(markdown.SectionHeaderLevel, "Generic Parameters"))
	b.WriteString("\n")
	for _, p := range g.Params {
		b.WriteString("- ")
		b.WriteString(markdown.InlineCode(p.Name))
		b.WriteString(": ")
		b.WriteString(genericParamKindLabel(p.Kind))
		b.WriteString("\n")
	}
	return b.String()
}

// itemNextActions renders the closing next-actions section shared by every
// item document.
func itemNextActions(crate *Crate) string {
	name := crate.RootName()
	return markdown.NextActions([]string{
		"Browse the crate overview: `docmd show " + name + "`",
		"List all items: `docmd list " + name + "`",
	})
}

// itemNamespace returns the item's enclosing module path, or "" when the
// item sits at the crate root or has no recorded path.
func itemNamespace(item *Item, crate *Crate) string {
	summary, ok := crate.Paths[strconv.Itoa(item.ID)]
	if !ok || len(summary.Path) < 2 {
		return ""
	}
	return strings.Join(summary.Path[:len(summary.Path)-1], "::")
}

// renderFunction renders a standalone function: its signature as a code
// block followed by documentation.
func renderFunction(item *Item, crate *Crate) string {
	payload, _ := unwrapInner(item.Inner, "function")

	var b strings.Builder
	b.WriteString(markdown.Header(markdown.ItemHeaderLevel, item.DisplayName()))
	b.WriteString("\n")

	if sig := renderFnSig(item.DisplayName(), payload); sig != "" {
		b.WriteString("\n")
		b.WriteString(markdown.CodeBlock("pub "+sig, "rust"))
		b.WriteString("\n")
	}

	if docs := markdown.Documentation(item.DocText()); docs != "" {
		b.WriteString("\n")
		b.WriteString(docs)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(itemNextActions(crate))
	return b.String()
}

// renderGeneric is the fallback layout for kinds without a dedicated
// renderer: title, documentation, next actions.
func renderGeneric(item *Item, crate *Crate) string {
	var b strings.Builder
	b.WriteString(markdown.Header(markdown.ItemHeaderLevel, item.DisplayName()))
	b.WriteString("\n")

	if docs := markdown.Documentation(item.DocText()); docs != "" {
		b.WriteString("\n")
		b.WriteString(docs)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(itemNextActions(crate))
	return b.String()
}
