package docs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rustdocmd/docmd/internal/markdown"
)

type unionPayload struct {
	Generics generics `json:"generics"`
	Fields   []int    `json:"fields"`
	Impls    []int    `json:"impls"`
}

// unionSafetyNote warns about reading a union field other than the one most
// recently written.
const unionSafetyNote = "**Important**: Accessing union fields requires unsafe code. Only access the field that was most recently written to. Reading from a different field results in undefined behavior."

// RenderUnion renders a union item. The layout matches struct rendering
// with a mandatory safety note placed immediately after the description.
func RenderUnion(item *Item, crate *Crate) (string, error) {
	payload, ok := unwrapInner(item.Inner, "union")
	if !ok {
		return "", &KindMismatchError{Want: "union", Got: kindDisplayName(innerKind(item.Inner))}
	}
	var data unionPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return "", fmt.Errorf("decoding union payload for %s: %w", item.DisplayName(), err)
	}

	var b strings.Builder
	b.WriteString(markdown.Header(markdown.ItemHeaderLevel, item.DisplayName()))
	b.WriteString("\n")

	if docs := markdown.Documentation(item.DocText()); docs != "" {
		b.WriteString("\n")
		b.WriteString(docs)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(markdown.Header(markdown.SectionHeaderLevel, "Safety"))
	b.WriteString("\n")
	b.WriteString(unionSafetyNote)
	b.WriteString("\n")

	if fields := renderNamedFields(data.Fields, crate); fields != "" {
		b.WriteString("\n")
		b.WriteString(markdown.Header(markdown.SectionHeaderLevel, "Fields"))
		b.WriteString("\n")
		b.WriteString(fields)
	}

	if gen := genericsSection(data.Generics); gen != "" {
		b.WriteString("\n")
		b.WriteString(gen)
	}

	b.WriteString("\n")
	b.WriteString(itemNextActions(crate))
	return b.String(), nil
}
