package docs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rustdocmd/docmd/internal/markdown"
)

type structPayload struct {
	Kind     json.RawMessage `json:"kind"`
	Generics generics        `json:"generics"`
	Impls    []int           `json:"impls"`
}

// RenderStruct renders a struct item: title, documentation, fields (named,
// tuple-positional, or none for unit structs), generic parameters, and next
// actions.
func RenderStruct(item *Item, crate *Crate) (string, error) {
	payload, ok := unwrapInner(item.Inner, "struct")
	if !ok {
		return "", &KindMismatchError{Want: "struct", Got: kindDisplayName(innerKind(item.Inner))}
	}
	var data structPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return "", fmt.Errorf("decoding struct payload for %s: %w", item.DisplayName(), err)
	}

	var b strings.Builder
	b.WriteString(markdown.Header(markdown.ItemHeaderLevel, item.DisplayName()))
	b.WriteString("\n")

	if docs := markdown.Documentation(item.DocText()); docs != "" {
		b.WriteString("\n")
		b.WriteString(docs)
		b.WriteString("\n")
	}

	if fields := structFieldsSection(data.Kind, crate); fields != "" {
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

// structFieldsSection renders the "Fields" section for plain and tuple
// structs. Unit structs have no fields and produce "".
func structFieldsSection(kind json.RawMessage, crate *Crate) string {
	// Unit structs encode the kind as the bare string "unit".
	var s string
	if err := json.Unmarshal(kind, &s); err == nil {
		return ""
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(kind, &outer); err != nil {
		return ""
	}

	var fields string
	if v, ok := outer["plain"]; ok {
		var plain struct {
			Fields []int `json:"fields"`
		}
		json.Unmarshal(v, &plain)
		fields = renderNamedFields(plain.Fields, crate)
	} else if v, ok := outer["tuple"]; ok {
		var ids []*int
		json.Unmarshal(v, &ids)
		fields = renderPositionalFields(ids, crate)
	}
	if fields == "" {
		return ""
	}
	return markdown.Header(markdown.SectionHeaderLevel, "Fields") + "\n" + fields
}

// renderNamedFields renders named fields as a bullet list with type,
// visibility annotation, and documentation.
func renderNamedFields(ids []int, crate *Crate) string {
	var b strings.Builder
	for _, id := range ids {
		field, ok := crate.Item(id)
		if !ok {
			continue
		}
		typeRaw, ok := unwrapInner(field.Inner, "struct_field")
		if !ok {
			continue
		}

		b.WriteString("- ")
		b.WriteString(markdown.InlineCode(FormatType(typeRaw)))
		b.WriteString(" ")
		b.WriteString(field.DisplayName())

		if label := field.VisibilityLabel(); label != "" {
			b.WriteString(" ")
			b.WriteString(label)
		}
		if docs := markdown.Documentation(field.DocText()); docs != "" {
			b.WriteString(" - ")
			b.WriteString(docs)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderPositionalFields renders tuple fields by index. A nil id means the
// field was stripped from the public documentation.
func renderPositionalFields(ids []*int, crate *Crate) string {
	var b strings.Builder
	for i, id := range ids {
		if id == nil {
			fmt.Fprintf(&b, "- %d: Hidden field\n", i)
			continue
		}
		field, ok := crate.Item(*id)
		if !ok {
			continue
		}
		typeRaw, ok := unwrapInner(field.Inner, "struct_field")
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "- %d: %s", i, markdown.InlineCode(FormatType(typeRaw)))
		if docs := markdown.Documentation(field.DocText()); docs != "" {
			b.WriteString(" - ")
			b.WriteString(docs)
		}
		b.WriteString("\n")
	}
	return b.String()
}
