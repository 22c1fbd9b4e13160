package docs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rustdocmd/docmd/internal/markdown"
)

type enumPayload struct {
	Generics generics `json:"generics"`
	Variants []int    `json:"variants"`
	Impls    []int    `json:"impls"`
}

type variantPayload struct {
	Kind         json.RawMessage `json:"kind"`
	Discriminant *struct {
		Expr string `json:"expr"`
	} `json:"discriminant"`
}

// RenderEnum renders an enum item: title, documentation, variants with
// their payload shapes and discriminants, generic parameters, and next
// actions.
func RenderEnum(item *Item, crate *Crate) (string, error) {
	payload, ok := unwrapInner(item.Inner, "enum")
	if !ok {
		return "", &KindMismatchError{Want: "enum", Got: kindDisplayName(innerKind(item.Inner))}
	}
	var data enumPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return "", fmt.Errorf("decoding enum payload for %s: %w", item.DisplayName(), err)
	}

	var b strings.Builder
	b.WriteString(markdown.Header(markdown.ItemHeaderLevel, item.DisplayName()))
	b.WriteString("\n")

	if docs := markdown.Documentation(item.DocText()); docs != "" {
		b.WriteString("\n")
		b.WriteString(docs)
		b.WriteString("\n")
	}

	if variants := variantsSection(data.Variants, crate); variants != "" {
		b.WriteString("\n")
		b.WriteString(variants)
	}

	if gen := genericsSection(data.Generics); gen != "" {
		b.WriteString("\n")
		b.WriteString(gen)
	}

	b.WriteString("\n")
	b.WriteString(itemNextActions(crate))
	return b.String(), nil
}

// variantsSection renders the "Variants" section as a bullet list: plain
// variants as `Name`, tuple variants as `Name(T1, T2)`, struct variants as
// `Name { f1: T1 }`, with any explicit discriminant and docs appended.
func variantsSection(ids []int, crate *Crate) string {
	if len(ids) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(markdown.Header(markdown.SectionHeaderLevel, "Variants"))
	b.WriteString("\n")

	for _, id := range ids {
		variant, ok := crate.Item(id)
		if !ok {
			continue
		}
		raw, ok := unwrapInner(variant.Inner, "variant")
		if !ok {
			continue
		}
		var data variantPayload
		if err := json.Unmarshal(raw, &data); err != nil {
			continue
		}

		b.WriteString("- ")
		b.WriteString(markdown.InlineCode(variant.DisplayName() + variantShape(data.Kind, crate, nil)))

		if data.Discriminant != nil {
			b.WriteString(" = ")
			b.WriteString(data.Discriminant.Expr)
		}
		if docs := markdown.Documentation(variant.DocText()); docs != "" {
			b.WriteString(" - ")
			b.WriteString(docs)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// variantShape renders the payload shape appended to a variant name: "" for
// plain variants, "(T1, T2)" for tuple variants, " { f1: T1 }" for struct
// variants. subst replaces generic parameter names in field types.
func variantShape(kind json.RawMessage, crate *Crate, subst map[string]string) string {
	// Plain variants encode the kind as the bare string "plain".
	var s string
	if err := json.Unmarshal(kind, &s); err == nil {
		return ""
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(kind, &outer); err != nil {
		return ""
	}

	if v, ok := outer["tuple"]; ok {
		var ids []*int
		json.Unmarshal(v, &ids)
		types := tupleVariantTypes(ids, crate, subst)
		if len(types) == 0 {
			return ""
		}
		return "(" + strings.Join(types, ", ") + ")"
	}
	if v, ok := outer["struct"]; ok {
		var sv struct {
			Fields []int `json:"fields"`
		}
		json.Unmarshal(v, &sv)
		fields := structVariantFields(sv.Fields, crate, subst)
		if len(fields) == 0 {
			return ""
		}
		return " { " + strings.Join(fields, ", ") + " }"
	}
	return ""
}

// tupleVariantTypes renders the field types of a tuple variant. Stripped
// (nil) or unindexed fields are skipped.
func tupleVariantTypes(ids []*int, crate *Crate, subst map[string]string) []string {
	var types []string
	for _, id := range ids {
		if id == nil {
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
		types = append(types, formatType(typeRaw, formatOpts{short: true, subst: subst}))
	}
	return types
}

// structVariantFields renders "name: type" pairs for a struct variant.
func structVariantFields(ids []int, crate *Crate, subst map[string]string) []string {
	var fields []string
	for _, id := range ids {
		field, ok := crate.Item(id)
		if !ok || field.Name == nil {
			continue
		}
		typeRaw, ok := unwrapInner(field.Inner, "struct_field")
		if !ok {
			continue
		}
		fields = append(fields, *field.Name+": "+formatType(typeRaw, formatOpts{short: true, subst: subst}))
	}
	return fields
}
