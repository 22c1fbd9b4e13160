package docs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rustdocmd/docmd/internal/markdown"
)

type typeAliasPayload struct {
	Type     json.RawMessage `json:"type"`
	Generics generics        `json:"generics"`
}

// RenderTypeAlias renders a type alias: the declaration line, and when the
// aliased type resolves to a known item in the crate index, its concrete
// shape with the alias's generic arguments substituted in, a variants table
// for aliased enums, and a note that the alias inherits all implementations
// from the underlying type.
func RenderTypeAlias(item *Item, crate *Crate) (string, error) {
	payload, ok := unwrapInner(item.Inner, "type_alias")
	if !ok {
		return "", &KindMismatchError{Want: "type alias", Got: kindDisplayName(innerKind(item.Inner))}
	}
	var data typeAliasPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return "", fmt.Errorf("decoding type alias payload for %s: %w", item.DisplayName(), err)
	}

	name := item.DisplayName()

	var b strings.Builder
	b.WriteString(markdown.Header(markdown.ItemHeaderLevel, "Type Alias "+markdown.InlineCode(name)))
	b.WriteString("\n\n")

	if ns := itemNamespace(item, crate); ns != "" {
		b.WriteString("**Namespace:** ")
		b.WriteString(markdown.InlineCode(ns))
		b.WriteString("\n\n")
	}

	b.WriteString("**Definition:**\n\n")
	b.WriteString(markdown.CodeBlock(aliasDeclaration(name, data), "rust"))
	b.WriteString("\n")

	b.WriteString("\n**Aliased Type:**\n\n")
	b.WriteString(aliasedTypeSection(data.Type, crate))

	if docs := markdown.Documentation(item.DocText()); docs != "" {
		b.WriteString("\n### Description\n\n")
		b.WriteString(docs)
		b.WriteString("\n")
	}

	if table := aliasVariantsTable(data.Type, crate); table != "" {
		b.WriteString("\n---\n\n")
		b.WriteString(table)
	}

	b.WriteString("\n---\n\n## Implementations\n\n")
	b.WriteString(aliasImplementationsNote(data.Type, crate))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(itemNextActions(crate))
	return b.String(), nil
}

// aliasDeclaration builds the "pub type Name<T> = Target;" line, rendering
// the target by its short path form.
func aliasDeclaration(name string, data typeAliasPayload) string {
	var params []string
	for _, p := range data.Generics.Params {
		params = append(params, p.Name)
	}
	generic := ""
	if len(params) > 0 {
		generic = "<" + strings.Join(params, ", ") + ">"
	}
	return "pub type " + name + generic + " = " + FormatTypeShort(data.Type) + ";"
}

// aliasedTypeSection renders the aliased type's concrete shape. Enums
// expand to their full definition with the alias's generic arguments
// substituted; unresolvable targets fall back to the rendered type.
func aliasedTypeSection(aliasType json.RawMessage, crate *Crate) string {
	target, payload, kind := resolveAliasTarget(aliasType, crate)
	if target == nil || kind != "enum" {
		return markdown.CodeBlock(FormatType(aliasType), "rust") + "\n"
	}

	var data enumPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return markdown.CodeBlock(FormatType(aliasType), "rust") + "\n"
	}
	return markdown.CodeBlock(aliasedEnumDefinition(target, data, aliasType, crate), "rust") + "\n"
}

// resolveAliasTarget looks up the item the alias points at, returning the
// item, its kind payload, and its kind key.
func resolveAliasTarget(aliasType json.RawMessage, crate *Crate) (*Item, json.RawMessage, string) {
	id, ok := resolvedPathID(aliasType)
	if !ok {
		return nil, nil, ""
	}
	target, ok := crate.Item(id)
	if !ok {
		return nil, nil, ""
	}
	kind := innerKind(target.Inner)
	payload, ok := unwrapInner(target.Inner, kind)
	if !ok {
		return nil, nil, ""
	}
	return target, payload, kind
}

// resolvedPathID extracts the target item id from a resolved-path type.
func resolvedPathID(raw json.RawMessage) (int, bool) {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return 0, false
	}
	v, ok := outer["resolved_path"]
	if !ok {
		return 0, false
	}
	var p struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(v, &p); err != nil {
		return 0, false
	}
	return p.ID, true
}

// aliasSubstitution pairs the target's generic parameters positionally with
// the alias's concrete angle-bracket arguments, producing the parameter
// name substitution applied while rendering variant field types.
func aliasSubstitution(aliasType json.RawMessage, target generics) map[string]string {
	args := typeAngleArgs(aliasType)
	if len(args) == 0 {
		return nil
	}
	subst := make(map[string]string)
	for i, p := range target.Params {
		if i >= len(args) {
			break
		}
		rendered := formatGenericArg(args[i], formatOpts{short: true})
		if rendered != "" && rendered != p.Name {
			subst[p.Name] = rendered
		}
	}
	return subst
}

// aliasedEnumDefinition builds the aliased enum's Rust definition, keeping
// only the generic parameters the alias leaves unbound.
func aliasedEnumDefinition(target *Item, data enumPayload, aliasType json.RawMessage, crate *Crate) string {
	subst := aliasSubstitution(aliasType, data.Generics)

	generic := ""
	var free []string
	for _, arg := range typeAngleArgs(aliasType) {
		if name := genericArgName(arg); name != "" {
			free = append(free, name)
		}
	}
	if len(free) > 0 {
		generic = "<" + strings.Join(free, ", ") + ">"
	}

	var b strings.Builder
	b.WriteString("pub enum ")
	b.WriteString(target.DisplayName())
	b.WriteString(generic)
	b.WriteString(" {\n")

	for i, id := range data.Variants {
		variant, ok := crate.Item(id)
		if !ok {
			continue
		}
		raw, ok := unwrapInner(variant.Inner, "variant")
		if !ok {
			continue
		}
		var vd variantPayload
		if err := json.Unmarshal(raw, &vd); err != nil {
			continue
		}
		b.WriteString("    ")
		b.WriteString(variant.DisplayName())
		b.WriteString(variantShapeSubstituted(vd.Kind, i, aliasType, crate, subst))
		b.WriteString(",\n")
	}

	b.WriteString("}")
	return b.String()
}

// variantShapeSubstituted renders a variant's payload shape with the
// alias's substitution applied. A tuple variant whose field items were
// stripped from the index falls back to the alias's positional generic
// argument.
func variantShapeSubstituted(kind json.RawMessage, position int, aliasType json.RawMessage, crate *Crate, subst map[string]string) string {
	shape := variantShape(kind, crate, subst)
	if shape != "" {
		return shape
	}
	if !isTupleVariantKind(kind) {
		return ""
	}
	args := typeAngleArgs(aliasType)
	if position >= len(args) {
		return ""
	}
	rendered := formatGenericArg(args[position], formatOpts{short: true})
	if rendered == "" {
		return ""
	}
	return "(" + rendered + ")"
}

func isTupleVariantKind(kind json.RawMessage) bool {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(kind, &outer); err != nil {
		return false
	}
	_, ok := outer["tuple"]
	return ok
}

// aliasVariantsTable renders the cross-reference table for an aliased enum:
// one row per variant showing its substituted type and the first line of
// its documentation.
func aliasVariantsTable(aliasType json.RawMessage, crate *Crate) string {
	target, payload, kind := resolveAliasTarget(aliasType, crate)
	if target == nil || kind != "enum" {
		return ""
	}
	var data enumPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return ""
	}
	subst := aliasSubstitution(aliasType, data.Generics)

	var b strings.Builder
	b.WriteString("## Variants\n\n")
	b.WriteString("| Variant | Type | Description |\n")
	b.WriteString("| --- | --- | --- |\n")

	for i, id := range data.Variants {
		variant, ok := crate.Item(id)
		if !ok {
			continue
		}
		raw, ok := unwrapInner(variant.Inner, "variant")
		if !ok {
			continue
		}
		var vd variantPayload
		if err := json.Unmarshal(raw, &vd); err != nil {
			continue
		}

		typeCell := "N/A"
		if shape := variantShapeSubstituted(vd.Kind, i, aliasType, crate, subst); shape != "" {
			typeCell = strings.TrimSuffix(strings.TrimPrefix(shape, "("), ")")
			typeCell = strings.TrimSuffix(strings.TrimPrefix(typeCell, " { "), " }")
		}

		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			markdown.InlineCode(variant.DisplayName()),
			markdown.InlineCode(typeCell),
			markdown.FirstLine(markdown.Documentation(variant.DocText())))
	}

	return b.String()
}

// aliasImplementationsNote states that the alias inherits all
// implementations from the underlying type.
func aliasImplementationsNote(aliasType json.RawMessage, crate *Crate) string {
	target, _, _ := resolveAliasTarget(aliasType, crate)
	name := "the aliased type"
	if target != nil {
		name = target.DisplayName()
	}
	return "This type inherits all implementations from " + name + "."
}
