package docs

import (
	"encoding/json"
	"fmt"
)

// Parse decodes rustdoc JSON bytes into a Crate.
func Parse(data []byte) (*Crate, error) {
	var crate Crate
	if err := json.Unmarshal(data, &crate); err != nil {
		return nil, fmt.Errorf("unmarshaling rustdoc JSON: %w", err)
	}
	return &crate, nil
}

// innerKind extracts the kind from the inner JSON's single key. Unit kinds
// (like extern_type) encode as a bare string instead of an object.
func innerKind(inner json.RawMessage) string {
	if len(inner) == 0 {
		return "unknown"
	}
	var s string
	if err := json.Unmarshal(inner, &s); err == nil {
		return s
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(inner, &outer); err != nil {
		return "unknown"
	}
	for k := range outer {
		return k
	}
	return "unknown"
}

// ItemKind returns the kind key of an item's inner payload, like "struct"
// or "type_alias".
func ItemKind(item *Item) string {
	return innerKind(item.Inner)
}

// unwrapInner extracts the payload for a given kind from the inner JSON.
func unwrapInner(inner json.RawMessage, kind string) (json.RawMessage, bool) {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(inner, &outer); err != nil {
		return nil, false
	}
	payload, ok := outer[kind]
	return payload, ok
}

// kindDisplayName maps an inner-kind key to its human-readable name.
func kindDisplayName(kind string) string {
	switch kind {
	case "module":
		return "Module"
	case "extern_crate":
		return "Extern Crate"
	case "use":
		return "Use Statement"
	case "union":
		return "Union"
	case "struct":
		return "Struct"
	case "struct_field":
		return "Struct Field"
	case "enum":
		return "Enum"
	case "variant":
		return "Variant"
	case "function":
		return "Function"
	case "trait":
		return "Trait"
	case "trait_alias":
		return "Trait Alias"
	case "impl":
		return "Impl Block"
	case "type_alias":
		return "Type Alias"
	case "constant":
		return "Constant"
	case "static":
		return "Static"
	case "extern_type":
		return "Extern Type"
	case "macro":
		return "Macro"
	case "proc_macro":
		return "Proc Macro"
	case "primitive":
		return "Primitive"
	case "assoc_const":
		return "Associated Constant"
	case "assoc_type":
		return "Associated Type"
	default:
		return "Item"
	}
}
