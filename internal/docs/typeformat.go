package docs

import (
	"encoding/json"
	"strings"
)

// formatOpts controls type rendering. short renders resolved paths by their
// last segment; subst replaces generic parameter names with concrete text.
type formatOpts struct {
	short bool
	subst map[string]string
}

// FormatType renders a rustdoc type JSON in canonical Rust syntax, keeping
// full paths. Every composite level recurses: tuples, arrays, slices,
// pointers, references, function pointers, trait objects, and qualified
// paths all round-trip to their textual form.
func FormatType(raw json.RawMessage) string {
	return formatType(raw, formatOpts{})
}

// FormatTypeShort renders a type with resolved paths shortened to their
// last segment, the form rustdoc shows in declarations.
func FormatTypeShort(raw json.RawMessage) string {
	return formatType(raw, formatOpts{short: true})
}

func formatType(raw json.RawMessage, opts formatOpts) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	// Unit variants encode as bare strings.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "infer" {
			return "_"
		}
		return s
	}

	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return ""
	}

	if v, ok := outer["resolved_path"]; ok {
		return formatPath(v, opts)
	}
	if v, ok := outer["generic"]; ok {
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return ""
		}
		if concrete, ok := opts.subst[name]; ok {
			return concrete
		}
		return name
	}
	if v, ok := outer["primitive"]; ok {
		var name string
		json.Unmarshal(v, &name)
		return name
	}
	if v, ok := outer["tuple"]; ok {
		var types []json.RawMessage
		json.Unmarshal(v, &types)
		parts := make([]string, 0, len(types))
		for _, t := range types {
			parts = append(parts, formatType(t, opts))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	if v, ok := outer["slice"]; ok {
		return "[" + formatType(v, opts) + "]"
	}
	if v, ok := outer["array"]; ok {
		var arr struct {
			Type json.RawMessage `json:"type"`
			Len  string          `json:"len"`
		}
		json.Unmarshal(v, &arr)
		return "[" + formatType(arr.Type, opts) + "; " + arr.Len + "]"
	}
	if v, ok := outer["raw_pointer"]; ok {
		var ptr struct {
			IsMutable bool            `json:"is_mutable"`
			Type      json.RawMessage `json:"type"`
		}
		json.Unmarshal(v, &ptr)
		if ptr.IsMutable {
			return "*mut " + formatType(ptr.Type, opts)
		}
		return "*const " + formatType(ptr.Type, opts)
	}
	if v, ok := outer["borrowed_ref"]; ok {
		var ref struct {
			Lifetime  *string         `json:"lifetime"`
			IsMutable bool            `json:"is_mutable"`
			Type      json.RawMessage `json:"type"`
		}
		json.Unmarshal(v, &ref)
		var b strings.Builder
		b.WriteString("&")
		if ref.Lifetime != nil && *ref.Lifetime != "" {
			b.WriteString(*ref.Lifetime)
			b.WriteString(" ")
		}
		if ref.IsMutable {
			b.WriteString("mut ")
		}
		b.WriteString(formatType(ref.Type, opts))
		return b.String()
	}
	if v, ok := outer["function_pointer"]; ok {
		return formatFunctionPointer(v, opts)
	}
	if v, ok := outer["impl_trait"]; ok {
		var bounds []json.RawMessage
		json.Unmarshal(v, &bounds)
		return "impl " + formatBounds(bounds, opts)
	}
	if v, ok := outer["dyn_trait"]; ok {
		var dyn struct {
			Traits []struct {
				Trait json.RawMessage `json:"trait"`
			} `json:"traits"`
			Lifetime *string `json:"lifetime"`
		}
		json.Unmarshal(v, &dyn)
		parts := make([]string, 0, len(dyn.Traits)+1)
		for _, t := range dyn.Traits {
			parts = append(parts, formatPath(t.Trait, opts))
		}
		if dyn.Lifetime != nil && *dyn.Lifetime != "" {
			parts = append(parts, *dyn.Lifetime)
		}
		return "dyn " + strings.Join(parts, " + ")
	}
	if v, ok := outer["qualified_path"]; ok {
		var qp struct {
			Name     string          `json:"name"`
			Args     json.RawMessage `json:"args"`
			SelfType json.RawMessage `json:"self_type"`
			Trait    json.RawMessage `json:"trait"`
		}
		json.Unmarshal(v, &qp)
		self := formatType(qp.SelfType, opts)
		suffix := qp.Name + formatGenericArgs(qp.Args, opts)
		if len(qp.Trait) > 0 && string(qp.Trait) != "null" {
			return "<" + self + " as " + formatPath(qp.Trait, opts) + ">::" + suffix
		}
		return self + "::" + suffix
	}
	if v, ok := outer["pat"]; ok {
		var pat struct {
			Type json.RawMessage `json:"type"`
		}
		json.Unmarshal(v, &pat)
		return formatType(pat.Type, opts)
	}

	return ""
}

// formatPath renders a path object (path string plus generic args).
func formatPath(raw json.RawMessage, opts formatOpts) string {
	var p struct {
		Path string          `json:"path"`
		Args json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return ""
	}
	name := p.Path
	if opts.short {
		if i := strings.LastIndex(name, "::"); i >= 0 {
			name = name[i+2:]
		}
	}
	return name + formatGenericArgs(p.Args, opts)
}

// formatFunctionPointer renders the full fn-pointer signature.
func formatFunctionPointer(raw json.RawMessage, opts formatOpts) string {
	var fp struct {
		Sig struct {
			Inputs      [][]json.RawMessage `json:"inputs"`
			Output      json.RawMessage     `json:"output"`
			IsCVariadic bool                `json:"is_c_variadic"`
		} `json:"sig"`
		Header struct {
			IsUnsafe bool `json:"is_unsafe"`
		} `json:"header"`
	}
	if err := json.Unmarshal(raw, &fp); err != nil {
		return "fn()"
	}

	var b strings.Builder
	if fp.Header.IsUnsafe {
		b.WriteString("unsafe ")
	}
	b.WriteString("fn(")
	var params []string
	for _, pair := range fp.Sig.Inputs {
		if len(pair) < 2 {
			continue
		}
		params = append(params, formatType(pair[1], opts))
	}
	if fp.Sig.IsCVariadic {
		params = append(params, "...")
	}
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(")")
	if out := formatType(fp.Sig.Output, opts); out != "" {
		b.WriteString(" -> ")
		b.WriteString(out)
	}
	return b.String()
}

// formatBounds renders generic bounds joined with " + ".
func formatBounds(bounds []json.RawMessage, opts formatOpts) string {
	var parts []string
	for _, bound := range bounds {
		var outer map[string]json.RawMessage
		if err := json.Unmarshal(bound, &outer); err != nil {
			continue
		}
		if v, ok := outer["trait_bound"]; ok {
			var tb struct {
				Trait    json.RawMessage `json:"trait"`
				Modifier string          `json:"modifier"`
			}
			json.Unmarshal(v, &tb)
			name := formatPath(tb.Trait, opts)
			if tb.Modifier == "maybe" {
				name = "?" + name
			}
			parts = append(parts, name)
			continue
		}
		if v, ok := outer["outlives"]; ok {
			var lt string
			json.Unmarshal(v, &lt)
			parts = append(parts, lt)
		}
	}
	return strings.Join(parts, " + ")
}

// formatGenericArgs renders a generic-args JSON: "<T, E>" for angle-bracket
// form, "(T) -> R" for the parenthesized (Fn-trait) form, "" when absent.
func formatGenericArgs(raw json.RawMessage, opts formatOpts) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "return_type_notation" {
			return "(..)"
		}
		return ""
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return ""
	}

	if v, ok := outer["angle_bracketed"]; ok {
		var parts []string
		for _, arg := range angleArgs(v) {
			if rendered := formatGenericArg(arg, opts); rendered != "" {
				parts = append(parts, rendered)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		return "<" + strings.Join(parts, ", ") + ">"
	}
	if v, ok := outer["parenthesized"]; ok {
		var p struct {
			Inputs []json.RawMessage `json:"inputs"`
			Output json.RawMessage   `json:"output"`
		}
		json.Unmarshal(v, &p)
		parts := make([]string, 0, len(p.Inputs))
		for _, in := range p.Inputs {
			parts = append(parts, formatType(in, opts))
		}
		result := "(" + strings.Join(parts, ", ") + ")"
		if out := formatType(p.Output, opts); out != "" {
			result += " -> " + out
		}
		return result
	}
	return ""
}

// formatGenericArg renders a single generic argument: a type, a lifetime, a
// const expression, or the inferred placeholder.
func formatGenericArg(raw json.RawMessage, opts formatOpts) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "infer" {
			return "_"
		}
		return ""
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return ""
	}
	if v, ok := outer["type"]; ok {
		return formatType(v, opts)
	}
	if v, ok := outer["lifetime"]; ok {
		var lt string
		json.Unmarshal(v, &lt)
		return lt
	}
	if v, ok := outer["const"]; ok {
		var c struct {
			Expr string `json:"expr"`
		}
		json.Unmarshal(v, &c)
		return c.Expr
	}
	return ""
}

// angleArgs extracts the raw argument entries of an angle-bracketed
// generic-args payload.
func angleArgs(raw json.RawMessage) []json.RawMessage {
	var ab struct {
		Args []json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(raw, &ab); err != nil {
		return nil
	}
	return ab.Args
}

// typeAngleArgs returns the angle-bracketed argument entries of a type's
// resolved path, or nil when the type is not a path or has no arguments.
func typeAngleArgs(raw json.RawMessage) []json.RawMessage {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return nil
	}
	v, ok := outer["resolved_path"]
	if !ok {
		return nil
	}
	var p struct {
		Args json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(v, &p); err != nil || len(p.Args) == 0 {
		return nil
	}
	var argsOuter map[string]json.RawMessage
	if err := json.Unmarshal(p.Args, &argsOuter); err != nil {
		return nil
	}
	ab, ok := argsOuter["angle_bracketed"]
	if !ok {
		return nil
	}
	return angleArgs(ab)
}

// genericArgName returns the parameter name when the argument is a bare
// generic type (like T), or "" for concrete arguments.
func genericArgName(raw json.RawMessage) string {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return ""
	}
	t, ok := outer["type"]
	if !ok {
		return ""
	}
	var typeOuter map[string]json.RawMessage
	if err := json.Unmarshal(t, &typeOuter); err != nil {
		return ""
	}
	g, ok := typeOuter["generic"]
	if !ok {
		return ""
	}
	var name string
	json.Unmarshal(g, &name)
	return name
}
