package docs

import (
	"encoding/json"
	"strings"
)

// renderFnSig builds a plain-text Rust function signature from structured
// rustdoc JSON. Example output: "fn get(&self, key: &str) -> Option<&Value>".
func renderFnSig(name string, fnData json.RawMessage) string {
	var fn struct {
		Sig struct {
			Inputs      []json.RawMessage `json:"inputs"`
			Output      json.RawMessage   `json:"output"`
			IsCVariadic bool              `json:"is_c_variadic"`
		} `json:"sig"`
		Generics struct {
			Params []struct {
				Name string          `json:"name"`
				Kind json.RawMessage `json:"kind"`
			} `json:"params"`
		} `json:"generics"`
		Header struct {
			IsConst  bool `json:"is_const"`
			IsUnsafe bool `json:"is_unsafe"`
			IsAsync  bool `json:"is_async"`
		} `json:"header"`
	}
	if err := json.Unmarshal(fnData, &fn); err != nil {
		return ""
	}

	var b strings.Builder

	if fn.Header.IsConst {
		b.WriteString("const ")
	}
	if fn.Header.IsUnsafe {
		b.WriteString("unsafe ")
	}
	if fn.Header.IsAsync {
		b.WriteString("async ")
	}

	b.WriteString("fn ")
	b.WriteString(name)

	var genericNames []string
	for _, p := range fn.Generics.Params {
		if p.Name != "" && !strings.HasPrefix(p.Name, "impl ") {
			genericNames = append(genericNames, p.Name)
		}
	}
	if len(genericNames) > 0 {
		b.WriteString("<")
		b.WriteString(strings.Join(genericNames, ", "))
		b.WriteString(">")
	}

	b.WriteString("(")
	var params []string
	for _, input := range fn.Sig.Inputs {
		var pair []json.RawMessage
		if err := json.Unmarshal(input, &pair); err != nil || len(pair) < 2 {
			continue
		}
		var paramName string
		json.Unmarshal(pair[0], &paramName)

		if paramName == "self" {
			params = append(params, selfShorthand(pair[1]))
			continue
		}
		params = append(params, paramName+": "+FormatTypeShort(pair[1]))
	}
	if fn.Sig.IsCVariadic {
		params = append(params, "...")
	}
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(")")

	if ret := FormatTypeShort(fn.Sig.Output); ret != "" {
		b.WriteString(" -> ")
		b.WriteString(ret)
	}

	return b.String()
}

// selfShorthand converts a rustdoc self-parameter type to Rust shorthand:
// {"generic": "Self"} → "self", a borrowed ref of Self → "&self" or
// "&mut self", with any lifetime preserved.
func selfShorthand(typeJSON json.RawMessage) string {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(typeJSON, &outer); err != nil {
		return "self"
	}
	if _, ok := outer["generic"]; ok {
		return "self"
	}
	if br, ok := outer["borrowed_ref"]; ok {
		var r struct {
			Lifetime  *string `json:"lifetime"`
			IsMutable bool    `json:"is_mutable"`
		}
		json.Unmarshal(br, &r)
		prefix := "&"
		if r.Lifetime != nil && *r.Lifetime != "" {
			prefix += *r.Lifetime + " "
		}
		if r.IsMutable {
			return prefix + "mut self"
		}
		return prefix + "self"
	}
	return "self: " + FormatTypeShort(typeJSON)
}
