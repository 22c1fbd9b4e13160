package docs

import (
	"encoding/json"
	"testing"
)

func TestFormatType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "primitive",
			raw:  `{"primitive":"u32"}`,
			want: "u32",
		},
		{
			name: "generic",
			raw:  `{"generic":"T"}`,
			want: "T",
		},
		{
			name: "resolved_path",
			raw:  `{"resolved_path":{"path":"std::vec::Vec","id":0,"args":null}}`,
			want: "std::vec::Vec",
		},
		{
			name: "resolved_path_with_args",
			raw:  `{"resolved_path":{"path":"std::vec::Vec","id":0,"args":{"angle_bracketed":{"args":[{"type":{"primitive":"u8"}}],"constraints":[]}}}}`,
			want: "std::vec::Vec<u8>",
		},
		{
			name: "tuple",
			raw:  `{"tuple":[{"primitive":"i32"},{"primitive":"String"}]}`,
			want: "(i32, String)",
		},
		{
			name: "slice",
			raw:  `{"slice":{"primitive":"u8"}}`,
			want: "[u8]",
		},
		{
			name: "array",
			raw:  `{"array":{"type":{"primitive":"u8"},"len":"32"}}`,
			want: "[u8; 32]",
		},
		{
			name: "raw_pointer_mut",
			raw:  `{"raw_pointer":{"is_mutable":true,"type":{"primitive":"u8"}}}`,
			want: "*mut u8",
		},
		{
			name: "raw_pointer_const",
			raw:  `{"raw_pointer":{"is_mutable":false,"type":{"primitive":"u8"}}}`,
			want: "*const u8",
		},
		{
			name: "borrowed_ref",
			raw:  `{"borrowed_ref":{"lifetime":null,"is_mutable":false,"type":{"primitive":"str"}}}`,
			want: "&str",
		},
		{
			name: "borrowed_ref_mut_lifetime",
			raw:  `{"borrowed_ref":{"lifetime":"'a","is_mutable":true,"type":{"primitive":"str"}}}`,
			want: "&'a mut str",
		},
		{
			name: "function_pointer",
			raw:  `{"function_pointer":{"sig":{"inputs":[["x",{"primitive":"i32"}]],"output":{"primitive":"bool"},"is_c_variadic":false},"header":{}}}`,
			want: "fn(i32) -> bool",
		},
		{
			name: "impl_trait",
			raw:  `{"impl_trait":[{"trait_bound":{"trait":{"path":"Iterator","id":1,"args":null},"modifier":"none"}}]}`,
			want: "impl Iterator",
		},
		{
			name: "dyn_trait",
			raw:  `{"dyn_trait":{"traits":[{"trait":{"path":"std::fmt::Debug","id":2,"args":null}}],"lifetime":"'static"}}`,
			want: "dyn std::fmt::Debug + 'static",
		},
		{
			name: "infer",
			raw:  `"infer"`,
			want: "_",
		},
		{
			name: "qualified_path",
			raw:  `{"qualified_path":{"name":"Item","args":null,"self_type":{"generic":"Self"},"trait":{"path":"Iterator","id":3,"args":null}}}`,
			want: "<Self as Iterator>::Item",
		},
		{
			name: "nested_generic_args",
			raw:  `{"resolved_path":{"path":"std::collections::HashMap","id":0,"args":{"angle_bracketed":{"args":[{"type":{"primitive":"String"}},{"type":{"resolved_path":{"path":"std::vec::Vec","id":0,"args":{"angle_bracketed":{"args":[{"type":{"primitive":"u8"}}],"constraints":[]}}}}}],"constraints":[]}}}}`,
			want: "std::collections::HashMap<String, std::vec::Vec<u8>>",
		},
		{
			name: "lifetime_arg",
			raw:  `{"resolved_path":{"path":"Cow","id":0,"args":{"angle_bracketed":{"args":[{"lifetime":"'a"},{"type":{"primitive":"str"}}],"constraints":[]}}}}`,
			want: "Cow<'a, str>",
		},
		{
			name: "const_arg",
			raw:  `{"resolved_path":{"path":"ArrayVec","id":0,"args":{"angle_bracketed":{"args":[{"const":{"expr":"16"}}],"constraints":[]}}}}`,
			want: "ArrayVec<16>",
		},
		{
			name: "parenthesized_args",
			raw:  `{"impl_trait":[{"trait_bound":{"trait":{"path":"Fn","id":4,"args":{"parenthesized":{"inputs":[{"primitive":"i32"}],"output":{"primitive":"bool"}}}},"modifier":"none"}}]}`,
			want: "impl Fn(i32) -> bool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatType(json.RawMessage(tt.raw))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTypeShort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "path_shortened",
			raw:  `{"resolved_path":{"path":"core::result::Result","id":0,"args":null}}`,
			want: "Result",
		},
		{
			name: "path_args_shortened",
			raw:  `{"resolved_path":{"path":"core::option::Option","id":0,"args":{"angle_bracketed":{"args":[{"type":{"resolved_path":{"path":"serde_json::Value","id":1,"args":null}}}],"constraints":[]}}}}`,
			want: "Option<Value>",
		},
		{
			name: "primitive_unchanged",
			raw:  `{"primitive":"usize"}`,
			want: "usize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTypeShort(json.RawMessage(tt.raw))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTypeSubstitution(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"tuple":[{"generic":"T"},{"generic":"E"}]}`)
	got := formatType(raw, formatOpts{subst: map[string]string{"E": "Error"}})
	if want := "(T, Error)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
