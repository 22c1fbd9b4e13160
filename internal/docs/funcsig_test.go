package docs

import (
	"encoding/json"
	"testing"
)

func TestRenderFnSig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fnName string
		fnData string
		want   string
	}{
		{
			name:   "simple_no_params",
			fnName: "foo",
			fnData: `{"sig":{"inputs":[],"output":null},"generics":{"params":[]},"header":{}}`,
			want:   "fn foo()",
		},
		{
			name:   "with_return",
			fnName: "bar",
			fnData: `{"sig":{"inputs":[],"output":{"primitive":"bool"}},"generics":{"params":[]},"header":{}}`,
			want:   "fn bar() -> bool",
		},
		{
			name:   "with_param",
			fnName: "greet",
			fnData: `{"sig":{"inputs":[["name",{"primitive":"str"}]],"output":null},"generics":{"params":[]},"header":{}}`,
			want:   "fn greet(name: str)",
		},
		{
			name:   "with_generics",
			fnName: "identity",
			fnData: `{"sig":{"inputs":[["val",{"generic":"T"}]],"output":{"generic":"T"}},"generics":{"params":[{"name":"T","kind":{}}]},"header":{}}`,
			want:   "fn identity<T>(val: T) -> T",
		},
		{
			name:   "const_unsafe_async",
			fnName: "danger",
			fnData: `{"sig":{"inputs":[],"output":null},"generics":{"params":[]},"header":{"is_const":true,"is_unsafe":true,"is_async":true}}`,
			want:   "const unsafe async fn danger()",
		},
		{
			name:   "self_borrowed",
			fnName: "method",
			fnData: `{"sig":{"inputs":[["self",{"borrowed_ref":{"lifetime":null,"is_mutable":false,"type":{"generic":"Self"}}}]],"output":null},"generics":{"params":[]},"header":{}}`,
			want:   "fn method(&self)",
		},
		{
			name:   "self_mut",
			fnName: "mutate",
			fnData: `{"sig":{"inputs":[["self",{"borrowed_ref":{"lifetime":null,"is_mutable":true,"type":{"generic":"Self"}}}]],"output":null},"generics":{"params":[]},"header":{}}`,
			want:   "fn mutate(&mut self)",
		},
		{
			name:   "short_return_path",
			fnName: "build",
			fnData: `{"sig":{"inputs":[["self",{"generic":"Self"}]],"output":{"resolved_path":{"path":"serde_json::Value","id":1,"args":null}}},"generics":{"params":[]},"header":{}}`,
			want:   "fn build(self) -> Value",
		},
		{
			name:   "c_variadic",
			fnName: "printf",
			fnData: `{"sig":{"inputs":[["fmt",{"primitive":"str"}]],"output":null,"is_c_variadic":true},"generics":{"params":[]},"header":{"is_unsafe":true}}`,
			want:   "unsafe fn printf(fmt: str, ...)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderFnSig(tt.fnName, json.RawMessage(tt.fnData))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelfShorthand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "owned",
			raw:  `{"generic":"Self"}`,
			want: "self",
		},
		{
			name: "borrowed",
			raw:  `{"borrowed_ref":{"lifetime":null,"is_mutable":false,"type":{"generic":"Self"}}}`,
			want: "&self",
		},
		{
			name: "borrowed_mut",
			raw:  `{"borrowed_ref":{"lifetime":null,"is_mutable":true,"type":{"generic":"Self"}}}`,
			want: "&mut self",
		},
		{
			name: "borrowed_with_lifetime",
			raw:  `{"borrowed_ref":{"lifetime":"'a","is_mutable":false,"type":{"generic":"Self"}}}`,
			want: "&'a self",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selfShorthand(json.RawMessage(tt.raw))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
