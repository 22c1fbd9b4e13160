package markdown

import "testing"

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple_path", "std::vec::Vec", "std-vec-Vec.md"},
		{"with_generics", "std::collections::HashMap<K, V>", "std-collections-HashMap.md"},
		{"deeply_nested", "serde::de::Deserialize", "serde-de-Deserialize.md"},
		{"method", "serde::Serialize::serialize", "serde-Serialize-serialize.md"},
		{"single_segment", "MyStruct", "MyStruct.md"},
		{"complex_generics", "std::result::Result<T, E>", "std-result-Result.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	t.Parallel()

	if got := Header(1, "Title"); got != "# Title" {
		t.Errorf("got %q, want %q", got, "# Title")
	}
	if got := Header(3, "Subsection"); got != "### Subsection" {
		t.Errorf("got %q, want %q", got, "### Subsection")
	}
}

func TestCodeBlock(t *testing.T) {
	t.Parallel()

	if got := CodeBlock("let x = 42;", "rust"); got != "```rust\nlet x = 42;\n```" {
		t.Errorf("got %q", got)
	}
	if got := CodeBlock("some text", ""); got != "```\nsome text\n```" {
		t.Errorf("got %q", got)
	}
}

func TestDocumentation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"triple_slash", "/// This is documentation.\n/// Second line.", "This is documentation.\nSecond line."},
		{"double_slash", "// Single slash comment\n// Another line", "Single slash comment\nAnother line"},
		{"empty", "", ""},
		{"no_markers", "Plain documentation text", "Plain documentation text"},
		{"indented", "  leading spaces  ", "leading spaces"},
		{"intra_doc_link", "See [`Vec`](struct.Vec.html) for growable arrays.", "See `Vec` for growable arrays."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Documentation(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextActions(t *testing.T) {
	t.Parallel()

	got := NextActions([]string{"First action", "Second action"})
	want := "## Next Actions\n\n- First action\n- Second action\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := NextActions(nil); got != "" {
		t.Errorf("expected empty section, got %q", got)
	}
}
