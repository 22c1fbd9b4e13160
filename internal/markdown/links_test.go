package markdown

import "testing"

func TestStripIntraDocLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "inline_relative",
			in:   "See [`Vec`](struct.Vec.html) for details.",
			want: "See `Vec` for details.",
		},
		{
			name: "external_preserved",
			in:   "See [the book](https://doc.rust-lang.org/book/) for details.",
			want: "See [the book](https://doc.rust-lang.org/book/) for details.",
		},
		{
			name: "reference_style",
			in:   "See [Vec][vec] for details.\n\n[vec]: struct.Vec.html",
			want: "See Vec for details.\n",
		},
		{
			name: "shortcut_reference",
			in:   "Use [foo][] here.\n\n[foo]: fn.foo.html",
			want: "Use foo here.\n",
		},
		{
			name: "no_links",
			in:   "Plain documentation with no links at all.",
			want: "Plain documentation with no links at all.",
		},
		{
			name: "multiple_inline",
			in:   "[a](x.html) and [b](y.html)",
			want: "a and b",
		},
		{
			name: "emphasized_label",
			in:   "The [*deprecated*](fn.old.html) form still works.",
			want: "The *deprecated* form still works.",
		},
		{
			name: "link_like_text_in_code_span",
			in:   "Write `[a](b.html)` literally.",
			want: "Write `[a](b.html)` literally.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripIntraDocLinks(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
