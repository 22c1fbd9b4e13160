package htmlmd

import "testing"

func TestStripReferenceLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "[foo][bar]", "foo"},
		{"surrounding_text", "see [foo][bar] here", "see foo here"},
		{"multiple", "[a][x] and [b][y]", "a and b"},
		{"empty_reference", "[foo][]", "foo"},
		{"whitespace_between", "[foo] [bar]", "foo"},
		{"plain_brackets_kept", "array[0] access", "array[0] access"},
		{"single_bracketed_kept", "[not a link]", "[not a link]"},
		{"nested_in_text", "[a[b]][c]", "a[b]"},
		{"no_brackets", "plain text", "plain text"},
		{"unterminated", "open [bracket", "open [bracket]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripReferenceLinks(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
