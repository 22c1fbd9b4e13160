package cargo

import (
	"strings"
	"testing"
)

func TestDocOutputDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		output  string
		want    string
		wantErr string
	}{
		{
			name:   "extracts_directory_path",
			output: "  Documenting serde v1.0.193 (/path/to/serde)\n   Generated /home/user/project/target/doc/serde/index.html\n",
			want:   "/home/user/project/target/doc/serde",
		},
		{
			name:   "hyphens_become_underscores_in_path",
			output: "  Documenting rustdoc-types v0.57.0\n   Generated /home/user/project/target/doc/rustdoc_types/index.html\n",
			want:   "/home/user/project/target/doc/rustdoc_types",
		},
		{
			name:   "multiple_lines",
			output: "line 1\nline 2\n   Generated /path/to/doc/index.html\nline 4\n",
			want:   "/path/to/doc",
		},
		{
			name:    "missing_generated_line",
			output:  "  Documenting serde v1.0.193\n  some other output\n",
			wantErr: "could not find 'Generated' line",
		},
		{
			name:    "generated_file_without_parent",
			output:  "Generated index.html\n",
			wantErr: "no parent directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DocOutputDir(tt.output)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, got)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DocOutputDir: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocOutputDirBoundsPreview(t *testing.T) {
	t.Parallel()

	_, err := DocOutputDir(strings.Repeat("x", 2000))
	if err == nil {
		t.Fatal("expected error for output without Generated line")
	}
	if len(err.Error()) > 700 {
		t.Errorf("error message not bounded: %d bytes", len(err.Error()))
	}
	if !strings.HasSuffix(err.Error(), "...") {
		t.Errorf("truncated preview should end with ellipsis: %q", err.Error())
	}
}

func TestMetadataDependencies(t *testing.T) {
	t.Parallel()

	meta := &Metadata{
		Packages: []Package{{
			Name: "myproject",
			Dependencies: []Dependency{
				{Name: "serde"},
				{Name: "rustdoc-types"},
			},
		}},
	}

	if !meta.HasDependency("serde") {
		t.Error("serde should be a dependency")
	}
	if meta.HasDependency("tokio") {
		t.Error("tokio should not be a dependency")
	}
	if got := strings.Join(meta.DependencyNames(), ","); got != "serde,rustdoc-types" {
		t.Errorf("DependencyNames() = %q", got)
	}
}
