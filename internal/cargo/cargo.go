// Package cargo shells out to the cargo toolchain: project metadata
// queries, HTML documentation builds, and rustdoc JSON generation.
package cargo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

// Metadata is the subset of `cargo metadata` output the tool consumes.
type Metadata struct {
	Packages        []Package `json:"packages"`
	TargetDirectory string    `json:"target_directory"`
}

// Package is one workspace package from cargo metadata.
type Package struct {
	Name         string       `json:"name"`
	Dependencies []Dependency `json:"dependencies"`
}

// Dependency names a single declared dependency.
type Dependency struct {
	Name string `json:"name"`
}

// DependencyNames returns the declared dependency names of the first
// workspace package.
func (m *Metadata) DependencyNames() []string {
	if len(m.Packages) == 0 {
		return nil
	}
	names := make([]string, 0, len(m.Packages[0].Dependencies))
	for _, dep := range m.Packages[0].Dependencies {
		names = append(names, dep.Name)
	}
	return names
}

// HasDependency reports whether the project declares the named dependency.
func (m *Metadata) HasDependency(name string) bool {
	for _, dep := range m.DependencyNames() {
		if dep == name {
			return true
		}
	}
	return false
}

// LoadMetadata runs `cargo metadata --no-deps --format-version 1` in the
// current directory and parses its JSON output.
func LoadMetadata(ctx context.Context) (*Metadata, error) {
	cmd := exec.CommandContext(ctx, "cargo", "metadata", "--no-deps", "--format-version", "1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running cargo metadata: %w\n%s", err, stderr.String())
	}

	var meta Metadata
	if err := json.Unmarshal(stdout.Bytes(), &meta); err != nil {
		return nil, fmt.Errorf("parsing cargo metadata JSON: %w", err)
	}
	return &meta, nil
}

// Doc runs `cargo doc --package <crate> --no-deps` and returns the
// directory containing the generated HTML.
func Doc(ctx context.Context, crateName string) (string, error) {
	slog.Debug("running cargo doc", "crate", crateName)

	cmd := exec.CommandContext(ctx, "cargo", "doc", "--package", crateName, "--no-deps")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running cargo doc for %q: %w\n%s", crateName, err, stderr.String())
	}

	// Cargo reports the generated index.html on stderr.
	return DocOutputDir(stderr.String())
}

const outputPreviewLimit = 500

// DocOutputDir parses cargo doc output for the "Generated " line and
// returns the parent directory of the reported index.html.
func DocOutputDir(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Generated ")
		if !ok {
			continue
		}
		htmlPath := strings.TrimSpace(rest)
		dir := filepath.Dir(htmlPath)
		if dir == "." || dir == string(filepath.Separator) {
			return "", fmt.Errorf("cargo doc reported a generated file with no parent directory: %s", htmlPath)
		}
		return dir, nil
	}

	preview := output
	if len(preview) > outputPreviewLimit {
		preview = preview[:outputPreviewLimit] + "..."
	}
	return "", fmt.Errorf("could not find 'Generated' line in cargo doc output. Output preview:\n%s", preview)
}

// GenerateJSON produces a rustdoc JSON dump for the crate using the given
// toolchain and returns the path of the generated file. Rustdoc writes the
// dump to <target>/doc/<lib>.json with the library's canonical name.
func GenerateJSON(ctx context.Context, crateName, toolchain string) (string, error) {
	meta, err := LoadMetadata(ctx)
	if err != nil {
		return "", err
	}

	slog.Debug("generating rustdoc JSON", "crate", crateName, "toolchain", toolchain)

	cmd := exec.CommandContext(ctx, "cargo", "+"+toolchain, "rustdoc",
		"--package", crateName, "--lib", "--",
		"-Z", "unstable-options", "--output-format", "json")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("generating rustdoc JSON for %q: %w\n%s", crateName, err, stderr.String())
	}

	lib := strings.ReplaceAll(crateName, "-", "_")
	return filepath.Join(meta.TargetDirectory, "doc", lib+".json"), nil
}
