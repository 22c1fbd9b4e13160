// Package build turns cargo doc output into a markdown corpus: it runs the
// documentation build, converts every item page, and writes the corpus plus
// its metadata sidecar.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rustdocmd/docmd/internal/cargo"
	"github.com/rustdocmd/docmd/internal/config"
	"github.com/rustdocmd/docmd/internal/htmlmd"
	"github.com/rustdocmd/docmd/internal/index"
)

// ItemFailure records one item that failed to convert.
type ItemFailure struct {
	Path string
	Err  error
}

// Summary reports the outcome of a build.
type Summary struct {
	Library   index.Library
	OutputDir string
	Converted int
	Failed    []ItemFailure
}

func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Built documentation for %s (%d items)", s.Library, s.Converted)
	if len(s.Failed) > 0 {
		fmt.Fprintf(&b, ", %d failed:", len(s.Failed))
		for _, f := range s.Failed {
			fmt.Fprintf(&b, "\n  %s: %v", f.Path, f.Err)
		}
	}
	return b.String()
}

// Run builds the markdown corpus for one dependency crate.
func Run(ctx context.Context, crateName string, cfg *config.Config) (*Summary, error) {
	meta, err := cargo.LoadMetadata(ctx)
	if err != nil {
		return nil, err
	}
	if !meta.HasDependency(crateName) {
		return nil, fmt.Errorf(
			"crate %q is not an installed dependency.\n\nAvailable crates: %s\n\nOnly installed dependencies can be built. Add the crate to Cargo.toml as a dependency first",
			crateName, strings.Join(meta.DependencyNames(), ", "))
	}

	docDir, err := cargo.Doc(ctx, crateName)
	if err != nil {
		return nil, err
	}
	slog.Debug("cargo doc output", "dir", docDir)

	lib := index.NewLibrary(crateName)
	outDir := OutputDir(meta.TargetDirectory, lib, cfg)

	return convertTree(ctx, docDir, outDir, lib, cfg)
}

// OutputDir returns the corpus location for a library: the configured
// override, or <target>/docmd/<canonical> next to the cargo doc output.
func OutputDir(targetDir string, lib index.Library, cfg *config.Config) string {
	if cfg != nil && cfg.Output.Dir != "" {
		return filepath.Join(cfg.Output.Dir, lib.Canonical)
	}
	return filepath.Join(targetDir, "docmd", lib.Canonical)
}

// convertTree converts the documentation tree under docDir and writes the
// corpus to outDir.
func convertTree(ctx context.Context, docDir, outDir string, lib index.Library, cfg *config.Config) (*Summary, error) {
	indexHTML, err := readDocFile(docDir, "index.html")
	if err != nil {
		return nil, err
	}
	allHTML, err := readDocFile(docDir, "all.html")
	if err != nil {
		return nil, err
	}

	mappings, err := index.Extract(allHTML)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	indexMD, err := htmlmd.Convert(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("converting index.html: %w", err)
	}
	if err := writeDocFile(outDir, "index.md", indexMD); err != nil {
		return nil, err
	}

	allMD, err := htmlmd.Convert(allHTML)
	if err != nil {
		return nil, fmt.Errorf("converting all.html: %w", err)
	}
	if err := writeDocFile(outDir, "all.md", FormatAllMarkdown(lib.Canonical, allMD)); err != nil {
		return nil, err
	}

	summary := &Summary{Library: lib, OutputDir: outDir}
	keepGoing := cfg == nil || cfg.Build.KeepGoing
	failed := make(map[string]bool)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(cfg))

	for name, htmlPath := range mappings {
		fullPath := lib.Canonical + "::" + name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := convertItem(docDir, outDir, htmlPath)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if !keepGoing {
					return fmt.Errorf("converting %s: %w", fullPath, err)
				}
				slog.Warn("item conversion failed", "item", fullPath, "error", err)
				summary.Failed = append(summary.Failed, ItemFailure{Path: fullPath, Err: err})
				failed[name] = true
				return nil
			}
			summary.Converted++
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if summary.Converted == 0 {
		return nil, fmt.Errorf("no items converted for %s: all %d items failed", lib, len(summary.Failed))
	}

	// The sidecar only maps items whose markdown actually exists; failed
	// items resolve to NotFoundError instead of a dangling file path.
	for name := range failed {
		delete(mappings, name)
	}
	itemMap := index.BuildItemMap(lib, mappings)
	if err := index.NewMetadata(lib, itemMap).Save(outDir); err != nil {
		return nil, err
	}

	slog.Info("built documentation", "library", lib.Canonical, "items", summary.Converted, "failed", len(summary.Failed))
	return summary, nil
}

// convertItem converts a single item page to markdown. Each item owns
// exactly one output file.
func convertItem(docDir, outDir, htmlPath string) error {
	content, err := os.ReadFile(filepath.Join(docDir, htmlPath))
	if err != nil {
		return fmt.Errorf("reading item page: %w", err)
	}

	md, err := htmlmd.Convert(string(content))
	if err != nil {
		return err
	}

	return writeDocFile(outDir, index.MarkdownPath(htmlPath), md)
}

func workerCount(cfg *config.Config) int {
	if cfg != nil && cfg.Build.Parallelism > 0 {
		return cfg.Build.Parallelism
	}
	return runtime.NumCPU()
}

func readDocFile(dir, name string) (string, error) {
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("reading %s from cargo doc output: %w", name, err)
	}
	return string(content), nil
}

func writeDocFile(dir, relPath, content string) error {
	fullPath := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	return nil
}
