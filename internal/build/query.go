package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rustdocmd/docmd/internal/cargo"
	"github.com/rustdocmd/docmd/internal/config"
	"github.com/rustdocmd/docmd/internal/index"
)

// Show returns the markdown document for one item path, building the
// library's corpus first when it does not exist yet. A bare library name
// returns the crate overview.
func Show(ctx context.Context, itemPath string, cfg *config.Config) (string, error) {
	parsed, err := index.ParsePath(itemPath)
	if err != nil {
		return "", err
	}

	lib := index.NewLibrary(parsed.Library)
	outDir, meta, err := ensureCorpus(ctx, lib, cfg)
	if err != nil {
		return "", err
	}

	rel, err := index.Resolve(parsed, meta)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(filepath.Join(outDir, rel))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rel, err)
	}
	return string(content), nil
}

// List returns the full item listing for a library, building the corpus
// first when it does not exist yet.
func List(ctx context.Context, library string, cfg *config.Config) (string, error) {
	parsed, err := index.ParsePath(library)
	if err != nil {
		return "", err
	}
	if parsed.Item != "" {
		return "", fmt.Errorf("list takes a library name, not an item path: %q", library)
	}

	lib := index.NewLibrary(parsed.Library)
	outDir, _, err := ensureCorpus(ctx, lib, cfg)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(filepath.Join(outDir, "all.md"))
	if err != nil {
		return "", fmt.Errorf("reading item listing: %w", err)
	}
	return string(content), nil
}

// ensureCorpus locates the library's corpus, running a build when the
// metadata sidecar is absent.
func ensureCorpus(ctx context.Context, lib index.Library, cfg *config.Config) (string, *index.Metadata, error) {
	cargoMeta, err := cargo.LoadMetadata(ctx)
	if err != nil {
		return "", nil, err
	}
	outDir := OutputDir(cargoMeta.TargetDirectory, lib, cfg)

	meta, err := index.LoadMetadata(outDir)
	if err == nil {
		return outDir, meta, nil
	}

	slog.Info("corpus not built yet, building now", "library", lib.Declared)
	if _, err := Run(ctx, lib.Declared, cfg); err != nil {
		return "", nil, err
	}

	meta, err = index.LoadMetadata(outDir)
	if err != nil {
		return "", nil, fmt.Errorf("corpus metadata missing after build: %w", err)
	}
	return outDir, meta, nil
}
