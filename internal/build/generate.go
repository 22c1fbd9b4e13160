package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/rustdocmd/docmd/internal/cargo"
	"github.com/rustdocmd/docmd/internal/config"
	"github.com/rustdocmd/docmd/internal/docs"
	"github.com/rustdocmd/docmd/internal/index"
	"github.com/rustdocmd/docmd/internal/markdown"
)

// Generate builds a markdown corpus from a rustdoc JSON type-model dump
// instead of the HTML tree. The dump is produced with a nightly toolchain
// and cached compressed, so repeat runs skip the compiler.
func Generate(ctx context.Context, crateName, outputDir string, cfg *config.Config) (*Summary, error) {
	lib := index.NewLibrary(crateName)

	crate, err := loadCrate(ctx, lib, cfg)
	if err != nil {
		return nil, err
	}

	if outputDir == "" {
		cargoMeta, err := cargo.LoadMetadata(ctx)
		if err != nil {
			return nil, err
		}
		outputDir = OutputDir(cargoMeta.TargetDirectory, lib, cfg)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	summary := &Summary{Library: lib, OutputDir: outputDir}
	keepGoing := cfg == nil || cfg.Build.KeepGoing
	itemMap := make(map[string]string)
	rootKey := strconv.Itoa(crate.Root)

	for _, key := range sortedIndexKeys(crate) {
		if key == rootKey {
			continue
		}
		item := crate.Index[key]
		if item.CrateID != 0 || item.Name == nil || !item.IsPublic() {
			continue
		}
		// Fields, variants, and impl blocks are rendered inline on their
		// parent item's page.
		switch docs.ItemKind(&item) {
		case "struct_field", "variant", "impl":
			continue
		}

		// Qualify by module path so same-named items in different modules
		// get distinct files and map keys.
		relPath := crate.RelativePath(key, &item)
		fullPath := lib.Canonical + "::" + relPath
		filename := markdown.Filename(relPath)

		content, err := docs.RenderItem(&item, crate)
		if err == nil {
			err = writeDocFile(outputDir, filename, content)
		}
		if err != nil {
			if !keepGoing {
				return nil, fmt.Errorf("rendering %s: %w", fullPath, err)
			}
			slog.Warn("item rendering failed", "item", fullPath, "error", err)
			summary.Failed = append(summary.Failed, ItemFailure{Path: fullPath, Err: err})
			continue
		}
		itemMap[fullPath] = filename
		summary.Converted++
	}

	if summary.Converted == 0 {
		return nil, fmt.Errorf("no items rendered for %s", lib)
	}

	if err := writeDocFile(outputDir, "index.md", docs.RenderCrateIndex(crate)); err != nil {
		return nil, err
	}
	if err := index.NewMetadata(lib, itemMap).Save(outputDir); err != nil {
		return nil, err
	}

	slog.Info("generated documentation", "library", lib.Canonical, "items", summary.Converted, "failed", len(summary.Failed))
	return summary, nil
}

// loadCrate returns the parsed rustdoc JSON for a library, from the
// compressed cache when present.
func loadCrate(ctx context.Context, lib index.Library, cfg *config.Config) (*docs.Crate, error) {
	if docs.HasCrateCache(lib.Canonical) {
		crate, err := docs.LoadCrateCache(lib.Canonical)
		if err == nil {
			slog.Debug("using cached rustdoc JSON", "library", lib.Canonical)
			return crate, nil
		}
		slog.Warn("discarding unreadable rustdoc JSON cache", "library", lib.Canonical, "error", err)
	}

	toolchain := "nightly"
	if cfg != nil && cfg.Cargo.Toolchain != "" {
		toolchain = cfg.Cargo.Toolchain
	}

	jsonPath, err := cargo.GenerateJSON(ctx, lib.Declared, toolchain)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("reading rustdoc JSON: %w", err)
	}
	crate, err := docs.Parse(raw)
	if err != nil {
		return nil, err
	}

	if err := docs.SaveCrateCache(raw, lib.Canonical); err != nil {
		slog.Warn("caching rustdoc JSON failed", "library", lib.Canonical, "error", err)
	}
	return crate, nil
}

func sortedIndexKeys(crate *docs.Crate) []string {
	keys := make([]string, 0, len(crate.Index))
	for key := range crate.Index {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
