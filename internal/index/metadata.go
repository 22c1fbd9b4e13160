package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MetadataFile is the sidecar written next to a library's markdown output.
const MetadataFile = "metadata.json"

// Metadata is the persisted record of a library's documentation build: both
// name spellings and the item map from full paths to markdown files.
type Metadata struct {
	DeclaredName  string            `json:"declared_name"`
	CanonicalName string            `json:"canonical_name"`
	ItemMap       map[string]string `json:"item_map"`
}

// NewMetadata assembles the sidecar record for a built library.
func NewMetadata(lib Library, itemMap map[string]string) *Metadata {
	return &Metadata{
		DeclaredName:  lib.Declared,
		CanonicalName: lib.Canonical,
		ItemMap:       itemMap,
	}
}

// Library reconstructs the library identity recorded in the sidecar.
func (m *Metadata) Library() Library {
	return Library{Declared: m.DeclaredName, Canonical: m.CanonicalName}
}

// Save writes the sidecar into dir.
func (m *Metadata) Save(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	path := filepath.Join(dir, MetadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadMetadata reads the sidecar from dir.
func LoadMetadata(dir string) (*Metadata, error) {
	path := filepath.Join(dir, MetadataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &m, nil
}
