// Package docs renders rustdoc JSON type-model dumps to markdown directly,
// without the HTML intermediate. It parses the crate index, walks each item's
// kind-specific payload, and emits one markdown document per item.
package docs

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Crate is the top-level structure of a rustdoc JSON dump.
type Crate struct {
	Root           int                      `json:"root"`
	CrateVersion   *string                  `json:"crate_version"`
	Index          map[string]Item          `json:"index"`
	Paths          map[string]Summary       `json:"paths"`
	ExternalCrates map[string]ExternalCrate `json:"external_crates"`
	FormatVersion  int                      `json:"format_version"`
}

// ExternalCrate identifies a dependency crate by name.
type ExternalCrate struct {
	Name        string `json:"name"`
	HTMLRootURL string `json:"html_root_url"`
}

// Item is a single item in the crate index. Inner holds the kind-specific
// payload keyed by the kind name; unwrapInner extracts it.
type Item struct {
	ID         int             `json:"id"`
	CrateID    int             `json:"crate_id"`
	Name       *string         `json:"name"`
	Visibility json.RawMessage `json:"visibility"`
	Docs       *string         `json:"docs"`
	Links      map[string]int  `json:"links"`
	Inner      json.RawMessage `json:"inner"`
}

// Summary provides the full path and kind for an item.
type Summary struct {
	CrateID int      `json:"crate_id"`
	Path    []string `json:"path"`
	Kind    string   `json:"kind"`
}

// Item looks up an item by numeric id. Index keys are decimal strings.
func (c *Crate) Item(id int) (*Item, bool) {
	item, ok := c.Index[strconv.Itoa(id)]
	if !ok {
		return nil, false
	}
	return &item, true
}

// RootItem returns the crate's root module item.
func (c *Crate) RootItem() (*Item, bool) {
	return c.Item(c.Root)
}

// RootName returns the crate's name as recorded on its root module.
func (c *Crate) RootName() string {
	root, ok := c.RootItem()
	if !ok || root.Name == nil {
		return "unknown"
	}
	return *root.Name
}

// RelativePath returns an item's module-qualified path within the crate,
// like "de::Error". The paths table's first segment is the crate name and is
// dropped; items without a paths entry fall back to their bare name.
func (c *Crate) RelativePath(id string, item *Item) string {
	if summary, ok := c.Paths[id]; ok && len(summary.Path) > 1 {
		return strings.Join(summary.Path[1:], "::")
	}
	return item.DisplayName()
}

// DisplayName returns the item's name, or a placeholder for unnamed items.
func (i *Item) DisplayName() string {
	if i.Name == nil {
		return "Anonymous"
	}
	return *i.Name
}

// DocText returns the item's documentation text, or "".
func (i *Item) DocText() string {
	if i.Docs == nil {
		return ""
	}
	return *i.Docs
}

// IsPublic reports whether the item has public visibility. Visibility is
// either a bare string ("public", "default", "crate") or an object for
// restricted visibility.
func (i *Item) IsPublic() bool {
	var s string
	if err := json.Unmarshal(i.Visibility, &s); err != nil {
		return false
	}
	return s == "public"
}

// VisibilityLabel returns the annotation rendered next to fields:
// "(pub)", "(pub(crate))", "(pub restricted)", or "" for default-private.
func (i *Item) VisibilityLabel() string {
	var s string
	if err := json.Unmarshal(i.Visibility, &s); err != nil {
		// Object form means restricted visibility.
		if len(i.Visibility) > 0 {
			return "(pub restricted)"
		}
		return ""
	}
	switch s {
	case "public":
		return "(pub)"
	case "crate":
		return "(pub(crate))"
	default:
		return ""
	}
}
