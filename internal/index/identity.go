// Package index builds and queries the item-path cross-reference for a
// library's documentation: the mapping from full dotted item paths to the
// markdown files that document them.
package index

import "strings"

// Library pairs the two spellings of a library's name. The declared name is
// what the user wrote in their manifest and may contain hyphens; the
// canonical name is what rustdoc uses on disk, with hyphens normalized to
// underscores. Filesystem lookups and item-path prefixes always use the
// canonical spelling, while user-facing messages keep the declared one.
type Library struct {
	Declared  string
	Canonical string
}

// NewLibrary derives a Library identity from a declared dependency name.
func NewLibrary(declared string) Library {
	return Library{
		Declared:  declared,
		Canonical: strings.ReplaceAll(declared, "-", "_"),
	}
}

func (l Library) String() string {
	return l.Declared
}
