package index

import "strings"

// ItemPath is a validated, parsed item path: the library it addresses and
// the item qualifier within it. Item is empty when the path names the
// library alone.
type ItemPath struct {
	Library string
	Item    string
}

// ParsePath splits a caller-supplied item path into its library name and
// item qualifier. Dots and double colons are both accepted as segment
// separators. Empty paths, bare separators, and leading, trailing, or
// doubled separators are rejected with an *InvalidPathError.
func ParsePath(path string) (ItemPath, error) {
	if path == "" {
		return ItemPath{}, &InvalidPathError{Path: path}
	}

	segments := strings.Split(strings.ReplaceAll(path, ".", "::"), "::")
	for _, segment := range segments {
		if segment == "" {
			return ItemPath{}, &InvalidPathError{Path: path}
		}
	}

	return ItemPath{
		Library: segments[0],
		Item:    strings.Join(segments[1:], "::"),
	}, nil
}

// Resolve maps a parsed item path to the markdown file documenting it,
// relative to the library's output directory. A path with no item qualifier
// resolves to the crate overview file. Lookups use the canonical library
// spelling; the error for a missing item keeps the caller's spelling.
func Resolve(path ItemPath, meta *Metadata) (string, error) {
	if path.Item == "" {
		return "index.md", nil
	}

	key := meta.CanonicalName + "::" + path.Item
	mdPath, ok := meta.ItemMap[key]
	if !ok {
		return "", &NotFoundError{
			Path:    path.Library + "::" + path.Item,
			Library: path.Library,
		}
	}
	return mdPath, nil
}
