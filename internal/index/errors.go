package index

import "fmt"

// InvalidPathError reports a malformed item path: empty, bare separators, or
// a leading/trailing/doubled separator. These are rejected before any
// resolution is attempted.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf(
		"invalid item path %q: expected <library> or <library>::<item> (e.g. 'serde' or 'serde::Error')",
		e.Path,
	)
}

// NotFoundError reports that a well-formed item path does not name any
// documented item in the library's index.
type NotFoundError struct {
	Path    string
	Library string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"could not resolve item path %q: check the item exists with `docmd list %s`, or rebuild with `docmd build %s`",
		e.Path, e.Library, e.Library,
	)
}
