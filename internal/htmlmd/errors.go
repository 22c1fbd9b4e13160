package htmlmd

import (
	"fmt"
	"strings"
)

// previewLimit bounds how much of an offending document an error message may
// quote.
const previewLimit = 200

// ElementNotFoundError reports that a required element was absent from an
// HTML document, with a bounded preview of the document for diagnosis.
type ElementNotFoundError struct {
	Selector string
	Preview  string
}

// NewElementNotFoundError builds an ElementNotFoundError quoting a bounded
// preview of the offending document.
func NewElementNotFoundError(selector, doc string) *ElementNotFoundError {
	return &ElementNotFoundError{Selector: selector, Preview: preview(doc)}
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf(
		"HTML document does not contain a <%s> element; this may indicate invalid rustdoc output (document starts with %q)",
		e.Selector, e.Preview,
	)
}

// preview trims a document down to an error-message-sized excerpt.
func preview(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= previewLimit {
		return s
	}
	cut := previewLimit
	for cut > 0 && s[cut]&0xc0 == 0x80 {
		cut--
	}
	return s[:cut] + "..."
}
