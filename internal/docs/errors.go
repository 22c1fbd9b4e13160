package docs

import "fmt"

// KindMismatchError reports that a renderer was invoked against an item of
// the wrong kind. This is a programming defect, not a data error.
type KindMismatchError struct {
	Want string
	Got  string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("expected %s item, found %s", e.Want, e.Got)
}
