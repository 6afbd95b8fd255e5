package compose

import "fmt"

// MissingSourceError reports an img element with no usable source string, or
// an svg element that serialized to nothing. It aborts the whole compilation;
// no partial tree is ever returned.
type MissingSourceError struct {
	Tag string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("compose: <%s> element has no source", e.Tag)
}
