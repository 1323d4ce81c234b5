package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a product id absent
// from the catalog, so HTTP handlers can respond with 404.
var ErrNotFound = errors.New("product not found")

// ValidationError reports malformed input to a catalog mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
