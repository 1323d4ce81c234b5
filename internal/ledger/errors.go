package ledger

import (
	"errors"
	"fmt"
)

// ErrEmptySale is returned when a sale request resolves to zero usable line
// items. Nothing is committed and no stock is touched.
var ErrEmptySale = errors.New("sale has no resolvable items")

// ValidationError reports a malformed line in a sale request.
type ValidationError struct {
	ProductID string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid sale line for product %q: %s", e.ProductID, e.Reason)
}
