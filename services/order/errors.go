package order

import (
	"errors"
	"fmt"
)

// Rejection causes. The error message is exactly what the shopper gets to
// see, so no internals in here.
var ErrAddressMissing = errors.New("address is required")

type ItemNotFoundError struct {
	UID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %s not found", e.UID)
}

type TotalMismatchError struct {
	Expected int
	Got      int
}

func (e *TotalMismatchError) Error() string {
	return "total does not match the sum of item prices"
}
