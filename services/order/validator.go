package order

import (
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

// Validate cross-checks a submitted order against the canonical product set.
// The checks run in a fixed order and stop at the first failure, so a request
// with several problems is only ever told about the most actionable one:
//  1. a missing address,
//  2. the first listed item unknown to the catalog,
//  3. a total that is not the exact sum of the listed item prices, where a
//     product listed twice counts twice.
// A nil result means the order is acceptable.
func Validate(req shopapi.OrderRequest, productsByUID map[string]catalog.Product) error {
	if req.Address == "" {
		return ErrAddressMissing
	}

	for _, uid := range req.Items {
		if _, exists := productsByUID[uid]; !exists {
			return &ItemNotFoundError{UID: uid}
		}
	}

	// Every uid is known at this point, so the sum is well-defined
	expectedTotal := 0
	for _, uid := range req.Items {
		expectedTotal += productsByUID[uid].Price
	}
	if expectedTotal != req.Total {
		return &TotalMismatchError{Expected: expectedTotal, Got: req.Total}
	}

	return nil
}
