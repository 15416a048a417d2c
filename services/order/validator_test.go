package order

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

func TestValidate(t *testing.T) {
	// products "0".."9", each priced equal to its uid
	products := map[string]catalog.Product{}
	for i := 0; i <= 9; i++ {
		uid := fmt.Sprintf("%d", i)
		products[uid] = catalog.Product{UID: uid, Name: "product " + uid, Price: i}
	}

	testCases := []struct {
		name        string
		req         shopapi.OrderRequest
		expectedErr string
	}{
		{
			name: "accepted",
			req: shopapi.OrderRequest{
				Payment: shopapi.PaymentOffline,
				Email:   "eva@example.com",
				Phone:   "+31612345678",
				Address: "Lenina 1",
				Items:   []string{"2", "5"},
				Total:   7,
			},
		},
		{
			name: "missing address wins over everything else",
			req: shopapi.OrderRequest{
				Address: "",
				Items:   []string{"99"},
				Total:   12345,
			},
			expectedErr: "address is required",
		},
		{
			name: "unknown item wins over wrong total",
			req: shopapi.OrderRequest{
				Address: "Lenina 1",
				Items:   []string{"99"},
				Total:   12345,
			},
			expectedErr: "item 99 not found",
		},
		{
			name: "first unknown item determines the message",
			req: shopapi.OrderRequest{
				Address: "Lenina 1",
				Items:   []string{"2", "77", "99"},
				Total:   2,
			},
			expectedErr: "item 77 not found",
		},
		{
			name: "duplicates each count towards the total",
			req: shopapi.OrderRequest{
				Address: "Lenina 1",
				Items:   []string{"3", "3"},
				Total:   6,
			},
		},
		{
			name: "duplicates priced once is a mismatch",
			req: shopapi.OrderRequest{
				Address: "Lenina 1",
				Items:   []string{"3", "3"},
				Total:   3,
			},
			expectedErr: "total does not match the sum of item prices",
		},
		{
			name: "empty order with zero total is acceptable",
			req: shopapi.OrderRequest{
				Address: "Lenina 1",
				Items:   []string{},
				Total:   0,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.req, products)
			if tc.expectedErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.expectedErr)
			}
		})
	}
}

func TestValidateMismatchDetails(t *testing.T) {
	products := map[string]catalog.Product{
		"3": {UID: "3", Price: 3},
	}

	err := Validate(shopapi.OrderRequest{
		Address: "Lenina 1",
		Items:   []string{"3", "3"},
		Total:   3,
	}, products)

	var mismatch *TotalMismatchError
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 6, mismatch.Expected)
	assert.Equal(t, 3, mismatch.Got)
}
