package shopapi

import "context"

// Payment methods accepted on an order.
const (
	PaymentOffline = "offline"
	PaymentOnline  = "online"
)

// Product is the canonical product record. It is created by the shop API and
// never mutated on this side.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Price       int    `json:"price"` // in cents
}

// ProductPage is the result of listing products: the reported total need not
// equal len(Items).
type ProductPage struct {
	Total int       `json:"total"`
	Items []Product `json:"items"`
}

// OrderRequest is a submitted order: basket contents plus delivery and
// contact data. Items lists product ids in basket order, duplicates allowed.
type OrderRequest struct {
	Payment string   `json:"payment"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Total   int      `json:"total"`
	Items   []string `json:"items"`
}

// OrderConfirmation is returned for an accepted order. The ID is minted by
// the accepting side and is opaque here.
type OrderConfirmation struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}

//go:generate mockgen -source=api.go -package shopapi -destination shopapi_mock.go ShopAPI
type ShopAPI interface {
	ListProducts(c context.Context) (ProductPage, error)
	GetProduct(c context.Context, uid string) (Product, error)
	PostOrder(c context.Context, order OrderRequest) (OrderConfirmation, error)
}
