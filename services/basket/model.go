package basket

// BasketItem carries identity and price only: everything else about a product
// is looked up in the catalog when needed.
type BasketItem struct {
	ID    string `json:"id"`
	Price int    `json:"price"`
}
