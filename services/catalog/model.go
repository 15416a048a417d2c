package catalog

import "github.com/MarcGrol/shopfront/services/shopapi"

// Product is the catalog-side product record. Identity and price are what
// the rest of the system relies on; the other fields are display-only.
type Product struct {
	UID         string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// NewProduct constructs a catalog product out of the raw shop API record.
func NewProduct(raw shopapi.Product) Product {
	return Product{
		UID:         raw.ID,
		Name:        raw.Name,
		Category:    raw.Category,
		Image:       raw.Image,
		Description: raw.Description,
		Price:       raw.Price,
	}
}
