package fakeshop

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

// service is a self-contained stand-in for the real shop: it serves the same
// API, keeps its assortment and accepted orders in a store and applies the
// same order checks the real shop would.
type service struct {
	productStore mystore.Store[shopapi.Product]
	orderStore   mystore.Store[Order]
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(productStore mystore.Store[shopapi.Product], orderStore mystore.Store[Order], nower mytime.Nower, uuider myuuid.UUIDer) *service {
	return &service{
		productStore: productStore,
		orderStore:   orderStore,
		nower:        nower,
		uuider:       uuider,
		logger:       mylog.New("fakeshop"),
	}
}

// Seed stocks the shop with the given assortment.
func (s *service) Seed(c context.Context, products []shopapi.Product) error {
	for _, product := range products {
		err := s.productStore.Put(c, product.ID, product)
		if err != nil {
			return err
		}
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Seeded shop with %d products", len(products))

	return nil
}

// DefaultAssortment is the product set the shop starts with when nothing else
// is seeded. Prices are in cents.
func DefaultAssortment() []shopapi.Product {
	return []shopapi.Product{
		{ID: "1", Name: "shoes", Category: "clothing", Image: "/images/shoes.jpg", Description: "Sturdy leather shoes", Price: 4000},
		{ID: "2", Name: "socks", Category: "clothing", Image: "/images/socks.jpg", Description: "Woolen socks", Price: 500},
		{ID: "3", Name: "cap", Category: "clothing", Image: "/images/cap.jpg", Description: "Baseball cap", Price: 1500},
		{ID: "4", Name: "mug", Category: "kitchen", Image: "/images/mug.jpg", Description: "Ceramic mug", Price: 800},
		{ID: "5", Name: "kettle", Category: "kitchen", Image: "/images/kettle.jpg", Description: "Electric kettle", Price: 3500},
	}
}
