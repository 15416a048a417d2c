package basket

import (
	"github.com/MarcGrol/shopfront/lib/mycollection"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/services/catalog"
)

// productResolver is the part of the catalog the basket relies on: the
// authoritative uid to product mapping.
type productResolver interface {
	CanonicalSet() map[string]catalog.Product
}

type service struct {
	items      *mycollection.MutableCollection[BasketItem]
	catalog    productResolver
	subscriber mypubsub.PubSub
	publisher  mypublisher.Publisher
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(catalog productResolver, subscriber mypubsub.PubSub, publisher mypublisher.Publisher) *service {
	return &service{
		items:      mycollection.NewMutableCollection[BasketItem](),
		catalog:    catalog,
		subscriber: subscriber,
		publisher:  publisher,
		logger:     mylog.New("basket"),
	}
}
