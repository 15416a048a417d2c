package basket

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/basket/basketevents"
)

// addItem appends the product to the basket. The same product may be added any
// number of times, each occurrence a distinct line with its own position.
func (s *service) addItem(c context.Context, productUID string) (BasketItem, error) {
	product, found := s.catalog.CanonicalSet()[productUID]
	if !found {
		return BasketItem{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
	}

	item := BasketItem{
		ID:    product.UID,
		Price: product.Price,
	}
	s.items.AddItem(item)

	s.logger.Log(c, productUID, mylog.SeverityInfo, "Added product %s to basket (%d items)", productUID, s.items.Len())

	err := s.publisher.Publish(c, basketevents.TopicName, basketevents.ItemAdded{
		ProductUID: item.ID,
		Price:      item.Price,
	})
	if err != nil {
		return BasketItem{}, myerrors.NewInternalError(err)
	}

	return item, nil
}

// removeItem deletes exactly the line at index, shifting later lines one
// position earlier.
func (s *service) removeItem(c context.Context, index int) error {
	item, err := s.items.Get(index)
	if err != nil {
		return myerrors.NewInvalidInputErrorf("no basket item at index %d", index)
	}

	err = s.items.Delete(index)
	if err != nil {
		return myerrors.NewInvalidInputErrorf("no basket item at index %d", index)
	}

	s.logger.Log(c, item.ID, mylog.SeverityInfo, "Removed product %s from basket (%d items left)", item.ID, s.items.Len())

	err = s.publisher.Publish(c, basketevents.TopicName, basketevents.ItemRemoved{
		ProductUID: item.ID,
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

func (s *service) Items() []BasketItem {
	return s.items.Items()
}

// BasketTotal is the derived sum of prices over the current items. It is not
// the collection's source-reported total, which stays zero for a basket.
func (s *service) BasketTotal() int {
	total := 0
	for _, item := range s.items.Items() {
		total += item.Price
	}

	return total
}
