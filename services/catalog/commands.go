package catalog

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/catalog/catalogevents"
)

// Load fetches the canonical product set from the shop API and replaces the
// catalog contents in one go. When the shop API fails, the previously loaded
// catalog stays as it was.
func (s *service) Load(c context.Context) error {
	s.logger.Log(c, "", mylog.SeverityInfo, "Loading catalog from shop API")

	err := s.products.Load(c)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error loading catalog: %s", err)
		return err
	}

	err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.CatalogLoaded{
		Total: s.products.Total(),
		Count: s.products.Len(),
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Catalog loaded: %d products (total reported: %d)", s.products.Len(), s.products.Total())

	return nil
}

func (s *service) Products() []Product {
	return s.products.Items()
}

func (s *service) Total() int {
	return s.products.Total()
}

// CanonicalSet returns the authoritative uid to product mapping, as loaded
// from the shop API. Order validation is run against this set.
func (s *service) CanonicalSet() map[string]Product {
	items := s.products.Items()

	result := make(map[string]Product, len(items))
	for _, product := range items {
		result[product.UID] = product
	}

	return result
}

// FetchProduct asks the shop API for the details of a single product.
func (s *service) FetchProduct(c context.Context, uid string) (Product, error) {
	s.logger.Log(c, uid, mylog.SeverityInfo, "Fetch details of product %s", uid)

	raw, err := s.shopAPI.GetProduct(c, uid)
	if err != nil {
		return Product{}, err
	}

	return NewProduct(raw), nil
}

// SelectProduct marks the product at index as the one to show in detail. It
// does not mutate the catalog: a detail-view collaborator picks up the event.
func (s *service) SelectProduct(c context.Context, index int) (Product, error) {
	product, err := s.products.Get(index)
	if err != nil {
		return Product{}, myerrors.NewInvalidInputErrorf("no product at index %d", index)
	}

	s.logger.Log(c, product.UID, mylog.SeverityInfo, "Product %s selected", product.UID)

	err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductSelected{
		ProductUID: product.UID,
	})
	if err != nil {
		return Product{}, myerrors.NewInternalError(err)
	}

	return product, nil
}
