package fakeshop

import (
	"context"
	"fmt"
	"sort"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/order"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

func (s *service) ListProducts(c context.Context) (shopapi.ProductPage, error) {
	products, err := s.productStore.List(c)
	if err != nil {
		return shopapi.ProductPage{}, myerrors.NewInternalError(err)
	}

	// TODO sort in database
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return shopapi.ProductPage{
		Total: len(products),
		Items: products,
	}, nil
}

func (s *service) GetProduct(c context.Context, uid string) (shopapi.Product, error) {
	product, found, err := s.productStore.Get(c, uid)
	if err != nil {
		return shopapi.Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return shopapi.Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", uid))
	}

	return product, nil
}

// PostOrder is the authoritative acceptance check: the same validation the
// client runs, applied against the shop's own assortment.
func (s *service) PostOrder(c context.Context, req shopapi.OrderRequest) (shopapi.OrderConfirmation, error) {
	products, err := s.productStore.List(c)
	if err != nil {
		return shopapi.OrderConfirmation{}, myerrors.NewInternalError(err)
	}

	productsByUID := make(map[string]catalog.Product, len(products))
	for _, product := range products {
		productsByUID[product.ID] = catalog.NewProduct(product)
	}

	err = order.Validate(req, productsByUID)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Order rejected: %s", err)
		return shopapi.OrderConfirmation{}, myerrors.NewInvalidInputError(err)
	}

	orderUID := s.uuider.Create()
	accepted := Order{
		UID:       orderUID,
		CreatedAt: s.nower.Now(),
		Payment:   req.Payment,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Total:     req.Total,
		Items:     req.Items,
	}

	err = s.orderStore.Put(c, orderUID, accepted)
	if err != nil {
		return shopapi.OrderConfirmation{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Accepted order %s (total %d)", orderUID, req.Total)

	return shopapi.OrderConfirmation{
		ID:    orderUID,
		Total: req.Total,
	}, nil
}
