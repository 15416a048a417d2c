package order

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/order/orderevents"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

// productCatalog is the part of the catalog the order flow relies on: the
// authoritative uid to product mapping to validate against.
type productCatalog interface {
	CanonicalSet() map[string]catalog.Product
}

type service struct {
	catalog   productCatalog
	shopAPI   shopapi.ShopAPI
	publisher mypublisher.Publisher
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(catalog productCatalog, api shopapi.ShopAPI, publisher mypublisher.Publisher) *service {
	return &service{
		catalog:   catalog,
		shopAPI:   api,
		publisher: publisher,
		logger:    mylog.New("order"),
	}
}

// SubmitOrder validates the order against the local catalog first, so obvious
// mistakes are rejected without a round-trip. The shop API remains the
// authority: its verdict decides, and its confirmation is returned as-is.
func (s *service) SubmitOrder(c context.Context, req shopapi.OrderRequest) (shopapi.OrderConfirmation, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Submitting order with %d items (total %d)", len(req.Items), req.Total)

	err := Validate(req, s.catalog.CanonicalSet())
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Order rejected before submission: %s", err)
		return shopapi.OrderConfirmation{}, myerrors.NewInvalidInputError(err)
	}

	confirmation, err := s.shopAPI.PostOrder(c, req)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error posting order: %s", err)
		return shopapi.OrderConfirmation{}, err
	}

	err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderPlaced{
		OrderUID: confirmation.ID,
		Total:    confirmation.Total,
	})
	if err != nil {
		return shopapi.OrderConfirmation{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, confirmation.ID, mylog.SeverityInfo, "Order %s placed (total %d)", confirmation.ID, confirmation.Total)

	return confirmation, nil
}
