package catalogevents

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myevents"
)

const (
	TopicName           = "catalog"
	catalogLoadedName   = TopicName + ".loaded"
	productSelectedName = TopicName + ".product.selected"
)

// CatalogEventService is what a detail-view collaborator implements to get
// notified about catalog activity.
type CatalogEventService interface {
	Subscribe(c context.Context) error
	OnCatalogLoaded(c context.Context, topic string, event CatalogLoaded) error
	OnProductSelected(c context.Context, topic string, event ProductSelected) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CatalogEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case catalogLoadedName:
		{
			event := CatalogLoaded{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnCatalogLoaded(c, envelope.Topic, event)
		}
	case productSelectedName:
		{
			event := ProductSelected{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnProductSelected(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotFoundError(errors.New(envelope.EventTypeName))
	}
}

type CatalogLoaded struct {
	Total int
	Count int
}

func (e CatalogLoaded) GetEventTypeName() string {
	return catalogLoadedName
}

func (e CatalogLoaded) GetAggregateName() string {
	return TopicName
}

type ProductSelected struct {
	ProductUID string
}

func (e ProductSelected) GetEventTypeName() string {
	return productSelectedName
}

func (e ProductSelected) GetAggregateName() string {
	return e.ProductUID
}
