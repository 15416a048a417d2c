package basket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myevents"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/services/basket/basketevents"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/order/orderevents"
)

type fakeCatalog struct {
	products map[string]catalog.Product
}

func (f fakeCatalog) CanonicalSet() map[string]catalog.Product {
	return f.products
}

func TestBasketService(t *testing.T) {

	t.Run("Empty basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/basket", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"total": 0`)
	})

	t.Run("Add item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, publisher, _ := setup(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), basketevents.TopicName, basketevents.ItemAdded{ProductUID: "1", Price: 4000}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/items", strings.NewReader(`{"id":"1"}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"id": "1"`)
		assert.Contains(t, got, `"price": 4000`)
	})

	t.Run("Add unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/items", strings.NewReader(`{"id":"99"}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
		assert.Contains(t, response.Body.String(), "product with uid 99 not found")
	})

	t.Run("Same item twice counts twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, publisher, sut := setup(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), basketevents.TopicName, gomock.Any()).Return(nil).Times(2)
		_, err := sut.addItem(ctx, "2")
		assert.NoError(t, err)
		_, err = sut.addItem(ctx, "2")
		assert.NoError(t, err)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/basket", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"total": 1000`)
		assert.Equal(t, 2, len(sut.Items()))
	})

	t.Run("Remove item shifts later items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, publisher, sut := setup(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), basketevents.TopicName, gomock.Any()).Return(nil).Times(2)
		_, err := sut.addItem(ctx, "1")
		assert.NoError(t, err)
		_, err = sut.addItem(ctx, "2")
		assert.NoError(t, err)

		publisher.EXPECT().Publish(gomock.Any(), basketevents.TopicName, basketevents.ItemRemoved{ProductUID: "1"}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/api/basket/items/0", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		items := sut.Items()
		assert.Equal(t, 1, len(items))
		assert.Equal(t, "2", items[0].ID)
	})

	t.Run("Remove item out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/api/basket/items/3", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "no basket item at index 3")
	})

	t.Run("Order placed clears the basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, publisher, sut := setup(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), basketevents.TopicName, gomock.Any()).Return(nil)
		_, err := sut.addItem(ctx, "1")
		assert.NoError(t, err)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/event", pushRequestBody(t, orderevents.OrderPlaced{OrderUID: "o-1", Total: 4000}))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Equal(t, 0, len(sut.Items()))
		assert.Equal(t, 0, sut.BasketTotal())
	})
}

func pushRequestBody(t *testing.T, event myevents.Event) *bytes.Buffer {
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	envelope, err := json.Marshal(myevents.EventEnvelope{
		Topic:         orderevents.TopicName,
		EventTypeName: event.GetEventTypeName(),
		AggregateUID:  event.GetAggregateName(),
		EventPayload:  string(payload),
	})
	assert.NoError(t, err)

	body, err := json.Marshal(myevents.PushRequest{
		Message: myevents.PushMessage{Data: envelope},
	})
	assert.NoError(t, err)

	return bytes.NewBuffer(body)
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *mypublisher.MockPublisher, *service) {
	c := context.TODO()
	resolver := fakeCatalog{products: map[string]catalog.Product{
		"1": {UID: "1", Name: "shoes", Price: 4000},
		"2": {UID: "2", Name: "socks", Price: 500},
	}}
	subscriber := mypubsub.NewMockPubSub(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewService(resolver, subscriber, publisher)
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints()
	publisher.EXPECT().CreateTopic(c, basketevents.TopicName).Return(nil)
	subscriber.EXPECT().CreateTopic(c, orderevents.TopicName).Return(nil)
	subscriber.EXPECT().Subscribe(c, orderevents.TopicName, "http://localhost:8080/api/basket/event").Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, publisher, sut
}
