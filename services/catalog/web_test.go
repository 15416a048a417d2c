package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/services/catalog/catalogevents"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

var (
	rawShoes = shopapi.Product{ID: "1", Name: "shoes", Category: "clothing", Price: 4000}
	rawSocks = shopapi.Product{ID: "2", Name: "socks", Category: "clothing", Price: 500}
)

func TestCatalogService(t *testing.T) {

	t.Run("List products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, api, publisher, sut := setup(t, ctrl)

		// given
		api.EXPECT().ListProducts(gomock.Any()).Return(shopapi.ProductPage{
			Total: 2,
			Items: []shopapi.Product{rawShoes, rawSocks},
		}, nil)
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.CatalogLoaded{Total: 2, Count: 2}).Return(nil)
		err := sut.Load(ctx)
		assert.NoError(t, err)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"total": 2`)
		assert.Contains(t, got, `"name": "shoes"`)
		assert.Contains(t, got, `"name": "socks"`)
	})

	t.Run("List products before load returns the empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"total": 0`)
	})

	t.Run("Failed load keeps the previous catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, api, publisher, sut := setup(t, ctrl)

		// given
		api.EXPECT().ListProducts(gomock.Any()).Return(shopapi.ProductPage{
			Total: 1,
			Items: []shopapi.Product{rawShoes},
		}, nil)
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, gomock.Any()).Return(nil)
		err := sut.Load(ctx)
		assert.NoError(t, err)

		api.EXPECT().ListProducts(gomock.Any()).Return(shopapi.ProductPage{}, assert.AnError)
		err = sut.Load(ctx)
		assert.Error(t, err)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"total": 1`)
		assert.Contains(t, got, `"name": "shoes"`)
	})

	t.Run("Get product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, api, _, _ := setup(t, ctrl)

		// given
		api.EXPECT().GetProduct(gomock.Any(), "1").Return(rawShoes, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products/1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"id": "1"`)
		assert.Contains(t, got, `"name": "shoes"`)
	})

	t.Run("Select product publishes the selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, api, publisher, sut := setup(t, ctrl)

		// given
		api.EXPECT().ListProducts(gomock.Any()).Return(shopapi.ProductPage{
			Total: 2,
			Items: []shopapi.Product{rawShoes, rawSocks},
		}, nil)
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.CatalogLoaded{Total: 2, Count: 2}).Return(nil)
		err := sut.Load(ctx)
		assert.NoError(t, err)

		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.ProductSelected{ProductUID: "2"}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/products/1/selection", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"name": "socks"`)
	})

	t.Run("Select product out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/products/5/selection", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "no product at index 5")
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *shopapi.MockShopAPI, *mypublisher.MockPublisher, *service) {
	c := context.TODO()
	api := shopapi.NewMockShopAPI(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewService(api, publisher)
	router := mux.NewRouter()

	// Called by RegisterEndpoints()
	publisher.EXPECT().CreateTopic(c, catalogevents.TopicName).Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, api, publisher, sut
}
