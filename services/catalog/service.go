package catalog

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/mycollection"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

type service struct {
	products  *mycollection.LoadCollection[shopapi.Product, Product]
	shopAPI   shopapi.ShopAPI
	publisher mypublisher.Publisher
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(api shopapi.ShopAPI, publisher mypublisher.Publisher) *service {
	return &service{
		products:  mycollection.NewLoadCollection[shopapi.Product](productLoader(api), NewProduct),
		shopAPI:   api,
		publisher: publisher,
		logger:    mylog.New("catalog"),
	}
}

func productLoader(api shopapi.ShopAPI) mycollection.Loader[shopapi.Product] {
	return func(c context.Context) (mycollection.LoadResult[shopapi.Product], error) {
		page, err := api.ListProducts(c)
		if err != nil {
			return mycollection.LoadResult[shopapi.Product]{}, err
		}

		return mycollection.LoadResult[shopapi.Product]{
			Total: page.Total,
			Items: page.Items,
		}, nil
	}
}
