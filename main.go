package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/myqueue"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/basket"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/fakeshop"
	"github.com/MarcGrol/shopfront/services/order"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	shopAPI := createShopAPI(c, router, nower, uuider)

	catalogService := catalog.NewService(shopAPI, publisher)
	err = catalogService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog service: %s", err)
	}

	err = catalogService.Load(c)
	if err != nil {
		// Keep serving the empty catalog; a later refresh can still succeed
		log.Printf("Error loading catalog on startup: %s", err)
	}

	basketService := basket.NewService(catalogService, pubsub, publisher)
	err = basketService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering basket service: %s", err)
	}

	orderService := order.NewService(catalogService, shopAPI, publisher)
	err = orderService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering order service: %s", err)
	}

	startWebServerBlocking(router)
}

// createShopAPI talks to the shop configured via SHOP_API_URL, or runs the
// built-in fake shop in-process when no remote shop is configured.
func createShopAPI(c context.Context, router *mux.Router, nower mytime.Nower, uuider myuuid.UUIDer) shopapi.ShopAPI {
	shopURL := os.Getenv("SHOP_API_URL")
	if shopURL != "" {
		return shopapi.NewClient(shopURL)
	}

	productStore, _, err := mystore.New[shopapi.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	orderStore, _, err := mystore.New[fakeshop.Order](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}

	shop := fakeshop.NewService(productStore, orderStore, nower, uuider)
	err = shop.Seed(c, fakeshop.DefaultAssortment())
	if err != nil {
		log.Fatalf("Error seeding fake shop: %s", err)
	}
	err = shop.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering fake shop: %s", err)
	}

	return shop
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
