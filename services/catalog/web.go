package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/services/catalog/catalogevents"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.publisher.CreateTopic(c, catalogevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", catalogevents.TopicName, err)
	}

	router.HandleFunc("/api/products", s.listProductsPage()).Methods("GET")
	router.HandleFunc("/api/products/{uid}", s.getProductPage()).Methods("GET")
	router.HandleFunc("/api/products/{index}/selection", s.selectProductPage()).Methods("PUT")
	router.HandleFunc("/api/catalog/refresh", s.refreshPage()).Methods("POST")

	return nil
}

type productListResponse struct {
	Total int       `json:"total"`
	Items []Product `json:"items"`
}

func (s *service) listProductsPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		responseWriter.Write(c, w, http.StatusOK, productListResponse{
			Total: s.Total(),
			Items: s.Products(),
		})
	}
}

func (s *service) getProductPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		uid := mux.Vars(r)["uid"]

		product, err := s.FetchProduct(c, uid)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *service) selectProductPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		index, err := strconv.Atoi(mux.Vars(r)["index"])
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(err))
			return
		}

		product, err := s.SelectProduct(c, index)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *service) refreshPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		err := s.Load(c)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Catalog reloaded: %d products", s.products.Len()),
		})
	}
}
