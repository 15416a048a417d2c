package fakeshop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

// RegisterEndpoints exposes the shop over HTTP on the same paths the real
// shop uses, so the http client can be pointed at it unchanged.
func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/product", s.listProductsPage()).Methods("GET")
	router.HandleFunc("/product/{uid}", s.getProductPage()).Methods("GET")
	router.HandleFunc("/order", s.postOrderPage()).Methods("POST")

	return nil
}

func (s *service) listProductsPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		page, err := s.ListProducts(c)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, page)
	}
}

func (s *service) getProductPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		uid := mux.Vars(r)["uid"]

		product, err := s.GetProduct(c, uid)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *service) postOrderPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		req := shopapi.OrderRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		confirmation, err := s.PostOrder(c, req)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, confirmation)
	}
}
