package basket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/services/basket/basketevents"
	"github.com/MarcGrol/shopfront/services/order/orderevents"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.publisher.CreateTopic(c, basketevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", basketevents.TopicName, err)
	}

	err = s.Subscribe(c)
	if err != nil {
		return fmt.Errorf("error subscribing to order events: %s", err)
	}

	router.HandleFunc("/api/basket", s.basketPage()).Methods("GET")
	router.HandleFunc("/api/basket/items", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/basket/items/{index}", s.removeItemPage()).Methods("DELETE")

	// received via pubsub
	router.HandleFunc("/api/basket/event", s.eventPage()).Methods("POST")

	return nil
}

type basketResponse struct {
	Total int          `json:"total"`
	Items []BasketItem `json:"items"`
}

type addItemRequest struct {
	ID string `json:"id"`
}

func (s *service) basketPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		responseWriter.Write(c, w, http.StatusOK, basketResponse{
			Total: s.BasketTotal(),
			Items: s.Items(),
		})
	}
}

func (s *service) addItemPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		req := addItemRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		item, err := s.addItem(c, req.ID)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, item)
	}
}

func (s *service) removeItemPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		index, err := strconv.Atoi(mux.Vars(r)["index"])
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(err))
			return
		}

		err = s.removeItem(c, index)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, basketResponse{
			Total: s.BasketTotal(),
			Items: s.Items(),
		})
	}
}

func (s *service) eventPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		err := orderevents.DispatchEvent(c, r.Body, s)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Event processed",
		})
	}
}
