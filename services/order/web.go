package order

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/order/orderevents"
	"github.com/MarcGrol/shopfront/services/order/orderform"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.publisher.CreateTopic(c, orderevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", orderevents.TopicName, err)
	}

	router.HandleFunc("/api/order", s.submitOrderPage()).Methods("POST")

	return nil
}

// orderSubmission is the urlencoded payload as posted by the order page.
type orderSubmission struct {
	Payment string   `form:"payment"`
	Email   string   `form:"email"`
	Phone   string   `form:"phone"`
	Address string   `form:"address"`
	Total   int      `form:"total"`
	Items   []string `form:"items"`
}

func newSubmissionFromRequest(r *http.Request) (orderSubmission, error) {
	err := r.ParseForm()
	if err != nil {
		return orderSubmission{}, myerrors.NewInvalidInputError(err)
	}

	return newSubmissionFromValues(r.Form)
}

func newSubmissionFromValues(values url.Values) (orderSubmission, error) {
	submission := orderSubmission{}
	err := formcodec.NewDecoder().Decode(&submission, values)
	if err != nil {
		return submission, fmt.Errorf("error decoding form: %s", err)
	}

	return submission, nil
}

// toOrderRequest runs the submission through the standard delivery and contact
// forms and collects the field values into the wire-level order. The boolean
// tells whether every field was valid; values are collected either way.
func (sub orderSubmission) toOrderRequest() (shopapi.OrderRequest, bool) {
	delivery := orderform.NewDeliveryForm(sub.Address, sub.Payment)
	contact := orderform.NewContactForm(sub.Email, sub.Phone)

	deliveryValues := delivery.Values()
	contactValues := contact.Values()

	return shopapi.OrderRequest{
		Payment: deliveryValues["payment"],
		Email:   contactValues["email"],
		Phone:   contactValues["phone"],
		Address: deliveryValues["address"],
		Total:   sub.Total,
		Items:   sub.Items,
	}, delivery.IsValid() && contact.IsValid()
}

func (s *service) submitOrderPage() http.HandlerFunc {
	responseWriter := myhttp.NewWriter(s.logger)

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		submission, err := newSubmissionFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		req, formsValid := submission.toOrderRequest()
		if !formsValid {
			s.logger.Log(c, "", mylog.SeverityWarn, "Order form incomplete, validation will decide")
		}

		confirmation, err := s.SubmitOrder(c, req)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, confirmation)
	}
}
