package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MarcGrol/shopfront/lib/myerrors"
)

const (
	requestTimeout = 5 * time.Second
)

// httpClient talks JSON over HTTP to a remote shop API.
type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) ShopAPI {
	return &httpClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *httpClient) ListProducts(ctx context.Context) (ProductPage, error) {
	page := ProductPage{}
	err := c.call(ctx, http.MethodGet, "/product", nil, &page)
	if err != nil {
		return ProductPage{}, err
	}

	return page, nil
}

func (c *httpClient) GetProduct(ctx context.Context, uid string) (Product, error) {
	product := Product{}
	err := c.call(ctx, http.MethodGet, fmt.Sprintf("/product/%s", uid), nil, &product)
	if err != nil {
		return Product{}, err
	}

	return product, nil
}

func (c *httpClient) PostOrder(ctx context.Context, order OrderRequest) (OrderConfirmation, error) {
	confirmation := OrderConfirmation{}
	err := c.call(ctx, http.MethodPost, "/order", order, &confirmation)
	if err != nil {
		return OrderConfirmation{}, err
	}

	return confirmation, nil
}

type errorPayload struct {
	Error string `json:"error"`
}

func (c *httpClient) call(ctx context.Context, method string, path string, reqBody any, respBody any) error {
	var reader io.Reader
	if reqBody != nil {
		jsonBytes, err := json.Marshal(reqBody)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error marshalling request for %s %s: %s", method, path, err))
		}
		reader = bytes.NewReader(jsonBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error creating request for %s %s: %s", method, path, err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		// Transport failure: the shop API could not be reached at all
		return myerrors.NewUnavailableError(fmt.Errorf("error sending %s %s: %s", method, path, err))
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= http.StatusBadRequest {
		// The shop API answers rejections with an {"error": "..."} payload
		payload := errorPayload{}
		err = json.NewDecoder(httpResp.Body).Decode(&payload)
		if err != nil || payload.Error == "" {
			return myerrors.NewUnavailableError(fmt.Errorf("unexpected status %d on %s %s", httpResp.StatusCode, method, path))
		}

		return myerrors.NewInvalidInputError(errors.New(payload.Error))
	}

	err = json.NewDecoder(httpResp.Body).Decode(respBody)
	if err != nil {
		return myerrors.NewUnavailableError(fmt.Errorf("error parsing response of %s %s: %s", method, path, err))
	}

	return nil
}
