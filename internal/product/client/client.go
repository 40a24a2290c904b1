package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ridloal/product-console/internal/platform/logger"
	"github.com/ridloal/product-console/internal/platform/metrics"
	"github.com/ridloal/product-console/internal/product/domain"
)

// ResourcePath is the collection endpoint of the Product API.
const ResourcePath = "/api/products"

const maxCreateBodyBytes = 4 << 10

type ProductServiceClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Metrics    *metrics.ClientMetrics
}

func NewProductServiceClient(baseURL string, timeout time.Duration, m *metrics.ClientMetrics) *ProductServiceClient {
	return &ProductServiceClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Metrics: m,
	}
}

func (c *ProductServiceClient) collectionURL() string {
	return c.BaseURL + ResourcePath
}

func (c *ProductServiceClient) itemURL(id string) string {
	return c.BaseURL + ResourcePath + "/" + url.PathEscape(id)
}

func (c *ProductServiceClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	resp, err := c.do(ctx, "list", http.MethodGet, c.collectionURL(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var bodies []productBody
	if err := json.NewDecoder(resp.Body).Decode(&bodies); err != nil {
		logger.Error("ProductClient.ListProducts: JSON decode failed", err)
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	products := make([]domain.Product, 0, len(bodies))
	for _, b := range bodies {
		products = append(products, b.toDomain())
	}
	return products, nil
}

// CreateProduct returns the id reported by the API, or "" when the body carries none.
// Both a plain-text id and a JSON product body are understood.
func (c *ProductServiceClient) CreateProduct(ctx context.Context, req domain.ProductRequest) (string, error) {
	resp, err := c.do(ctx, "create", http.MethodPost, c.collectionURL(), req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxCreateBodyBytes))
	if err != nil {
		// Produk sudah dibuat; hanya id yang tidak terbaca
		logger.Warn("ProductClient.CreateProduct: reading body failed: %v", err)
		return "", nil
	}
	return createdID(resp.Header.Get("Content-Type"), raw), nil
}

func createdID(contentType string, raw []byte) string {
	if !isJSON(contentType) {
		return strings.TrimSpace(string(raw))
	}
	var created struct {
		ID productID `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err == nil && created.ID != "" {
		return string(created.ID)
	}
	// A bare JSON string or number is an id too.
	var bare productID
	if err := json.Unmarshal(raw, &bare); err == nil {
		return string(bare)
	}
	return ""
}

func (c *ProductServiceClient) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	resp, err := c.do(ctx, "get", http.MethodGet, c.itemURL(id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body productBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Error("ProductClient.GetProduct: JSON decode failed", err)
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	product := body.toDomain()
	return &product, nil
}

func (c *ProductServiceClient) UpdateProduct(ctx context.Context, id string, req domain.ProductRequest) error {
	resp, err := c.do(ctx, "update", http.MethodPut, c.itemURL(id), req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *ProductServiceClient) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// do sends one request. A non-2xx response is consumed and returned as *APIError;
// on success the caller owns resp.Body.
func (c *ProductServiceClient) do(ctx context.Context, operation, method, reqURL string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			logger.Error(fmt.Sprintf("ProductClient.%s: Marshal failed", operation), err)
			return nil, fmt.Errorf("failed to marshal %s request: %w", operation, err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		logger.Error(fmt.Sprintf("ProductClient.%s: NewRequest failed", operation), err)
		return nil, fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Metrics.Observe(operation, 0, time.Since(start))
		logger.Error(fmt.Sprintf("ProductClient.%s: HTTPClient.Do failed", operation), err)
		return nil, fmt.Errorf("%w: failed to call product service: %v", ErrUnavailable, err)
	}
	c.Metrics.Observe(operation, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := ParseErrorBody(resp)
		logger.Warn("ProductClient.%s: product service returned status %d: %s", operation, resp.StatusCode, apiErr.Message)
		return nil, apiErr
	}
	return resp, nil
}
