package productinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"sync"
	"time"

	"github.com/vantran/anishop/internal/domain/model"
)

// ErrLookupFailed indicates product details could not be resolved for a link.
// Callers treat it as a soft failure: the order flow continues without a preview.
var ErrLookupFailed = errors.New("product lookup failed")

// Client exposes operations to resolve marketplace product details.
type Client interface {
	Lookup(ctx context.Context, link string) (*model.ProductInfo, error)
}

// HTTPClient implements Client via an external scraping service.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.Mutex
	cache map[string]model.ProductInfo
}

// response mirrors JSON payload from the lookup service.
type response struct {
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// NewHTTPClient creates HTTP lookup client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse lookup url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("lookup url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: make(map[string]model.ProductInfo),
	}, nil
}

// Lookup resolves product details for a marketplace link.
// Results are cached per link so repeated previews of the same product
// do not hit the upstream service again.
func (c *HTTPClient) Lookup(ctx context.Context, link string) (*model.ProductInfo, error) {
	if link == "" {
		return nil, ErrLookupFailed
	}

	c.mu.Lock()
	if cached, ok := c.cache[link]; ok {
		c.mu.Unlock()
		info := cached
		return &info, nil
	}
	c.mu.Unlock()

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/product-info")
	query := endpoint.Query()
	query.Set("url", link)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("product lookup failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, ErrLookupFailed
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	var data response
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	info := model.ProductInfo{ProductName: data.ProductName, Price: data.Price, ImageURL: data.ImageURL}
	c.mu.Lock()
	c.cache[link] = info
	c.mu.Unlock()
	return &info, nil
}

type disabledClient struct{}

func (disabledClient) Lookup(context.Context, string) (*model.ProductInfo, error) {
	return nil, ErrLookupFailed
}

// Disabled returns a client that always reports lookup failure.
// Used when no lookup service address is configured.
func Disabled() Client {
	return disabledClient{}
}
