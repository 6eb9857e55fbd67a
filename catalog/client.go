package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Niharikabutola/ECO-CART/models"
)

// ErrUpstreamUnavailable means the catalog provider could not be reached or
// answered with a non-2xx status. Callers surface it as service-unavailable;
// the client never retries on its own.
var ErrUpstreamUnavailable = errors.New("catalog provider unavailable")

const (
	productsCacheKey   = "catalog:products"
	productCacheKeyFmt = "catalog:product:%d"
)

// Client fetches catalog records from the upstream provider and enriches
// them into products.
type Client struct {
	baseURL  string
	http     *http.Client
	enricher *Enricher
	cache    Cache
	cacheTTL time.Duration
}

func NewClient(baseURL string, httpClient *http.Client, enricher *Enricher, cache Cache, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     httpClient,
		enricher: enricher,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Products lists the full catalog, enriched. A record the provider returns
// malformed is skipped and logged; its siblings are still enriched.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	body, err := c.fetch(ctx, "/products", productsCacheKey)
	if err != nil {
		return nil, err
	}

	var raws []Raw
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("%w: decoding product list: %v", ErrUpstreamUnavailable, err)
	}

	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		p, err := c.enricher.Enrich(raw)
		if err != nil {
			log.Printf("catalog: skipping record: %v", err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Product resolves and enriches a single record. Unlike listing, a malformed
// record fails the call.
func (c *Client) Product(ctx context.Context, id int) (models.Product, error) {
	body, err := c.fetch(ctx, "/products/"+strconv.Itoa(id), fmt.Sprintf(productCacheKeyFmt, id))
	if err != nil {
		return models.Product{}, err
	}

	var raw Raw
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Product{}, fmt.Errorf("%w: product %d: %v", ErrMalformedRecord, id, err)
	}
	p, err := c.enricher.Enrich(raw)
	if err != nil {
		return models.Product{}, fmt.Errorf("product %d: %w", id, err)
	}
	return p, nil
}

// fetch returns the raw response body for path, consulting the cache first.
func (c *Client) fetch(ctx context.Context, path, cacheKey string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, cacheKey); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUpstreamUnavailable, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUpstreamUnavailable, err)
	}

	if c.cache != nil {
		c.cache.Set(ctx, cacheKey, body, c.cacheTTL)
	}
	return body, nil
}
