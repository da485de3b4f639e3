// Package catalog talks to the product catalog API: keyword search,
// next-best-product recommendations and review statistics.
package catalog

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/zhangshv123/walmart-recommend/internal/config"
)

// Getter is the transport the client issues requests through.
type Getter interface {
	Get(ctx context.Context, rawURL string) (string, error)
}

type Client struct {
	cfg       config.Catalog
	transport Getter
	logger    *zap.Logger
}

func NewClient(cfg config.Catalog, transport Getter, logger *zap.Logger) *Client {
	return &Client{
		cfg:       cfg,
		transport: transport,
		logger:    logger.Named("catalog"),
	}
}

func (c *Client) searchURL(term string) string {
	params := url.Values{}
	params.Set("apiKey", c.cfg.APIKey)
	params.Set("query", term)
	return c.cfg.BaseURL + "/v1/search?" + params.Encode()
}

func (c *Client) recommendURL(itemID string) string {
	params := url.Values{}
	params.Set("apiKey", c.cfg.APIKey)
	params.Set("itemId", itemID)
	return c.cfg.BaseURL + "/v1/nbp?" + params.Encode()
}

func (c *Client) reviewURL(itemID string) string {
	params := url.Values{}
	params.Set("apiKey", c.cfg.APIKey)
	params.Set("format", "json")
	return c.cfg.BaseURL + "/v1/reviews/" + url.PathEscape(itemID) + "?" + params.Encode()
}
