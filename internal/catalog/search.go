package catalog

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
)

// Search returns the catalog items matching term, in catalog order. An
// absent or empty items array is domain.ErrSearchNotFound.
func (c *Client) Search(ctx context.Context, term string) ([]domain.Item, error) {
	body, err := c.transport.Get(ctx, c.searchURL(term))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}

	var resp searchResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, &domain.ParseError{What: "search response", Err: err}
	}
	if len(resp.Items) == 0 {
		return nil, domain.ErrSearchNotFound
	}

	items := make([]domain.Item, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, domain.Item{ItemID: string(it.ItemID), Name: string(it.Name)})
	}

	c.logger.Debug("search completed",
		zap.String("term", term),
		zap.Int("total_results", resp.TotalResults),
		zap.Int("items", len(items)),
	)
	return items, nil
}
