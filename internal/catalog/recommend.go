package catalog

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
)

// Recommend returns at most limit next-best-product candidates for itemID.
// The endpoint answers with a bare JSON array.
func (c *Client) Recommend(ctx context.Context, itemID string, limit int) ([]domain.Candidate, error) {
	body, err := c.transport.Get(ctx, c.recommendURL(itemID))
	if err != nil {
		return nil, fmt.Errorf("recommend %s: %w", itemID, err)
	}

	var raw []wireItem
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, &domain.ParseError{What: "recommend response", Err: err}
	}
	if len(raw) == 0 {
		return nil, domain.ErrRecommendNotFound
	}

	n := min(len(raw), max(limit, 0))
	candidates := make([]domain.Candidate, 0, n)
	for _, it := range raw[:n] {
		candidates = append(candidates, domain.Candidate{ItemID: string(it.ItemID), Name: string(it.Name)})
	}

	c.logger.Debug("recommend completed",
		zap.String("item_id", itemID),
		zap.Int("returned", len(raw)),
		zap.Int("kept", len(candidates)),
	)
	return candidates, nil
}
