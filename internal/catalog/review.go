package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
)

// ReviewStatistics fetches the rating aggregate for itemID. ok is false
// when the item has no reviewStatistics at all.
func (c *Client) ReviewStatistics(ctx context.Context, itemID string) (stats domain.ReviewStatistics, ok bool, err error) {
	body, err := c.transport.Get(ctx, c.reviewURL(itemID))
	if err != nil {
		return stats, false, fmt.Errorf("reviews %s: %w", itemID, err)
	}

	var resp reviewResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return stats, false, &domain.ParseError{What: "review response", Err: err}
	}
	if resp.ReviewStatistics == nil {
		return stats, false, nil
	}

	avg, err := parseRating("averageOverallRating", resp.ReviewStatistics.AverageOverallRating)
	if err != nil {
		return stats, false, err
	}
	rng, err := parseRating("overallRatingRange", resp.ReviewStatistics.OverallRatingRange)
	if err != nil {
		return stats, false, err
	}

	return domain.ReviewStatistics{AverageOverallRating: avg, OverallRatingRange: rng}, true, nil
}

// ReviewScore is averageOverallRating / overallRatingRange, or 0 for an
// item without review statistics.
func (c *Client) ReviewScore(ctx context.Context, itemID string) (float32, error) {
	stats, ok, err := c.ReviewStatistics(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return stats.Score(), nil
}

func parseRating(field string, v text) (float32, error) {
	f, err := strconv.ParseFloat(string(v), 32)
	if err != nil {
		return 0, &domain.ParseError{What: field, Value: string(v), Err: err}
	}
	return float32(f), nil
}
