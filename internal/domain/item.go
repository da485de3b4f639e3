package domain

// Item is a single catalog search hit.
type Item struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// Candidate is a next-best-product suggestion before it has been scored.
type Candidate struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// ReviewStatistics holds the aggregate rating for an item.
type ReviewStatistics struct {
	AverageOverallRating float32
	OverallRatingRange   float32
}

// Score normalizes the average rating against the rating range.
// The result is not clamped; a malformed range can push it past 1.
func (r ReviewStatistics) Score() float32 {
	return r.AverageOverallRating / r.OverallRatingRange
}
