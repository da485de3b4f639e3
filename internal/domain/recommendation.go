package domain

type ScoredRecommendation struct {
	ItemID string  `json:"item_id"`
	Name   string  `json:"name"`
	Score  float32 `json:"score"`
}

type RecommendationMeta struct {
	SearchTerm   string `json:"search_term"`
	GeneratedAt  string `json:"generated_at"`
	TotalCount   int    `json:"total_count"`
	SkippedCount int    `json:"skipped_count"`
}

// RecommendationResult is the outcome of one pipeline run. Seed is nil when
// the search produced nothing to recommend from.
type RecommendationResult struct {
	Seed            *Item
	Recommendations []ScoredRecommendation
	Skipped         int
}
