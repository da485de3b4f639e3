package model

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
)

// ReviewScorer yields the normalized review score of one catalog item.
type ReviewScorer interface {
	ReviewScore(ctx context.Context, itemID string) (float32, error)
}

type Ranker struct {
	reviews ReviewScorer
	logger  *zap.Logger
}

func NewRanker(reviews ReviewScorer, logger *zap.Logger) *Ranker {
	return &Ranker{
		reviews: reviews,
		logger:  logger.Named("ranker"),
	}
}

type ScoreInput struct {
	Candidates []domain.Candidate
	Limit      int
}

type ScoreOutput struct {
	Recommendations []domain.ScoredRecommendation
	Skipped         int
}

// Score looks up a review score for each of the first Limit candidates, one
// request at a time, and returns them best-first. A candidate whose score
// cannot be fetched or parsed is logged and left out. Only a cancelled
// context stops the pass early.
func (r *Ranker) Score(ctx context.Context, input ScoreInput) (*ScoreOutput, error) {
	candidates := input.Candidates
	if len(candidates) > input.Limit {
		candidates = candidates[:max(input.Limit, 0)]
	}

	out := &ScoreOutput{
		Recommendations: make([]domain.ScoredRecommendation, 0, len(candidates)),
	}

	for _, c := range candidates {
		score, err := r.reviews.ReviewScore(ctx, c.ItemID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("score %s: %w", c.ItemID, ctx.Err())
			}
			r.logger.Warn("skipping candidate",
				zap.String("item_id", c.ItemID),
				zap.String("name", c.Name),
				zap.Error(err),
			)
			out.Skipped++
			continue
		}

		out.Recommendations = append(out.Recommendations, domain.ScoredRecommendation{
			ItemID: c.ItemID,
			Name:   c.Name,
			Score:  score,
		})
	}

	SortByScore(out.Recommendations)
	return out, nil
}

// SortByScore orders recs by score descending. Equal scores keep their
// relative order; equality is exact float32 comparison.
func SortByScore(recs []domain.ScoredRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}
