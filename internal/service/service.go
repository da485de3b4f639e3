package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
	"github.com/zhangshv123/walmart-recommend/internal/model"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// Catalog is the subset of the catalog client the pipeline drives.
type Catalog interface {
	Search(ctx context.Context, term string) ([]domain.Item, error)
	Recommend(ctx context.Context, itemID string, limit int) ([]domain.Candidate, error)
}

type Scorer interface {
	Score(ctx context.Context, input model.ScoreInput) (*model.ScoreOutput, error)
}

type Service struct {
	catalog Catalog
	scorer  Scorer
	logger  *zap.Logger
}

func NewService(catalog Catalog, scorer Scorer, logger *zap.Logger) *Service {
	return &Service{
		catalog: catalog,
		scorer:  scorer,
		logger:  logger.Named("service"),
	}
}

// GetRecommendations runs search → recommend → score → sort for term.
// Search and recommend failures are logged and produce an empty result
// rather than an error; only a cancelled context is returned.
func (s *Service) GetRecommendations(ctx context.Context, term string, limit int) (*domain.RecommendationResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	result := &domain.RecommendationResult{
		Recommendations: []domain.ScoredRecommendation{},
	}

	items, err := s.catalog.Search(ctx, term)
	if err != nil {
		return result, s.degrade(ctx, "search", err, zap.String("term", term))
	}
	seed := items[0]
	result.Seed = &seed

	candidates, err := s.catalog.Recommend(ctx, seed.ItemID, limit)
	if err != nil {
		return result, s.degrade(ctx, "recommend", err, zap.String("item_id", seed.ItemID))
	}

	scored, err := s.scorer.Score(ctx, model.ScoreInput{
		Candidates: candidates,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("score recommendations: %w", err)
	}

	result.Recommendations = scored.Recommendations
	result.Skipped = scored.Skipped
	return result, nil
}

// degrade logs a failed catalog step. It returns nil unless the failure was
// caused by ctx going away.
func (s *Service) degrade(ctx context.Context, step string, err error, fields ...zap.Field) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", step, ctx.Err())
	}

	switch {
	case errors.Is(err, domain.ErrSearchNotFound), errors.Is(err, domain.ErrRecommendNotFound):
		s.logger.Warn(err.Error(), fields...)
	case domain.IsTransportError(err):
		s.logger.Error(step+" request failed", append(fields, zap.Error(err))...)
	case domain.IsParseError(err):
		s.logger.Error(step+" response unreadable", append(fields, zap.Error(err))...)
	default:
		s.logger.Error(step+" failed", append(fields, zap.Error(err))...)
	}
	return nil
}
