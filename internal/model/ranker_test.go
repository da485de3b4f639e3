package model

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
)

type fakeReviews struct {
	scores map[string]float32
	errs   map[string]error
	calls  []string
}

func (f *fakeReviews) ReviewScore(_ context.Context, itemID string) (float32, error) {
	f.calls = append(f.calls, itemID)
	if err, ok := f.errs[itemID]; ok {
		return 0, err
	}
	return f.scores[itemID], nil
}

func candidates(ids ...string) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Candidate{ItemID: id, Name: "item-" + id})
	}
	return out
}

func TestScore(t *testing.T) {
	reviews := &fakeReviews{scores: map[string]float32{"20": 0.8, "21": 0.95}}
	ranker := NewRanker(reviews, zap.NewNop())

	out, err := ranker.Score(context.Background(), ScoreInput{
		Candidates: []domain.Candidate{
			{ItemID: "20", Name: "Sock"},
			{ItemID: "21", Name: "Insole"},
		},
		Limit: 10,
	})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if len(out.Recommendations) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out.Recommendations))
	}
	if out.Recommendations[0].Name != "Insole" || out.Recommendations[1].Name != "Sock" {
		t.Errorf("wrong order: %+v", out.Recommendations)
	}
	if out.Skipped != 0 {
		t.Errorf("expected no skipped candidates, got %d", out.Skipped)
	}

	for i, r := range out.Recommendations {
		fmt.Printf("  %d %s → score: %v\n", i, r.Name, r.Score)
	}
}

func TestScoreRespectsLimit(t *testing.T) {
	reviews := &fakeReviews{scores: map[string]float32{}}
	ranker := NewRanker(reviews, zap.NewNop())

	out, err := ranker.Score(context.Background(), ScoreInput{
		Candidates: candidates("1", "2", "3", "4", "5"),
		Limit:      3,
	})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if len(out.Recommendations) != 3 {
		t.Errorf("expected 3 results, got %d", len(out.Recommendations))
	}
	// only the first three candidates are looked up, in catalog order
	if fmt.Sprint(reviews.calls) != "[1 2 3]" {
		t.Errorf("unexpected lookups: %v", reviews.calls)
	}
}

func TestScoreSortedDescending(t *testing.T) {
	reviews := &fakeReviews{scores: map[string]float32{
		"a": 0.2, "b": 0.9, "c": 0.5, "d": 1.0, "e": 0,
	}}
	ranker := NewRanker(reviews, zap.NewNop())

	out, err := ranker.Score(context.Background(), ScoreInput{
		Candidates: candidates("a", "b", "c", "d", "e"),
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	recs := out.Recommendations
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Score < recs[i].Score {
			t.Errorf("results not sorted at %d: %v < %v", i, recs[i-1].Score, recs[i].Score)
		}
	}
}

func TestSortByScoreStable(t *testing.T) {
	recs := []domain.ScoredRecommendation{
		{ItemID: "1", Score: 0.5},
		{ItemID: "2", Score: 0.8},
		{ItemID: "3", Score: 0.5},
		{ItemID: "4", Score: 0.8},
		{ItemID: "5", Score: 0.5},
	}

	SortByScore(recs)

	got := ""
	for _, r := range recs {
		got += r.ItemID
	}
	if got != "24135" {
		t.Errorf("expected 24135, got %s", got)
	}
}

func TestScoreSkipsFailedCandidates(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	reviews := &fakeReviews{
		scores: map[string]float32{"1": 0.4, "3": 0.6},
		errs: map[string]error{
			"2": &domain.ParseError{What: "averageOverallRating", Value: "n/a", Err: errors.New("invalid syntax")},
		},
	}
	ranker := NewRanker(reviews, zap.New(core))

	out, err := ranker.Score(context.Background(), ScoreInput{
		Candidates: candidates("1", "2", "3"),
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if len(out.Recommendations) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out.Recommendations))
	}
	if out.Recommendations[0].ItemID != "3" || out.Recommendations[1].ItemID != "1" {
		t.Errorf("wrong order: %+v", out.Recommendations)
	}
	if out.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", out.Skipped)
	}
	if logs.FilterMessage("skipping candidate").Len() != 1 {
		t.Errorf("expected one skip log, got %d", logs.Len())
	}
}

func TestScoreCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reviews := &fakeReviews{errs: map[string]error{"1": context.Canceled}}
	ranker := NewRanker(reviews, zap.NewNop())

	_, err := ranker.Score(ctx, ScoreInput{Candidates: candidates("1", "2"), Limit: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(reviews.calls) != 1 {
		t.Errorf("expected pass to stop after first failure, got %d calls", len(reviews.calls))
	}
}
