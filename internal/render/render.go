// Package render prints a ranked recommendation list.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
)

const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

type RecommendationResponse struct {
	Seed            *domain.Item              `json:"seed"`
	Recommendations []RecommendationJSON      `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type RecommendationJSON struct {
	ItemID string    `json:"item_id"`
	Name   string    `json:"name"`
	Score  JSONScore `json:"score"`
}

// JSONScore marshals finite scores as numbers and Infinity / NaN as the
// strings FormatScore prints, since JSON has no literal for them.
type JSONScore float32

func (s JSONScore) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(FormatScore(float32(s)))), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 32)), nil
}

// Write renders result to w in the given format.
func Write(w io.Writer, format, term string, result *domain.RecommendationResult) error {
	switch format {
	case FormatPlain, "":
		return writePlain(w, result)
	case FormatJSON:
		return writeJSON(w, RecommendationResponse{
			Seed:            result.Seed,
			Recommendations: toJSON(result.Recommendations),
			Metadata: domain.RecommendationMeta{
				SearchTerm:   term,
				GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
				TotalCount:   len(result.Recommendations),
				SkippedCount: result.Skipped,
			},
		})
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// one line per recommendation: "<rank> <name> <score>"
func writePlain(w io.Writer, result *domain.RecommendationResult) error {
	for i, r := range result.Recommendations {
		if _, err := fmt.Fprintf(w, "%d %s %s\n", i, r.Name, FormatScore(r.Score)); err != nil {
			return err
		}
	}
	return nil
}

func toJSON(recs []domain.ScoredRecommendation) []RecommendationJSON {
	out := make([]RecommendationJSON, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationJSON{ItemID: r.ItemID, Name: r.Name, Score: JSONScore(r.Score)})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatScore prints s the way Java's Float.toString does: the shortest
// decimal that round-trips as a float32, always with a fractional digit
// (0.8, 0.95, 0.0, 1.0), switching to E notation below 1e-3 and from 1e7
// (1.0E-4, 1.2345678E7).
func FormatScore(s float32) string {
	f := float64(s)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		return formatScientific(f)
	}

	out := strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

func formatScientific(f float64) string {
	// Go writes 1.00000005E-04; Java writes 1.00000005E-4
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 32), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}
