package catalog

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// text decodes a JSON string or number into its textual form. The catalog
// sends ids, names and ratings as strings but is not consistent about it.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", b)
		}
		*t = text(n.String())
	}
	return nil
}

type wireItem struct {
	ItemID text `json:"itemId"`
	Name   text `json:"name"`
}

type searchResponse struct {
	Query        string     `json:"query"`
	TotalResults int        `json:"totalResults"`
	Items        []wireItem `json:"items"`
}

type reviewResponse struct {
	ItemID           text              `json:"itemId"`
	ReviewStatistics *reviewStatistics `json:"reviewStatistics"`
}

type reviewStatistics struct {
	AverageOverallRating text `json:"averageOverallRating"`
	OverallRatingRange   text `json:"overallRatingRange"`
	TotalReviewCount     text `json:"totalReviewCount"`
}
