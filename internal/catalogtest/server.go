// Package catalogtest serves canned catalog responses over HTTP so the
// catalog client and the pipeline can be exercised end to end.
package catalogtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const APIKey = "test-key"

const (
	RouteSearch    = "search"
	RouteRecommend = "nbp"
	RouteReviews   = "reviews"
)

type Server struct {
	*httptest.Server

	mu         sync.Mutex
	searches   map[string]string
	recommends map[string]string
	reviews    map[string]string
	failures   map[string]int
	hits       map[string]int
}

// New starts a fake catalog and registers its shutdown with t.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		searches:   make(map[string]string),
		recommends: make(map[string]string),
		reviews:    make(map[string]string),
		failures:   make(map[string]int),
		hits:       make(map[string]int),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requireAPIKey)

	r.Get("/v1/search", s.handle(RouteSearch, func(r *http.Request) (string, bool) {
		return s.lookup(s.searches, r.URL.Query().Get("query"))
	}, `{"totalResults":0}`))
	r.Get("/v1/nbp", s.handle(RouteRecommend, func(r *http.Request) (string, bool) {
		return s.lookup(s.recommends, r.URL.Query().Get("itemId"))
	}, `[]`))
	r.Get("/v1/reviews/{itemID}", s.handle(RouteReviews, func(r *http.Request) (string, bool) {
		if r.URL.Query().Get("format") != "json" {
			return "", false
		}
		return s.lookup(s.reviews, chi.URLParam(r, "itemID"))
	}, `{}`))

	return r
}

func (s *Server) handle(route string, find func(*http.Request) (string, bool), fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[route]++
		status, failing := s.failures[route]
		s.mu.Unlock()

		if failing {
			http.Error(w, http.StatusText(status), status)
			return
		}

		body, ok := find(r)
		if !ok {
			body = fallback
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func (s *Server) lookup(m map[string]string, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := m[key]
	return body, ok
}

func requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") != APIKey {
			http.Error(w, `{"errors":[{"code":403,"message":"Account Inactive"}]}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetSearch stores the raw JSON body returned for query term.
func (s *Server) SetSearch(term, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches[term] = body
}

func (s *Server) SetRecommend(itemID, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommends[itemID] = body
}

func (s *Server) SetReview(itemID, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[itemID] = body
}

// SetRating is SetReview with a well-formed reviewStatistics object.
func (s *Server) SetRating(itemID, average, ratingRange string) {
	s.SetReview(itemID, fmt.Sprintf(
		`{"itemId":%q,"reviewStatistics":{"averageOverallRating":%q,"overallRatingRange":%q}}`,
		itemID, average, ratingRange,
	))
}

// Fail makes every request to route answer with status.
func (s *Server) Fail(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = status
}

func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}
