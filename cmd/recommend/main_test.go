package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangshv123/walmart-recommend/internal/catalogtest"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func useCatalog(t *testing.T, srv *catalogtest.Server) {
	t.Setenv("RECOMMEND_CATALOG_BASE_URL", srv.URL)
	t.Setenv("RECOMMEND_CATALOG_API_KEY", catalogtest.APIKey)
	t.Setenv("RECOMMEND_LOG_LEVEL", "debug")
}

func TestRunPrintsRankedList(t *testing.T) {
	srv := catalogtest.New(t)
	srv.SetSearch("shoes", `{"items":[{"itemId":"10","name":"Shoe A"},{"itemId":"11","name":"Shoe B"}]}`)
	srv.SetRecommend("10", `[{"itemId":"20","name":"Sock"},{"itemId":"21","name":"Insole"}]`)
	srv.SetRating("20", "4", "5")
	srv.SetRating("21", "4.75", "5")
	useCatalog(t, srv)

	stdout, _, err := runCLI(t, "shoes")
	require.NoError(t, err)
	assert.Equal(t, "0 Insole 0.95\n1 Sock 0.8\n", stdout)
}

func TestRunSearchNotFound(t *testing.T) {
	srv := catalogtest.New(t)
	useCatalog(t, srv)

	stdout, stderr, err := runCLI(t, "nothing")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "search not found")
}

func TestRunJSONOutput(t *testing.T) {
	srv := catalogtest.New(t)
	srv.SetSearch("tv", `{"items":[{"itemId":"1","name":"TV"}]}`)
	srv.SetRecommend("1", `[{"itemId":"2","name":"Mount"}]`)
	useCatalog(t, srv)
	t.Setenv("RECOMMEND_OUTPUT_FORMAT", "json")

	stdout, _, err := runCLI(t, "tv")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name": "Mount"`)
	assert.Contains(t, stdout, `"search_term": "tv"`)
}

func TestRunRequiresOneArgument(t *testing.T) {
	_, _, err := runCLI(t)
	assert.Error(t, err)

	_, _, err = runCLI(t, "a", "b")
	assert.Error(t, err)
}

func TestRunMissingAPIKey(t *testing.T) {
	t.Setenv("RECOMMEND_CATALOG_API_KEY", "")

	_, stderr, err := runCLI(t, "shoes")
	require.Error(t, err)
	assert.Contains(t, stderr, "api key")
}

func TestRunJSONOutputZeroRatingRange(t *testing.T) {
	srv := catalogtest.New(t)
	srv.SetSearch("tv", `{"items":[{"itemId":"1","name":"TV"}]}`)
	srv.SetRecommend("1", `[{"itemId":"2","name":"Mount"}]`)
	srv.SetRating("2", "4", "0")
	useCatalog(t, srv)

	stdout, _, err := runCLI(t, "tv")
	require.NoError(t, err)
	assert.Equal(t, "0 Mount Infinity\n", stdout)

	t.Setenv("RECOMMEND_OUTPUT_FORMAT", "json")
	stdout, _, err = runCLI(t, "tv")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)), stdout)
	assert.Contains(t, stdout, `"score": "Infinity"`)
}
