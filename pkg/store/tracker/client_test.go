package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /developer/sign-in", func(w http.ResponseWriter, r *http.Request) {
		var req store.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "key", req.APIKey)
		assert.Equal(t, "secret", req.APISecret)

		_ = json.NewEncoder(w).Encode(store.SignInResponse{Token: "tok-1"})
	})
	mux.HandleFunc("GET /activities", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(store.ActivitiesResponse{Activities: []store.Activity{
			{ID: "123", Name: "Coding"},
			{ID: "456", Name: "Meetings"},
		}})
	})
	mux.HandleFunc("GET /time-entries/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(store.TimeEntriesResponse{TimeEntries: []store.TimeEntry{
			{
				ID:         "987",
				ActivityID: "123",
				Duration: store.EntryDuration{
					StartedAt: "2024-01-09T09:00:00.000",
					StoppedAt: "2024-01-09T09:37:00.000",
				},
				Note: store.EntryNote{
					Text: "release prep",
					Tags: []store.EntryTag{{Label: "deploy"}},
				},
			},
		}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server, cache Cache) *Client {
	return NewClient(Options{
		APIKey:     "key",
		APISecret:  "secret",
		BaseURL:    srv.URL,
		Cache:      cache,
		HTTPClient: srv.Client(),
	})
}

func TestClientSignInOnce(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)
	client := newTestClient(srv, nil)

	require.NoError(t, client.SignIn(context.Background()))
	require.NoError(t, client.SignIn(context.Background()))
	assert.Equal(t, "tok-1", client.token)
}

func TestClientGetActivities(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)
	client := newTestClient(srv, nil)

	activities, err := client.GetActivities(context.Background())
	require.NoError(t, err)

	require.Len(t, activities, 2)
	assert.Equal(t, "Coding", activities[0].Name)
}

func TestClientGetTimeEntries(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)
	client := newTestClient(srv, nil)

	start := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 9, 23, 59, 59, 999000000, time.UTC)

	records, err := client.GetTimeEntries(context.Background(), start, end)
	require.NoError(t, err)

	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, "987", record.ID)
	assert.Equal(t, "Coding", record.ActivityName)
	assert.Equal(t, 37*time.Minute, record.Stop.Sub(record.Start))
	require.Len(t, record.Notes, 2)
	assert.Equal(t, "#deploy", record.Notes[0].Rendered())
	assert.Equal(t, "release prep", record.Notes[1].Rendered())
}

func TestClientCachesGetResponses(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)
	client := newTestClient(srv, NewMemoryCache(time.Minute))

	_, err := client.GetActivities(context.Background())
	require.NoError(t, err)
	_, err = client.GetActivities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load())
}

func TestClientNoCacheRefetches(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)
	client := newTestClient(srv, nil)

	_, err := client.GetActivities(context.Background())
	require.NoError(t, err)
	_, err = client.GetActivities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load())
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv, nil)

	err := client.SignIn(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to authenticate")
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache(20 * time.Millisecond)
	cache.Set("activities", []byte("x"))

	_, ok := cache.Get("activities")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = cache.Get("activities")
	assert.False(t, ok)

	cache.Set("a", []byte("1"))
	cache.Flush()
	_, ok = cache.Get("a")
	assert.False(t, ok)
}
