package domaingate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("gmail.com\nyahoo.fr\n"))
	}))
	defer srv.Close()

	set, err := NewFeed(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, set.Contains("gmail.com"))
	assert.True(t, set.Contains("yahoo.fr"))
}

func TestFeed_FetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewFeed(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestLoader_RefreshesCacheOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("gmail.com\n"))
	}))
	defer srv.Close()

	cache := NewMemoryCache()
	loader := NewLoader(NewFeed(srv.URL), cache, time.Hour, silentLogger())

	gate := loader.Load(context.Background())
	assert.False(t, gate.Degraded())
	assert.False(t, gate.IsProfessional("x@gmail.com"))

	cached, ok, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "gmail.com\n", cached)
}

func TestLoader_FallsBackToCachedSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cache := NewMemoryCache()
	require.NoError(t, cache.Set(context.Background(), "gmail.com\n", time.Hour))

	gate := NewLoader(NewFeed(srv.URL), cache, time.Hour, silentLogger()).Load(context.Background())
	assert.False(t, gate.Degraded())
	assert.False(t, gate.IsProfessional("x@gmail.com"))
}

func TestLoader_DegradesWithoutFeedOrCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gate := NewLoader(NewFeed(srv.URL), nil, time.Hour, silentLogger()).Load(context.Background())
	assert.True(t, gate.Degraded())
	assert.True(t, gate.IsProfessional("x@gmail.com"))
}
