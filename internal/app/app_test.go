package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docadmin/config"

	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		StorageType: config.StorageMemory,
		SeedDemo:    true,
		HTTP:        config.HTTPConfig{Port: "0"},
		Documents:   config.DocumentsConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}
}

func TestNewApp_SeedsDemo(t *testing.T) {
	t.Parallel()

	a, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/demo/documents", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Documents []struct {
			Key string `json:"key"`
		} `json:"documents"`
		HasPrevious bool `json:"hasPrevious"`
		HasNext     bool `json:"hasNext"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Documents, 10)
	require.Equal(t, "document-001", page.Documents[0].Key)
	require.False(t, page.HasPrevious)
	require.True(t, page.HasNext)
}

func TestNewApp_UnknownStorage(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.StorageType = "redis"
	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.SeedDemo = false
	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
