package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imaut/internal/config"
	"imaut/pkg/logger"
)

func memoryConfig() config.Config {
	return config.Config{
		ServerPort:         "0",
		StorageDriver:      config.DriverMemory,
		CORSAllowedOrigins: []string{"https://app.test"},
		MetricsEnabled:     true,
		ShutdownTimeout:    time.Second,
	}
}

func newTestApp(t *testing.T, mod Module) *App {
	t.Helper()
	a, err := New(context.Background(), memoryConfig(), mod, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = config.DriverPostgres

	_, err := New(context.Background(), cfg, AccountModule(), logger.NewNop())
	assert.Error(t, err)
}

func TestModules_ServeOnlyTheirResource(t *testing.T) {
	tests := []struct {
		mod   Module
		other string
	}{
		{AccountModule(), "/clients"},
		{ClientModule(), "/products"},
		{ProductModule(), "/accounts"},
	}

	for _, tt := range tests {
		t.Run(tt.mod.Name, func(t *testing.T) {
			h := newTestApp(t, tt.mod).Handler()

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.mod.Path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)

			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.other, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestHandler_CORS(t *testing.T) {
	h := newTestApp(t, ClientModule()).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/clients/1", nil)
	req.Header.Set("Origin", "https://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestHandler_GzipLargeResponses(t *testing.T) {
	h := newTestApp(t, ClientModule()).Handler()

	body := `{"name":"` + strings.Repeat("a", 200) + `","vatNumber":"PT1","streetAddress":"` + strings.Repeat("b", 200) +
		`","postcode":"1000","city":"Lisbon","country":"Portugal"}`
	for range 5 {
		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	a := newTestApp(t, ProductModule())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
