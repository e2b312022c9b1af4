package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"reservas/config"
	otelMocks "reservas/infras/otel/mocks"
	"reservas/shared/cache"
	cacheMocks "reservas/shared/cache/mocks"
	"reservas/shared/logger"
	"reservas/transport/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://reservas-senderosamados.rsanjur.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	cfg.App.CORS.AllowedHeaders = []string{"Content-Type"}

	return cfg
}

func TestCORS(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(), cache.NewNoopCache())
	handler := mw.CORS()(okHandler())

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{name: "allowed origin", origin: "https://reservas-senderosamados.rsanjur.com", wantHeader: "https://reservas-senderosamados.rsanjur.com"},
		{name: "unknown origin", origin: "https://evil.example.com", wantHeader: ""},
		{name: "no origin", origin: "", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/reservas", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(), cache.NewNoopCache())

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
	}))

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/casas", nil)
		req.Header.Set("X-Request-ID", "abc-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("generates one", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/casas", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})
}

func TestRateLimit(t *testing.T) {
	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	t.Run("first request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

		rec := httptest.NewRecorder()
		middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache).RateLimit()(okHandler()).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/casas", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*int)) = 2

			return nil
		})
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), 3, 60).Return(nil)

		rec := httptest.NewRecorder()
		middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache).RateLimit()(okHandler()).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/casas", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	})

	t.Run("cache outage lets requests through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		rec := httptest.NewRecorder()
		middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache).RateLimit()(okHandler()).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/casas", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTracing(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(), cache.NewNoopCache())

	rec := httptest.NewRecorder()
	mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
