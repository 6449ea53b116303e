package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/heightconv/internal/config"
	"github.com/iliyamo/heightconv/internal/handler"
	"github.com/iliyamo/heightconv/internal/logging"
	"github.com/iliyamo/heightconv/internal/middleware"
	q "github.com/iliyamo/heightconv/internal/queue"
	"github.com/iliyamo/heightconv/internal/service"
)

func newServer() *echo.Echo {
	return newServerWith(service.NopPublisher{})
}

func newServerWith(pub service.EventPublisher) *echo.Echo {
	e := echo.New()
	e.Renderer = handler.NewTemplateRenderer()

	cacheCfg := config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{http.MethodGet: true},
		TTL:          time.Minute,
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
	limit := middleware.NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)
	cache := middleware.NewResponseCache(cacheCfg, middleware.NewMemoryStore(time.Minute, time.Minute))

	RegisterRoutes(e)
	RegisterHeight(e, handler.NewHeightHandler(pub, logging.NewLogger("error")), limit, cache)
	return e
}

func TestRoutes(t *testing.T) {
	e := newServer()

	tests := []struct {
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/", "", http.StatusOK, "Hello World!"},
		{http.MethodGet, "/healthz", "", http.StatusOK, "ok"},
		{http.MethodGet, "/actuator/health", "", http.StatusOK, `"UP"`},
		{http.MethodGet, "/height", "", http.StatusOK, `name="heightCm"`},
		{http.MethodPost, "/height", "heightCm=100", http.StatusOK, `<td id="out-inches">3</td>`},
		{http.MethodPost, "/height", "heightCm=abc", http.StatusBadRequest, `class="error"`},
		{http.MethodGet, "/v1/convert?cm=100", "", http.StatusOK, `"feet":"3"`},
		{http.MethodGet, "/v1/arith/quotient?a=10&b=0", "", http.StatusBadRequest, "division_by_zero"},
		{http.MethodGet, "/v1/arith/product?a=4&b=3", "", http.StatusOK, `"result":12`},
		{http.MethodGet, "/nope", "", http.StatusNotFound, ""},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestConvertIsCached(t *testing.T) {
	e := newServer()

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/v1/convert?cm=183", nil))
	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/v1/convert?cm=183", nil))

	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

type countingPublisher struct {
	events []q.ConversionPerformedEvent
}

func (p *countingPublisher) PublishConversion(_ context.Context, ev q.ConversionPerformedEvent) error {
	p.events = append(p.events, ev)
	return nil
}

func TestConvertPublishesOnCacheHits(t *testing.T) {
	pub := &countingPublisher{}
	e := newServerWith(pub)

	caches := []string{"MISS", "HIT", "HIT"}
	for _, want := range caches {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/convert?cm=183", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, rec.Header().Get("X-Cache"))
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/convert?cm=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	require.Len(t, pub.events, len(caches))
	for _, ev := range pub.events {
		assert.Equal(t, q.SourceAPI, ev.Source)
		assert.Equal(t, "183", ev.HeightCm)
		assert.Equal(t, "6", ev.HeightFeet)
		assert.Equal(t, "0", ev.HeightInch)
	}
	assert.NotEqual(t, pub.events[0].ID, pub.events[1].ID)
}
