package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecatalog/internal/infrastructure/ratelimit"
	"gamecatalog/pkg/response"
)

func TestRateLimitReturns429(t *testing.T) {
	store := ratelimit.NewLimiterStore(1, 1, time.Hour)
	defer store.Stop()

	e := echo.New()
	e.POST("/subscribe", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, RateLimit(store))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/subscribe", nil)
		req.RemoteAddr = "192.0.2.10:4242"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, send().Code)

	rec := send()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "TOO_MANY_REQUESTS", body.Error.Code)
}
