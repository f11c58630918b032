package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetLimitParam(t *testing.T) {
	cases := map[string]int{
		"":           DefaultListLimit,
		"?limit=10":  10,
		"?limit=0":   DefaultListLimit,
		"?limit=-3":  DefaultListLimit,
		"?limit=x":   DefaultListLimit,
		"?limit=101": DefaultListLimit,
		"?limit=100": 100,
	}

	e := echo.New()
	for query, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/games"+query, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, want, GetLimitParam(c), "query %q", query)
	}
}
