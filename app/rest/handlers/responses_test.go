package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"explicit values", "limit=50&offset=40", 50, 40},
		{"negative limit falls back to default", "limit=-5", 20, 0},
		{"zero limit falls back to default", "limit=0", 20, 0},
		{"oversized limit clamps to the max", "limit=500", 100, 0},
		{"negative offset is ignored", "offset=-10", 20, 0},
		{"non-numeric values are ignored", "limit=abc&offset=xyz", 20, 0},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/clients?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			limit, offset := paginationParams(c)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
