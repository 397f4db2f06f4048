package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	ok := HealthCheckFunc(func(ctx context.Context) error { return nil })
	down := HealthCheckFunc(func(ctx context.Context) error { return errDown })

	tests := []struct {
		name   string
		checks map[string]HealthChecker
		status int
		body   string
	}{
		{"all healthy", map[string]HealthChecker{"firestore": ok, "redis": ok}, http.StatusOK, `"status":"ok"`},
		{"one failing", map[string]HealthChecker{"firestore": ok, "redis": down}, http.StatusServiceUnavailable, `"redis":"backend down"`},
		{"no dependencies", map[string]HealthChecker{}, http.StatusOK, `"status":"ok"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if assert.NoError(t, NewHealthHandler(tt.checks).CheckHealth(c)) {
				assert.Equal(t, tt.status, rec.Code)
				assert.Contains(t, rec.Body.String(), tt.body)
			}
		})
	}
}
