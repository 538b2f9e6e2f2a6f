package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubPinger struct {
	name string
	err  error
}

func (p stubPinger) Name() string { return p.name }

func (p stubPinger) Ping(context.Context) error { return p.err }

func readiness(t *testing.T, pingers ...Pinger) (int, readinessResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

	if err := NewHealthHandler(pingers...).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestHealth_Liveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", rec.Code, err)
	}
}

func TestHealth_ReadinessAllUp(t *testing.T) {
	code, resp := readiness(t, stubPinger{name: "mongodb"}, stubPinger{name: "redis"})
	if code != http.StatusOK || resp.Status != "ok" || resp.Dependencies["redis"].Status != "ok" {
		t.Fatalf("unexpected readiness %d %+v", code, resp)
	}
}

func TestHealth_ReadinessDegraded(t *testing.T) {
	code, resp := readiness(t, stubPinger{name: "mongodb"}, stubPinger{name: "postgres", err: errors.New("refused")})
	if code != http.StatusServiceUnavailable || resp.Status != "degraded" {
		t.Fatalf("expected 503 degraded, got %d %+v", code, resp)
	}
	if dep := resp.Dependencies["postgres"]; dep.Status != "unhealthy" || dep.Error != "refused" {
		t.Fatalf("unexpected postgres status %+v", dep)
	}
	if resp.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("healthy backend should still report ok")
	}
}
