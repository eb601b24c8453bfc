package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/repository"
)

func TestMonitorRunChecksAndReport(t *testing.T) {
	db := setupServiceTestDB(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"healthy"}`))
		case "/ok":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := config.MonitorConfig{BaseURL: server.URL, TimeoutMS: 1000, Pages: []string{"/ok", "/missing"}}
	svc := NewMonitorService(cfg, repository.NewServiceCheckRepository(db), func(context.Context) error { return nil })

	results := svc.RunChecks(context.Background())
	statuses := map[string]string{}
	for _, result := range results {
		statuses[result.Service] = result.Status
	}
	want := map[string]string{
		constants.ServiceCheckDatabase: constants.ServiceStatusUp,
		constants.ServiceCheckRedis:    constants.ServiceStatusUp,
		constants.ServiceCheckAPI:      constants.ServiceStatusUp,
		"page:/ok":                     constants.ServiceStatusUp,
		"page:/missing":                constants.ServiceStatusDown,
	}
	for service, status := range want {
		if statuses[service] != status {
			t.Fatalf("%s status want %s got %q", service, status, statuses[service])
		}
	}

	report, err := svc.Report(time.Now().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report.Items) != len(want) || len(report.Latest) != len(want) {
		t.Fatalf("unexpected report sizes: items=%d latest=%d", len(report.Items), len(report.Latest))
	}
	for _, item := range report.Items {
		if item.Service == "page:/missing" && item.Availability != 0 {
			t.Fatalf("missing page availability want 0 got %v", item.Availability)
		}
		if item.Service == constants.ServiceCheckDatabase && item.Availability != 1 {
			t.Fatalf("database availability want 1 got %v", item.Availability)
		}
	}
}

func TestMonitorCheckAPIDegradedAndDatabaseDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))
	defer server.Close()

	svc := NewMonitorService(config.MonitorConfig{BaseURL: server.URL}, nil, func(context.Context) error {
		return errors.New("connection refused")
	})
	if got := svc.CheckAPI(context.Background()); got.Status != constants.ServiceStatusDegraded {
		t.Fatalf("api status want DEGRADED got %s", got.Status)
	}
	db := svc.CheckDatabase(context.Background())
	if db.Status != constants.ServiceStatusDown || db.Details != "connection refused" {
		t.Fatalf("unexpected database result: %+v", db)
	}
}

func TestMonitorCheckAPIUnreachable(t *testing.T) {
	svc := NewMonitorService(config.MonitorConfig{BaseURL: "http://127.0.0.1:1", TimeoutMS: 200}, nil, nil)
	if got := svc.CheckAPI(context.Background()); got.Status != constants.ServiceStatusError {
		t.Fatalf("unreachable api want ERROR got %s", got.Status)
	}
}

func TestMonitorPurge(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := repository.NewServiceCheckRepository(db)
	svc := NewMonitorService(config.MonitorConfig{RetentionDays: 3}, repo, nil)
	now := time.Now()
	for _, age := range []time.Duration{time.Hour, 5 * 24 * time.Hour} {
		if err := svc.Record(CheckResult{Service: "database", Status: constants.ServiceStatusUp, CheckedAt: now.Add(-age)}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	removed, err := svc.Purge(now)
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("purge removed want 1 got %d", removed)
	}
}

func TestHealthStatus(t *testing.T) {
	if HealthStatus(nil, nil) != "healthy" {
		t.Fatalf("expected healthy")
	}
	if HealthStatus(errors.New("x"), nil) != "degraded" {
		t.Fatalf("expected degraded")
	}
}
