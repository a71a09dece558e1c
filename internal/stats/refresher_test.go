package stats

import (
	"context"
	"testing"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/config"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/metrics"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// Prometheus collectors register globally, so one set per test binary.
var testMetrics = metrics.NewMetrics()

// dummyCounter implements Counter with fixed counts. It honors context
// cancellation the way a real database-backed counter would.
type dummyCounter struct{}

func (d *dummyCounter) CountInquiriesByStatus(ctx context.Context) (map[model.InquiryStatus]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return map[model.InquiryStatus]int64{
		model.StatusPending:  3,
		model.StatusReviewed: 1,
		model.StatusArchived: 0,
	}, nil
}

func TestRefresherRestart(t *testing.T) {
	cfg := &config.StatsConfig{IntervalMinutes: 60}
	ref := NewRefresher(cfg, &dummyCounter{}, testMetrics)

	if err := ref.Start(); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	if !ref.IsRunning() {
		t.Fatalf("refresher should be running after Start")
	}
	if ref.GetNextRun().IsZero() {
		t.Fatalf("next run should be scheduled while running")
	}
	if err := ref.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if ref.IsRunning() {
		t.Fatalf("refresher should not be running after Stop")
	}
	if err := ref.Start(); err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	if !ref.IsRunning() {
		t.Fatalf("refresher should be running after second Start")
	}
	// context should be active
	if ref.ctx == nil || ref.ctx.Err() != nil {
		t.Fatalf("refresher context should be active after restart")
	}

	if err := ref.RunOnce(context.Background()); err != nil {
		t.Fatalf("run once failed: %v", err)
	}
	if ref.GetLastRun().IsZero() {
		t.Fatalf("last run should be recorded after RunOnce")
	}

	ref.Stop()
}

func TestRunOnceWhileStopped(t *testing.T) {
	cfg := &config.StatsConfig{IntervalMinutes: 60}
	ref := NewRefresher(cfg, &dummyCounter{}, testMetrics)

	if err := ref.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := ref.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	// A manual refresh must not depend on the canceled cron context.
	if err := ref.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce while stopped should still work, got: %v", err)
	}
	if ref.GetLastRun().IsZero() {
		t.Fatalf("last run should be recorded after manual RunOnce")
	}
}

func TestRunOnceHonorsCallerContext(t *testing.T) {
	cfg := &config.StatsConfig{IntervalMinutes: 60}
	ref := NewRefresher(cfg, &dummyCounter{}, testMetrics)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ref.RunOnce(ctx); err == nil {
		t.Fatalf("RunOnce with a canceled caller context should fail")
	}
}
