// Package stats keeps the dashboard gauges in sync with the inquiry table on
// a fixed interval. The refresher only ever reads; inquiry statuses are never
// changed by the clock.
package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/config"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/metrics"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// Counter supplies the per-status inquiry counts.
type Counter interface {
	CountInquiriesByStatus(ctx context.Context) (map[model.InquiryStatus]int64, error)
}

// Refresher periodically recomputes the per-status inquiry gauges.
type Refresher struct {
	cron      *cron.Cron
	entryID   cron.EntryID
	config    *config.StatsConfig
	counter   Counter
	metrics   *metrics.Metrics
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	lastRun   time.Time
	mu        sync.RWMutex
}

// NewRefresher creates a new stats refresher
func NewRefresher(cfg *config.StatsConfig, counter Counter, m *metrics.Metrics) *Refresher {
	ctx, cancel := context.WithCancel(context.Background())

	return &Refresher{
		cron:    cron.New(cron.WithSeconds()),
		config:  cfg,
		counter: counter,
		metrics: m,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start starts the refresher
func (r *Refresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return fmt.Errorf("stats refresher is already running")
	}

	// Recreate the context in case a previous Stop canceled it
	r.ctx, r.cancel = context.WithCancel(context.Background())

	schedule := fmt.Sprintf("0 */%d * * * *", r.config.IntervalMinutes)

	entryID, err := r.cron.AddFunc(schedule, r.refresh)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	r.entryID = entryID
	r.cron.Start()
	r.isRunning = true

	logrus.Infof("Stats refresher started with interval: %d minutes", r.config.IntervalMinutes)
	return nil
}

// Stop stops the refresher
func (r *Refresher) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return nil
	}

	r.cancel()
	r.cron.Remove(r.entryID)

	ctx := r.cron.Stop()
	select {
	case <-ctx.Done():
		logrus.Info("Stats refresher stopped gracefully")
	case <-time.After(30 * time.Second):
		logrus.Warn("Stats refresher stop timeout, forcing shutdown")
	}

	r.isRunning = false
	return nil
}

// IsRunning returns whether the refresher is running
func (r *Refresher) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRunning
}

// GetLastRun returns the time of the last completed refresh
func (r *Refresher) GetLastRun() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRun
}

// GetNextRun returns the scheduled time of the next refresh
func (r *Refresher) GetNextRun() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.isRunning {
		return time.Time{}
	}
	return r.cron.Entry(r.entryID).Next
}

// RunOnce performs a single refresh immediately. It runs on the caller's
// context, not the cron lifecycle one, so a manual refresh keeps working
// while the schedule is stopped.
func (r *Refresher) RunOnce(ctx context.Context) error {
	counts, err := r.counter.CountInquiriesByStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh stats: %w", err)
	}
	r.apply(counts)
	return nil
}

// Wait blocks until any in-flight refresh completes
func (r *Refresher) Wait() {
	r.wg.Wait()
}

// refresh is the cron entry point.
func (r *Refresher) refresh() {
	r.wg.Add(1)
	defer r.wg.Done()

	r.mu.RLock()
	ctx := r.ctx
	r.mu.RUnlock()

	start := time.Now()
	if err := r.RunOnce(ctx); err != nil {
		logrus.Errorf("Stats refresh failed: %v", err)
		return
	}
	r.metrics.StatsRefreshSeconds.Observe(time.Since(start).Seconds())
}

func (r *Refresher) apply(counts map[model.InquiryStatus]int64) {
	r.metrics.InquiriesPending.Set(float64(counts[model.StatusPending]))
	r.metrics.InquiriesReviewed.Set(float64(counts[model.StatusReviewed]))
	r.metrics.InquiriesArchived.Set(float64(counts[model.StatusArchived]))

	r.mu.Lock()
	r.lastRun = time.Now()
	r.mu.Unlock()
}
