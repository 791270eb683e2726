package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"tempmap/internal/forecast"
)

// Refresher periodically re-fetches the forecast dataset so interactive
// requests rarely block on the sequential outbound fetch loop.
type Refresher struct {
	scheduler *gocron.Scheduler
	service   *forecast.Service
	interval  time.Duration
}

// New creates a Refresher. An interval of 0 disables it.
func New(service *forecast.Service, interval time.Duration) *Refresher {
	s := gocron.NewScheduler(time.UTC)
	return &Refresher{
		scheduler: s,
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (r *Refresher) Start() error {
	if r.interval <= 0 {
		log.Println("refresher: disabled; dataset is fetched on demand")
		return nil
	}

	_, err := r.scheduler.Every(r.interval).Do(func() {
		log.Println("refresher: fetching forecast dataset")

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		snap := r.service.Refresh(ctx)
		log.Printf("refresher: fetched %d samples, %d location failures", len(snap.Data), len(snap.Failures))
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (r *Refresher) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}
