package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"solosuccess.app/api/common/logger"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
)

// DueJobClaimer hands out due scraping jobs, advancing next_run_at as it does.
type DueJobClaimer interface {
	ClaimDue(ctx context.Context, limit int32) ([]model.ScrapingJob, error)
}

type SchedulerConfig struct {
	Interval  time.Duration
	BatchSize int32
	// MaxBatches bounds how many batches one tick drains.
	MaxBatches int
}

// Scheduler enqueues a competitor_scrape task for every due, active scraping job.
type Scheduler struct {
	jobs     DueJobClaimer
	producer queue.Producer
	cfg      SchedulerConfig

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewScheduler(jobs DueJobClaimer, producer queue.Producer, cfg SchedulerConfig) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxBatches <= 0 {
		cfg.MaxBatches = 20
	}
	return &Scheduler{
		jobs:      jobs,
		producer:  producer,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "solosuccess.worker.scheduler",
	})

	defer close(s.stoppedCh)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "scrape scheduler started", "interval", s.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			slog.InfoContext(ctx, "scrape scheduler stopping")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "scheduler tick failed", "error", err)
			}
		}
	}
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	<-s.stoppedCh
}

// RunOnce enqueues every job due now and returns how many were enqueued.
// Claiming pushes next_run_at forward first, so a slow tick never enqueues a job twice.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	enqueued := 0
	for range s.cfg.MaxBatches {
		jobs, err := s.jobs.ClaimDue(ctx, s.cfg.BatchSize)
		if err != nil {
			return enqueued, fmt.Errorf("claiming due jobs: %w", err)
		}

		for _, job := range jobs {
			if err := s.producer.Enqueue(ctx, queue.ScrapeTask(job.ID, job.UserID)); err != nil {
				// The job keeps its advanced next_run_at and runs again next period.
				slog.ErrorContext(ctx, "failed to enqueue scrape", "error", err, "job_id", job.ID)
				continue
			}
			enqueued++
		}

		if int32(len(jobs)) < s.cfg.BatchSize {
			break
		}
	}

	if enqueued > 0 {
		slog.InfoContext(ctx, "scheduled scrape jobs", "count", enqueued)
	}
	return enqueued, nil
}
