package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/common/logger"
	"solosuccess.app/api/common/metrics"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/scraper"
	"solosuccess.app/api/internal/store"
)

// ScrapeHandler fetches a competitor page, records the result and raises an
// alert when the content changed since the previous run.
type ScrapeHandler struct {
	stores   StoreProvider
	tx       TxRunner
	fetcher  scraper.Fetcher
	producer queue.Producer
	now      func() time.Time
}

func NewScrapeHandler(stores StoreProvider, tx TxRunner, fetcher scraper.Fetcher, producer queue.Producer) *ScrapeHandler {
	return &ScrapeHandler{
		stores:   stores,
		tx:       tx,
		fetcher:  fetcher,
		producer: producer,
		now:      time.Now,
	}
}

func (h *ScrapeHandler) Handle(ctx context.Context, msg queue.Message) error {
	job, err := h.stores.ScrapingJobs().Get(ctx, *msg.JobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.InfoContext(ctx, "scraping job no longer exists, skipping")
			return nil
		}
		return fmt.Errorf("loading scraping job: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		JobID:        &job.ID,
		CompetitorID: &job.CompetitorID,
		UserID:       &job.UserID,
		Component:    "solosuccess.worker.scrape",
	})

	if job.Status != model.ScrapeJobActive {
		slog.InfoContext(ctx, "scraping job paused, skipping")
		return nil
	}

	page, fetchErr := h.fetcher.Fetch(ctx, job.URL)
	if fetchErr != nil {
		return h.recordFailure(ctx, job, fetchErr)
	}
	metrics.ScrapeRuns.WithLabelValues("success").Inc()

	changed := job.LastContentHash != nil && *job.LastContentHash != page.Hash

	var alert *model.CompetitorAlert
	err = h.tx.WithTx(ctx, func(sp StoreProvider) error {
		result := &model.ScrapingResult{
			ID:           id.New(),
			JobID:        job.ID,
			CompetitorID: job.CompetitorID,
			ContentHash:  page.Hash,
			Title:        optional(page.Title),
			Description:  optional(page.Description),
			Excerpt:      optional(page.Excerpt()),
			Changed:      changed,
		}
		if err := sp.ScrapingResults().Create(ctx, result); err != nil {
			return fmt.Errorf("saving scraping result: %w", err)
		}

		if _, err := sp.ScrapingJobs().RecordSuccess(ctx, job.ID, page.Hash); err != nil {
			return fmt.Errorf("recording success: %w", err)
		}

		if !changed {
			return nil
		}

		competitor, err := sp.Competitors().Get(ctx, job.CompetitorID)
		if err != nil {
			return fmt.Errorf("loading competitor: %w", err)
		}

		alert = changeAlert(job, competitor, page)
		if err := sp.Alerts().Create(ctx, alert); err != nil {
			return fmt.Errorf("creating alert: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if alert == nil {
		slog.InfoContext(ctx, "page unchanged")
		return nil
	}

	metrics.ScrapeChanges.WithLabelValues(string(job.JobType)).Inc()
	slog.InfoContext(ctx, "competitor page changed", "alert_id", alert.ID, "severity", alert.Severity)
	h.notify(ctx, alert)
	return nil
}

// recordFailure backs the job off and pauses it after MaxScrapeFailures.
// The message itself is acknowledged: the schedule owns retries.
func (h *ScrapeHandler) recordFailure(ctx context.Context, job *model.ScrapingJob, fetchErr error) error {
	metrics.ScrapeRuns.WithLabelValues("failure").Inc()

	failures := job.ConsecutiveFailures + 1
	next := h.now().Add(job.FailureBackoff(failures))

	updated, err := h.stores.ScrapingJobs().RecordFailure(ctx, job.ID, logger.Truncate(fetchErr.Error(), 500), next, model.MaxScrapeFailures)
	if err != nil {
		return fmt.Errorf("recording scrape failure: %w", err)
	}

	if updated.Status == model.ScrapeJobPaused {
		slog.WarnContext(ctx, "scraping job paused after repeated failures",
			"error", fetchErr,
			"failures", updated.ConsecutiveFailures)
		return nil
	}

	slog.WarnContext(ctx, "scrape failed, backing off",
		"error", fetchErr,
		"failures", updated.ConsecutiveFailures,
		"next_run_at", next)
	return nil
}

func (h *ScrapeHandler) notify(ctx context.Context, alert *model.CompetitorAlert) {
	user, err := h.stores.Users().GetByID(ctx, alert.UserID)
	if err != nil {
		slog.WarnContext(ctx, "could not load user for alert email", "error", err)
		return
	}
	if !user.EmailNotifications {
		return
	}
	if err := h.producer.Enqueue(ctx, queue.AlertEmailTask(alert.UserID, alert.ID)); err != nil {
		slog.WarnContext(ctx, "failed to enqueue alert email", "error", err)
	}
}

func changeAlert(job *model.ScrapingJob, competitor *model.Competitor, page *scraper.Page) *model.CompetitorAlert {
	title := fmt.Sprintf("%s updated their %s page", competitor.Name, job.JobType)

	desc := page.Title
	if page.Description != "" {
		desc = page.Description
	}

	return &model.CompetitorAlert{
		ID:           id.New(),
		UserID:       job.UserID,
		CompetitorID: job.CompetitorID,
		AlertType:    string(job.JobType) + "_change",
		Severity:     job.JobType.AlertSeverity(),
		Title:        title,
		Description:  optional(desc),
		SourceURL:    &job.URL,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
