package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/store"
)

const (
	defaultScrapeFrequency = 24 * 60
	defaultResultLimit     = 20
	maxResultLimit         = 100
)

var scrapeJobTypes = []model.ScrapeJobType{model.ScrapeJobWebsite, model.ScrapeJobPricing, model.ScrapeJobBlog}

type ScrapingService interface {
	Create(ctx context.Context, userID, competitorID int64, params CreateScrapingJobParams) (*model.ScrapingJob, error)
	Get(ctx context.Context, userID, jobID int64) (*model.ScrapingJob, error)
	Update(ctx context.Context, userID, jobID int64, params UpdateScrapingJobParams) (*model.ScrapingJob, error)
	Delete(ctx context.Context, userID, jobID int64) error
	// RunNow queues an immediate scrape outside the schedule.
	RunNow(ctx context.Context, userID, jobID int64) error
	Results(ctx context.Context, userID, jobID int64, limit int) ([]model.ScrapingResult, error)
}

type CreateScrapingJobParams struct {
	URL              *string // defaults to the competitor's website
	JobType          string
	FrequencyMinutes int // default daily
}

type UpdateScrapingJobParams struct {
	Status           *string
	FrequencyMinutes *int
}

type scrapingService struct {
	competitors store.CompetitorStore
	jobs        store.ScrapingJobStore
	results     store.ScrapingResultStore
	producer    queue.Producer
	now         func() time.Time
}

func NewScrapingService(competitors store.CompetitorStore, jobs store.ScrapingJobStore, results store.ScrapingResultStore, producer queue.Producer) ScrapingService {
	return &scrapingService{
		competitors: competitors,
		jobs:        jobs,
		results:     results,
		producer:    producer,
		now:         time.Now,
	}
}

func (s *scrapingService) Create(ctx context.Context, userID, competitorID int64, params CreateScrapingJobParams) (*model.ScrapingJob, error) {
	competitor, err := s.competitors.GetByID(ctx, userID, competitorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("getting competitor: %w", err)
	}

	job := &model.ScrapingJob{
		ID:               id.New(),
		UserID:           userID,
		CompetitorID:     competitorID,
		JobType:          model.ScrapeJobType(params.JobType),
		FrequencyMinutes: params.FrequencyMinutes,
		Status:           model.ScrapeJobActive,
		NextRunAt:        s.now(),
	}
	if job.FrequencyMinutes == 0 {
		job.FrequencyMinutes = defaultScrapeFrequency
	}

	var v validator
	v.check(job.JobType.Valid(), "job_type", oneOf(scrapeJobTypes...))
	v.check(validFrequency(job.FrequencyMinutes), "frequency_minutes", frequencyMessage())

	target := competitor.Website
	if params.URL != nil {
		u, ok := normalizeURL(*params.URL)
		v.check(ok, "url", "must be an http or https URL")
		target = u
	}
	v.check(target != nil, "url", "required when the competitor has no website")
	if err := v.err(); err != nil {
		return nil, err
	}
	job.URL = *target

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating scraping job: %w", err)
	}

	slog.InfoContext(ctx, "scraping job created",
		"job_id", job.ID,
		"competitor_id", competitorID,
		"job_type", job.JobType,
		"frequency_minutes", job.FrequencyMinutes)
	return job, nil
}

func (s *scrapingService) Get(ctx context.Context, userID, jobID int64) (*model.ScrapingJob, error) {
	job, err := s.jobs.GetByID(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrScrapingJobNotFound
		}
		return nil, fmt.Errorf("getting scraping job: %w", err)
	}
	return job, nil
}

func (s *scrapingService) Update(ctx context.Context, userID, jobID int64, params UpdateScrapingJobParams) (*model.ScrapingJob, error) {
	job, err := s.Get(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	var v validator
	wasPaused := job.Status == model.ScrapeJobPaused
	if params.Status != nil {
		job.Status = model.ScrapeJobStatus(*params.Status)
		v.check(job.Status.Valid(), "status", oneOf(model.ScrapeJobActive, model.ScrapeJobPaused))
	}
	if params.FrequencyMinutes != nil {
		v.check(validFrequency(*params.FrequencyMinutes), "frequency_minutes", frequencyMessage())
		if *params.FrequencyMinutes != job.FrequencyMinutes {
			job.FrequencyMinutes = *params.FrequencyMinutes
			job.NextRunAt = s.now().Add(time.Duration(job.FrequencyMinutes) * time.Minute)
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	// Resumed jobs run on the next scheduler tick.
	if wasPaused && job.Status == model.ScrapeJobActive {
		job.NextRunAt = s.now()
	}

	if err := s.jobs.UpdateSettings(ctx, job); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrScrapingJobNotFound
		}
		return nil, fmt.Errorf("updating scraping job: %w", err)
	}
	return job, nil
}

func (s *scrapingService) Delete(ctx context.Context, userID, jobID int64) error {
	if err := s.jobs.Delete(ctx, userID, jobID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrScrapingJobNotFound
		}
		return fmt.Errorf("deleting scraping job: %w", err)
	}
	return nil
}

func (s *scrapingService) RunNow(ctx context.Context, userID, jobID int64) error {
	job, err := s.Get(ctx, userID, jobID)
	if err != nil {
		return err
	}
	if job.Status != model.ScrapeJobActive {
		return invalid("status", "paused jobs cannot be run; resume the job first")
	}

	if err := s.producer.Enqueue(ctx, queue.ScrapeTask(job.ID, userID)); err != nil {
		if errors.Is(err, queue.ErrQueueDisabled) {
			return ErrFeatureUnavailable
		}
		slog.ErrorContext(ctx, "failed to enqueue scrape", "error", err, "job_id", job.ID)
		return fmt.Errorf("enqueueing scrape: %w", err)
	}
	return nil
}

func (s *scrapingService) Results(ctx context.Context, userID, jobID int64, limit int) ([]model.ScrapingResult, error) {
	if _, err := s.Get(ctx, userID, jobID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultResultLimit
	}
	results, err := s.results.ListByJob(ctx, jobID, int32(min(limit, maxResultLimit)))
	if err != nil {
		return nil, fmt.Errorf("listing scraping results: %w", err)
	}
	return results, nil
}

func validFrequency(minutes int) bool {
	return minutes >= model.MinScrapeFrequency && minutes <= model.MaxScrapeFrequency
}

func frequencyMessage() string {
	return fmt.Sprintf("must be between %d and %d minutes", model.MinScrapeFrequency, model.MaxScrapeFrequency)
}
