package store

import (
	"context"
	"encoding/json"
	"time"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type competitorStore struct {
	queries *sqlc.Queries
}

func newCompetitorStore(queries *sqlc.Queries) CompetitorStore {
	return &competitorStore{queries: queries}
}

func (s *competitorStore) Create(ctx context.Context, c *model.Competitor) error {
	row, err := s.queries.CreateCompetitor(ctx, sqlc.CreateCompetitorParams{
		ID:            c.ID,
		UserID:        c.UserID,
		Name:          c.Name,
		Website:       c.Website,
		Industry:      c.Industry,
		Description:   c.Description,
		ThreatLevel:   string(c.ThreatLevel),
		SocialHandles: jsonOrEmpty(c.SocialHandles),
	})
	if err != nil {
		return err
	}
	*c = *toCompetitorModel(row)
	return nil
}

func (s *competitorStore) GetByID(ctx context.Context, userID, id int64) (*model.Competitor, error) {
	row, err := s.queries.GetCompetitor(ctx, sqlc.GetCompetitorParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toCompetitorModel(row), nil
}

func (s *competitorStore) Get(ctx context.Context, id int64) (*model.Competitor, error) {
	row, err := s.queries.GetCompetitorByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toCompetitorModel(row), nil
}

func (s *competitorStore) List(ctx context.Context, userID int64) ([]model.Competitor, error) {
	rows, err := s.queries.ListCompetitors(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toCompetitorModel), nil
}

func (s *competitorStore) Update(ctx context.Context, c *model.Competitor) error {
	row, err := s.queries.UpdateCompetitor(ctx, sqlc.UpdateCompetitorParams{
		ID:            c.ID,
		UserID:        c.UserID,
		Name:          c.Name,
		Website:       c.Website,
		Industry:      c.Industry,
		Description:   c.Description,
		ThreatLevel:   string(c.ThreatLevel),
		SocialHandles: jsonOrEmpty(c.SocialHandles),
		IsActive:      c.IsActive,
	})
	if err != nil {
		return notFound(err)
	}
	*c = *toCompetitorModel(row)
	return nil
}

func (s *competitorStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteCompetitor(ctx, sqlc.DeleteCompetitorParams{ID: id, UserID: userID}))
}

func (s *competitorStore) Count(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountCompetitors(ctx, userID)
}

func toCompetitorModel(row sqlc.Competitor) *model.Competitor {
	return &model.Competitor{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		Website:       row.Website,
		Industry:      row.Industry,
		Description:   row.Description,
		ThreatLevel:   model.ThreatLevel(row.ThreatLevel),
		SocialHandles: json.RawMessage(row.SocialHandles),
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

type scrapingJobStore struct {
	queries *sqlc.Queries
}

func newScrapingJobStore(queries *sqlc.Queries) ScrapingJobStore {
	return &scrapingJobStore{queries: queries}
}

func (s *scrapingJobStore) Create(ctx context.Context, job *model.ScrapingJob) error {
	row, err := s.queries.CreateScrapingJob(ctx, sqlc.CreateScrapingJobParams{
		ID:               job.ID,
		UserID:           job.UserID,
		CompetitorID:     job.CompetitorID,
		Url:              job.URL,
		JobType:          string(job.JobType),
		FrequencyMinutes: int32(job.FrequencyMinutes),
		NextRunAt:        timestamptz(job.NextRunAt),
	})
	if err != nil {
		return err
	}
	*job = *toScrapingJobModel(row)
	return nil
}

func (s *scrapingJobStore) GetByID(ctx context.Context, userID, id int64) (*model.ScrapingJob, error) {
	row, err := s.queries.GetScrapingJob(ctx, sqlc.GetScrapingJobParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toScrapingJobModel(row), nil
}

func (s *scrapingJobStore) Get(ctx context.Context, id int64) (*model.ScrapingJob, error) {
	row, err := s.queries.GetScrapingJobByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toScrapingJobModel(row), nil
}

func (s *scrapingJobStore) ListByCompetitor(ctx context.Context, userID, competitorID int64) ([]model.ScrapingJob, error) {
	rows, err := s.queries.ListScrapingJobsByCompetitor(ctx, sqlc.ListScrapingJobsByCompetitorParams{
		CompetitorID: competitorID,
		UserID:       userID,
	})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toScrapingJobModel), nil
}

func (s *scrapingJobStore) UpdateSettings(ctx context.Context, job *model.ScrapingJob) error {
	row, err := s.queries.UpdateScrapingJobSettings(ctx, sqlc.UpdateScrapingJobSettingsParams{
		Status:           string(job.Status),
		FrequencyMinutes: int32(job.FrequencyMinutes),
		NextRunAt:        timestamptz(job.NextRunAt),
		ID:               job.ID,
		UserID:           job.UserID,
	})
	if err != nil {
		return notFound(err)
	}
	*job = *toScrapingJobModel(row)
	return nil
}

func (s *scrapingJobStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteScrapingJob(ctx, sqlc.DeleteScrapingJobParams{ID: id, UserID: userID}))
}

func (s *scrapingJobStore) ClaimDue(ctx context.Context, limit int32) ([]model.ScrapingJob, error) {
	rows, err := s.queries.ClaimDueScrapingJobs(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toScrapingJobModel), nil
}

func (s *scrapingJobStore) RecordSuccess(ctx context.Context, id int64, contentHash string) (*model.ScrapingJob, error) {
	row, err := s.queries.RecordScrapingSuccess(ctx, sqlc.RecordScrapingSuccessParams{
		LastContentHash: contentHash,
		ID:              id,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toScrapingJobModel(row), nil
}

func (s *scrapingJobStore) RecordFailure(ctx context.Context, id int64, errMsg string, nextRunAt time.Time, pauseAfter int) (*model.ScrapingJob, error) {
	row, err := s.queries.RecordScrapingFailure(ctx, sqlc.RecordScrapingFailureParams{
		LastError:  errMsg,
		NextRunAt:  timestamptz(nextRunAt),
		PauseAfter: int32(pauseAfter),
		ID:         id,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toScrapingJobModel(row), nil
}

func toScrapingJobModel(row sqlc.ScrapingJob) *model.ScrapingJob {
	return &model.ScrapingJob{
		ID:                  row.ID,
		UserID:              row.UserID,
		CompetitorID:        row.CompetitorID,
		URL:                 row.Url,
		JobType:             model.ScrapeJobType(row.JobType),
		FrequencyMinutes:    int(row.FrequencyMinutes),
		Status:              model.ScrapeJobStatus(row.Status),
		LastRunAt:           timePtr(row.LastRunAt),
		NextRunAt:           row.NextRunAt.Time,
		LastContentHash:     row.LastContentHash,
		ConsecutiveFailures: int(row.ConsecutiveFailures),
		LastError:           row.LastError,
		CreatedAt:           row.CreatedAt.Time,
		UpdatedAt:           row.UpdatedAt.Time,
	}
}

type scrapingResultStore struct {
	queries *sqlc.Queries
}

func newScrapingResultStore(queries *sqlc.Queries) ScrapingResultStore {
	return &scrapingResultStore{queries: queries}
}

func (s *scrapingResultStore) Create(ctx context.Context, result *model.ScrapingResult) error {
	row, err := s.queries.CreateScrapingResult(ctx, sqlc.CreateScrapingResultParams{
		ID:           result.ID,
		JobID:        result.JobID,
		CompetitorID: result.CompetitorID,
		ContentHash:  result.ContentHash,
		Title:        result.Title,
		Description:  result.Description,
		Excerpt:      result.Excerpt,
		Changed:      result.Changed,
	})
	if err != nil {
		return err
	}
	*result = *toScrapingResultModel(row)
	return nil
}

func (s *scrapingResultStore) ListByJob(ctx context.Context, jobID int64, limit int32) ([]model.ScrapingResult, error) {
	rows, err := s.queries.ListScrapingResults(ctx, sqlc.ListScrapingResultsParams{JobID: jobID, MaxResults: limit})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toScrapingResultModel), nil
}

func toScrapingResultModel(row sqlc.ScrapingResult) *model.ScrapingResult {
	return &model.ScrapingResult{
		ID:           row.ID,
		JobID:        row.JobID,
		CompetitorID: row.CompetitorID,
		ContentHash:  row.ContentHash,
		Title:        row.Title,
		Description:  row.Description,
		Excerpt:      row.Excerpt,
		Changed:      row.Changed,
		FetchedAt:    row.FetchedAt.Time,
	}
}
