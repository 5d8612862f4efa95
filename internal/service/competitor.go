package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

type CompetitorService interface {
	List(ctx context.Context, userID int64) ([]model.Competitor, error)
	// Create enforces the competitor limit of the user's plan.
	Create(ctx context.Context, userID int64, params CreateCompetitorParams) (*model.Competitor, error)
	Get(ctx context.Context, userID, competitorID int64) (*CompetitorDetail, error)
	Update(ctx context.Context, userID, competitorID int64, params UpdateCompetitorParams) (*model.Competitor, error)
	Delete(ctx context.Context, userID, competitorID int64) error
}

type CreateCompetitorParams struct {
	Name          string
	Website       *string
	Industry      *string
	Description   *string
	ThreatLevel   string // default medium
	SocialHandles json.RawMessage
}

type UpdateCompetitorParams struct {
	Name          *string
	Website       *string
	Industry      *string
	Description   *string
	ThreatLevel   *string
	SocialHandles json.RawMessage
	IsActive      *bool
}

// CompetitorDetail is a competitor with its monitoring jobs.
type CompetitorDetail struct {
	model.Competitor
	ScrapingJobs []model.ScrapingJob `json:"scraping_jobs"`
}

// PlanLimitError is returned when an action would exceed the caller's plan.
type PlanLimitError struct {
	Resource string
	Tier     model.SubscriptionTier
	Limit    int
}

func (e *PlanLimitError) Error() string {
	return fmt.Sprintf("the %s plan allows %d %s", e.Tier, e.Limit, e.Resource)
}

func (e *PlanLimitError) Unwrap() error { return ErrPlanLimitReached }

var threatLevels = []model.ThreatLevel{model.ThreatLow, model.ThreatMedium, model.ThreatHigh, model.ThreatCritical}

type competitorService struct {
	competitors   store.CompetitorStore
	jobs          store.ScrapingJobStore
	subscriptions store.SubscriptionStore
}

func NewCompetitorService(competitors store.CompetitorStore, jobs store.ScrapingJobStore, subscriptions store.SubscriptionStore) CompetitorService {
	return &competitorService{
		competitors:   competitors,
		jobs:          jobs,
		subscriptions: subscriptions,
	}
}

func (s *competitorService) List(ctx context.Context, userID int64) ([]model.Competitor, error) {
	competitors, err := s.competitors.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing competitors: %w", err)
	}
	return competitors, nil
}

func (s *competitorService) Create(ctx context.Context, userID int64, params CreateCompetitorParams) (*model.Competitor, error) {
	c := &model.Competitor{
		ID:            id.New(),
		UserID:        userID,
		Name:          strings.TrimSpace(params.Name),
		Industry:      params.Industry,
		Description:   params.Description,
		ThreatLevel:   model.ThreatMedium,
		SocialHandles: params.SocialHandles,
		IsActive:      true,
	}

	var v validator
	v.check(c.Name != "" && len(c.Name) <= 200, "name", "must be 1 to 200 characters")
	if params.ThreatLevel != "" {
		c.ThreatLevel = model.ThreatLevel(params.ThreatLevel)
		v.check(c.ThreatLevel.Valid(), "threat_level", oneOf(threatLevels...))
	}
	if params.Website != nil {
		website, ok := normalizeURL(*params.Website)
		v.check(ok, "website", "must be an http or https URL")
		c.Website = website
	}
	if len(c.SocialHandles) > 0 {
		v.check(json.Valid(c.SocialHandles), "social_handles", "must be valid JSON")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.checkLimit(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.competitors.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating competitor: %w", err)
	}

	slog.InfoContext(ctx, "competitor created", "competitor_id", c.ID, "user_id", userID)
	return c, nil
}

func (s *competitorService) checkLimit(ctx context.Context, userID int64) error {
	sub, err := s.subscriptions.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("getting subscription: %w", err)
	}

	tier := sub.EffectiveTier()
	limit := tier.CompetitorLimit()
	if limit == model.Unlimited {
		return nil
	}

	count, err := s.competitors.Count(ctx, userID)
	if err != nil {
		return fmt.Errorf("counting competitors: %w", err)
	}
	if count >= int64(limit) {
		return &PlanLimitError{Resource: "competitors", Tier: tier, Limit: limit}
	}
	return nil
}

func (s *competitorService) Get(ctx context.Context, userID, competitorID int64) (*CompetitorDetail, error) {
	c, err := s.getCompetitor(ctx, userID, competitorID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListByCompetitor(ctx, userID, competitorID)
	if err != nil {
		return nil, fmt.Errorf("listing scraping jobs: %w", err)
	}
	return &CompetitorDetail{Competitor: *c, ScrapingJobs: jobs}, nil
}

func (s *competitorService) Update(ctx context.Context, userID, competitorID int64, params UpdateCompetitorParams) (*model.Competitor, error) {
	c, err := s.getCompetitor(ctx, userID, competitorID)
	if err != nil {
		return nil, err
	}

	var v validator
	if params.Name != nil {
		c.Name = strings.TrimSpace(*params.Name)
		v.check(c.Name != "" && len(c.Name) <= 200, "name", "must be 1 to 200 characters")
	}
	if params.Website != nil {
		website, ok := normalizeURL(*params.Website)
		v.check(ok, "website", "must be an http or https URL")
		c.Website = website
	}
	if params.Industry != nil {
		c.Industry = trimmedOrNil(*params.Industry)
	}
	if params.Description != nil {
		c.Description = trimmedOrNil(*params.Description)
	}
	if params.ThreatLevel != nil {
		c.ThreatLevel = model.ThreatLevel(*params.ThreatLevel)
		v.check(c.ThreatLevel.Valid(), "threat_level", oneOf(threatLevels...))
	}
	if params.SocialHandles != nil {
		v.check(json.Valid(params.SocialHandles), "social_handles", "must be valid JSON")
		c.SocialHandles = params.SocialHandles
	}
	if params.IsActive != nil {
		c.IsActive = *params.IsActive
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.competitors.Update(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("updating competitor: %w", err)
	}
	return c, nil
}

// Delete removes the competitor; its jobs, results and alerts cascade.
func (s *competitorService) Delete(ctx context.Context, userID, competitorID int64) error {
	if err := s.competitors.Delete(ctx, userID, competitorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCompetitorNotFound
		}
		return fmt.Errorf("deleting competitor: %w", err)
	}
	return nil
}

func (s *competitorService) getCompetitor(ctx context.Context, userID, competitorID int64) (*model.Competitor, error) {
	c, err := s.competitors.GetByID(ctx, userID, competitorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("getting competitor: %w", err)
	}
	return c, nil
}

// normalizeURL accepts absolute http(s) URLs; a blank value clears the field.
func normalizeURL(raw string) (*string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, false
	}
	s := u.String()
	return &s, true
}
