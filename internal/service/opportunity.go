package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/domain"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

var (
	impacts  = []model.Impact{model.ImpactLow, model.ImpactMedium, model.ImpactHigh, model.ImpactCritical}
	efforts  = []model.Effort{model.EffortLow, model.EffortMedium, model.EffortHigh}
	timings  = []model.Timing{model.TimingImmediate, model.TimingShortTerm, model.TimingMediumTerm, model.TimingLongTerm}
	statuses = []model.OpportunityStatus{model.OpportunityIdentified, model.OpportunityInProgress, model.OpportunityCompleted, model.OpportunityDismissed}
)

type OpportunityService interface {
	// List returns opportunities ranked by priority score, highest first.
	List(ctx context.Context, userID int64, status string, minScore int) ([]model.Opportunity, error)
	Create(ctx context.Context, userID int64, params CreateOpportunityParams) (*model.Opportunity, error)
	Update(ctx context.Context, userID, opportunityID int64, params UpdateOpportunityParams) (*model.Opportunity, error)
	Delete(ctx context.Context, userID, opportunityID int64) error
	// FromAlert drafts an opportunity from a competitor alert and marks the alert read.
	FromAlert(ctx context.Context, userID, alertID int64) (*model.Opportunity, error)
}

type CreateOpportunityParams struct {
	Title           string
	Description     *string
	OpportunityType string
	CompetitorID    *int64
	Confidence      *float64 // default 0.5
	Impact          string   // default medium
	Effort          string   // default medium
	Timing          string   // default medium_term
}

type UpdateOpportunityParams struct {
	Title           *string
	Description     *string
	OpportunityType *string
	Confidence      *float64
	Impact          *string
	Effort          *string
	Timing          *string
	Status          *string
}

type opportunityService struct {
	tx            TxRunner
	opportunities store.OpportunityStore
	competitors   store.CompetitorStore
}

func NewOpportunityService(tx TxRunner, opportunities store.OpportunityStore, competitors store.CompetitorStore) OpportunityService {
	return &opportunityService{tx: tx, opportunities: opportunities, competitors: competitors}
}

func (s *opportunityService) List(ctx context.Context, userID int64, status string, minScore int) ([]model.Opportunity, error) {
	var (
		v      validator
		filter *model.OpportunityStatus
	)
	if status != "" {
		st := model.OpportunityStatus(status)
		v.check(st.Valid(), "status", oneOf(statuses...))
		filter = &st
	}
	v.check(minScore >= 0 && minScore <= 100, "min_score", "must be between 0 and 100")
	if err := v.err(); err != nil {
		return nil, err
	}

	opps, err := s.opportunities.List(ctx, userID, filter, minScore)
	if err != nil {
		return nil, fmt.Errorf("listing opportunities: %w", err)
	}
	return opps, nil
}

func (s *opportunityService) Create(ctx context.Context, userID int64, params CreateOpportunityParams) (*model.Opportunity, error) {
	o := &model.Opportunity{
		ID:              id.New(),
		UserID:          userID,
		CompetitorID:    params.CompetitorID,
		Title:           strings.TrimSpace(params.Title),
		Description:     params.Description,
		OpportunityType: strings.TrimSpace(params.OpportunityType),
		Confidence:      0.5,
		Impact:          model.ImpactMedium,
		Effort:          model.EffortMedium,
		Timing:          model.TimingMediumTerm,
		Status:          model.OpportunityIdentified,
	}
	if o.OpportunityType == "" {
		o.OpportunityType = "general"
	}

	var v validator
	v.check(o.Title != "" && len(o.Title) <= 200, "title", "must be 1 to 200 characters")
	if params.Confidence != nil {
		o.Confidence = *params.Confidence
		v.check(o.Confidence >= 0 && o.Confidence <= 1, "confidence", "must be between 0 and 1")
	}
	if params.Impact != "" {
		o.Impact = model.Impact(params.Impact)
		v.check(o.Impact.Valid(), "impact", oneOf(impacts...))
	}
	if params.Effort != "" {
		o.Effort = model.Effort(params.Effort)
		v.check(o.Effort.Valid(), "effort", oneOf(efforts...))
	}
	if params.Timing != "" {
		o.Timing = model.Timing(params.Timing)
		v.check(o.Timing.Valid(), "timing", oneOf(timings...))
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if o.CompetitorID != nil {
		if _, err := s.competitors.GetByID(ctx, userID, *o.CompetitorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, invalid("competitor_id", "competitor does not exist")
			}
			return nil, fmt.Errorf("getting competitor: %w", err)
		}
	}

	domain.Score(o)
	if err := s.opportunities.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("creating opportunity: %w", err)
	}
	return o, nil
}

func (s *opportunityService) Update(ctx context.Context, userID, opportunityID int64, params UpdateOpportunityParams) (*model.Opportunity, error) {
	o, err := s.opportunities.GetByID(ctx, userID, opportunityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("getting opportunity: %w", err)
	}

	var v validator
	if params.Title != nil {
		o.Title = strings.TrimSpace(*params.Title)
		v.check(o.Title != "" && len(o.Title) <= 200, "title", "must be 1 to 200 characters")
	}
	if params.Description != nil {
		o.Description = trimmedOrNil(*params.Description)
	}
	if params.OpportunityType != nil && strings.TrimSpace(*params.OpportunityType) != "" {
		o.OpportunityType = strings.TrimSpace(*params.OpportunityType)
	}
	if params.Confidence != nil {
		o.Confidence = *params.Confidence
		v.check(o.Confidence >= 0 && o.Confidence <= 1, "confidence", "must be between 0 and 1")
	}
	if params.Impact != nil {
		o.Impact = model.Impact(*params.Impact)
		v.check(o.Impact.Valid(), "impact", oneOf(impacts...))
	}
	if params.Effort != nil {
		o.Effort = model.Effort(*params.Effort)
		v.check(o.Effort.Valid(), "effort", oneOf(efforts...))
	}
	if params.Timing != nil {
		o.Timing = model.Timing(*params.Timing)
		v.check(o.Timing.Valid(), "timing", oneOf(timings...))
	}
	if params.Status != nil {
		o.Status = model.OpportunityStatus(*params.Status)
		v.check(o.Status.Valid(), "status", oneOf(statuses...))
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	domain.Score(o)
	if err := s.opportunities.Update(ctx, o); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("updating opportunity: %w", err)
	}
	return o, nil
}

func (s *opportunityService) Delete(ctx context.Context, userID, opportunityID int64) error {
	if err := s.opportunities.Delete(ctx, userID, opportunityID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOpportunityNotFound
		}
		return fmt.Errorf("deleting opportunity: %w", err)
	}
	return nil
}

func (s *opportunityService) FromAlert(ctx context.Context, userID, alertID int64) (*model.Opportunity, error) {
	var opp model.Opportunity
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		alert, err := stores.Alerts().GetByID(ctx, userID, alertID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAlertNotFound
			}
			return fmt.Errorf("getting alert: %w", err)
		}

		if _, err := stores.Opportunities().GetByAlert(ctx, userID, alertID); err == nil {
			return ErrOpportunityExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking existing opportunity: %w", err)
		}

		opp = domain.OpportunityFromAlert(alert)
		opp.ID = id.New()
		if err := stores.Opportunities().Create(ctx, &opp); err != nil {
			return fmt.Errorf("creating opportunity: %w", err)
		}
		if !alert.IsRead {
			if _, err := stores.Alerts().MarkRead(ctx, userID, alertID); err != nil {
				return fmt.Errorf("marking alert read: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "opportunity created from alert",
		"opportunity_id", opp.ID,
		"alert_id", alertID,
		"priority_score", opp.PriorityScore)
	return &opp, nil
}
