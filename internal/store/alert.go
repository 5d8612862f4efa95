package store

import (
	"context"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/domain"
	"solosuccess.app/api/internal/model"
)

type alertStore struct {
	queries *sqlc.Queries
}

func newAlertStore(queries *sqlc.Queries) AlertStore {
	return &alertStore{queries: queries}
}

func (s *alertStore) Create(ctx context.Context, alert *model.CompetitorAlert) error {
	row, err := s.queries.CreateCompetitorAlert(ctx, sqlc.CreateCompetitorAlertParams{
		ID:           alert.ID,
		UserID:       alert.UserID,
		CompetitorID: alert.CompetitorID,
		AlertType:    alert.AlertType,
		Severity:     string(alert.Severity),
		Title:        alert.Title,
		Description:  alert.Description,
		SourceUrl:    alert.SourceURL,
	})
	if err != nil {
		return err
	}
	*alert = *toAlertModel(row)
	return nil
}

func (s *alertStore) GetByID(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error) {
	row, err := s.queries.GetCompetitorAlert(ctx, sqlc.GetCompetitorAlertParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toAlertModel(row), nil
}

func (s *alertStore) List(ctx context.Context, userID int64, filter model.AlertFilter) ([]model.CompetitorAlert, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.queries.ListCompetitorAlerts(ctx, sqlc.ListCompetitorAlertsParams{
		UserID:       userID,
		CompetitorID: filter.CompetitorID,
		UnreadOnly:   filter.UnreadOnly,
		MaxResults:   limit,
	})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toAlertModel), nil
}

func (s *alertStore) MarkRead(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error) {
	row, err := s.queries.MarkAlertRead(ctx, sqlc.MarkAlertReadParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toAlertModel(row), nil
}

func (s *alertStore) Archive(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error) {
	row, err := s.queries.ArchiveAlert(ctx, sqlc.ArchiveAlertParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toAlertModel(row), nil
}

func (s *alertStore) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.queries.MarkAllAlertsRead(ctx, userID)
}

func (s *alertStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountUnreadAlerts(ctx, userID)
}

func toAlertModel(row sqlc.CompetitorAlert) *model.CompetitorAlert {
	return &model.CompetitorAlert{
		ID:           row.ID,
		UserID:       row.UserID,
		CompetitorID: row.CompetitorID,
		AlertType:    row.AlertType,
		Severity:     model.AlertSeverity(row.Severity),
		Title:        row.Title,
		Description:  row.Description,
		SourceURL:    row.SourceUrl,
		IsRead:       row.IsRead,
		IsArchived:   row.IsArchived,
		CreatedAt:    row.CreatedAt.Time,
	}
}

type opportunityStore struct {
	queries *sqlc.Queries
}

func newOpportunityStore(queries *sqlc.Queries) OpportunityStore {
	return &opportunityStore{queries: queries}
}

func (s *opportunityStore) Create(ctx context.Context, o *model.Opportunity) error {
	row, err := s.queries.CreateOpportunity(ctx, sqlc.CreateOpportunityParams{
		ID:              o.ID,
		UserID:          o.UserID,
		CompetitorID:    o.CompetitorID,
		AlertID:         o.AlertID,
		Title:           o.Title,
		Description:     o.Description,
		OpportunityType: o.OpportunityType,
		Confidence:      o.Confidence,
		Impact:          string(o.Impact),
		Effort:          string(o.Effort),
		Timing:          string(o.Timing),
		PriorityScore:   int32(o.PriorityScore),
		Status:          string(o.Status),
	})
	if err != nil {
		return err
	}
	*o = *toOpportunityModel(row)
	return nil
}

func (s *opportunityStore) GetByID(ctx context.Context, userID, id int64) (*model.Opportunity, error) {
	row, err := s.queries.GetOpportunity(ctx, sqlc.GetOpportunityParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toOpportunityModel(row), nil
}

func (s *opportunityStore) GetByAlert(ctx context.Context, userID, alertID int64) (*model.Opportunity, error) {
	row, err := s.queries.GetOpportunityByAlert(ctx, sqlc.GetOpportunityByAlertParams{AlertID: &alertID, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toOpportunityModel(row), nil
}

func (s *opportunityStore) List(ctx context.Context, userID int64, status *model.OpportunityStatus, minScore int) ([]model.Opportunity, error) {
	rows, err := s.queries.ListOpportunities(ctx, sqlc.ListOpportunitiesParams{
		UserID:   userID,
		Status:   stringPtr(status),
		MinScore: int32(minScore),
	})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toOpportunityModel), nil
}

func (s *opportunityStore) Update(ctx context.Context, o *model.Opportunity) error {
	row, err := s.queries.UpdateOpportunity(ctx, sqlc.UpdateOpportunityParams{
		Title:           o.Title,
		Description:     o.Description,
		OpportunityType: o.OpportunityType,
		Confidence:      o.Confidence,
		Impact:          string(o.Impact),
		Effort:          string(o.Effort),
		Timing:          string(o.Timing),
		PriorityScore:   int32(o.PriorityScore),
		Status:          string(o.Status),
		ID:              o.ID,
		UserID:          o.UserID,
	})
	if err != nil {
		return notFound(err)
	}
	*o = *toOpportunityModel(row)
	return nil
}

func (s *opportunityStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteOpportunity(ctx, sqlc.DeleteOpportunityParams{ID: id, UserID: userID}))
}

func toOpportunityModel(row sqlc.Opportunity) *model.Opportunity {
	return &model.Opportunity{
		ID:              row.ID,
		UserID:          row.UserID,
		CompetitorID:    row.CompetitorID,
		AlertID:         row.AlertID,
		Title:           row.Title,
		Description:     row.Description,
		OpportunityType: row.OpportunityType,
		Confidence:      row.Confidence,
		Impact:          model.Impact(row.Impact),
		Effort:          model.Effort(row.Effort),
		Timing:          model.Timing(row.Timing),
		PriorityScore:   int(row.PriorityScore),
		PriorityLevel:   domain.Level(int(row.PriorityScore)),
		Status:          model.OpportunityStatus(row.Status),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
