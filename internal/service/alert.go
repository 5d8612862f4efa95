package service

import (
	"context"
	"errors"
	"fmt"

	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

type AlertService interface {
	List(ctx context.Context, userID int64, filter model.AlertFilter) ([]model.CompetitorAlert, error)
	MarkRead(ctx context.Context, userID, alertID int64) (*model.CompetitorAlert, error)
	Archive(ctx context.Context, userID, alertID int64) (*model.CompetitorAlert, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

type alertService struct {
	alerts store.AlertStore
}

func NewAlertService(alerts store.AlertStore) AlertService {
	return &alertService{alerts: alerts}
}

func (s *alertService) List(ctx context.Context, userID int64, filter model.AlertFilter) ([]model.CompetitorAlert, error) {
	alerts, err := s.alerts.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) MarkRead(ctx context.Context, userID, alertID int64) (*model.CompetitorAlert, error) {
	alert, err := s.alerts.MarkRead(ctx, userID, alertID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("marking alert read: %w", err)
	}
	return alert, nil
}

func (s *alertService) Archive(ctx context.Context, userID, alertID int64) (*model.CompetitorAlert, error) {
	alert, err := s.alerts.Archive(ctx, userID, alertID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("archiving alert: %w", err)
	}
	return alert, nil
}

func (s *alertService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	n, err := s.alerts.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("marking alerts read: %w", err)
	}
	return n, nil
}
