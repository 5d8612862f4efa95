package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

const defaultGoalCategory = "general"

type GoalService interface {
	List(ctx context.Context, userID int64, status string) ([]model.Goal, error)
	Create(ctx context.Context, userID int64, params CreateGoalParams) (*model.Goal, error)
	Get(ctx context.Context, userID, goalID int64) (*model.Goal, error)
	Update(ctx context.Context, userID, goalID int64, params UpdateGoalParams) (*model.Goal, error)
	Delete(ctx context.Context, userID, goalID int64) error
}

type CreateGoalParams struct {
	Title       string
	Description *string
	Category    string
	TargetDate  *time.Time
}

type UpdateGoalParams struct {
	Title           *string
	Description     *string
	Category        *string
	Status          *string
	TargetDate      *time.Time
	ClearTargetDate bool
}

type goalService struct {
	goals store.GoalStore
}

func NewGoalService(goals store.GoalStore) GoalService {
	return &goalService{goals: goals}
}

func (s *goalService) List(ctx context.Context, userID int64, status string) ([]model.Goal, error) {
	var filter *model.GoalStatus
	if status != "" {
		st := model.GoalStatus(status)
		if !st.Valid() {
			return nil, invalid("status", oneOf(model.GoalStatusActive, model.GoalStatusPaused, model.GoalStatusCompleted, model.GoalStatusArchived))
		}
		filter = &st
	}

	goals, err := s.goals.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	return goals, nil
}

func (s *goalService) Create(ctx context.Context, userID int64, params CreateGoalParams) (*model.Goal, error) {
	goal := &model.Goal{
		ID:          id.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		Category:    normalizeCategory(params.Category),
		Status:      model.GoalStatusActive,
		TargetDate:  params.TargetDate,
	}
	if goal.Title == "" || len(goal.Title) > 200 {
		return nil, invalid("title", "must be 1 to 200 characters")
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) Get(ctx context.Context, userID, goalID int64) (*model.Goal, error) {
	goal, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("getting goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) Update(ctx context.Context, userID, goalID int64, params UpdateGoalParams) (*model.Goal, error) {
	goal, err := s.Get(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	var v validator
	if params.Title != nil {
		goal.Title = strings.TrimSpace(*params.Title)
		v.check(goal.Title != "" && len(goal.Title) <= 200, "title", "must be 1 to 200 characters")
	}
	if params.Description != nil {
		goal.Description = trimmedOrNil(*params.Description)
	}
	if params.Category != nil {
		goal.Category = normalizeCategory(*params.Category)
	}
	if params.Status != nil {
		goal.Status = model.GoalStatus(*params.Status)
		v.check(goal.Status.Valid(), "status", oneOf(model.GoalStatusActive, model.GoalStatusPaused, model.GoalStatusCompleted, model.GoalStatusArchived))
	}
	switch {
	case params.ClearTargetDate:
		goal.TargetDate = nil
	case params.TargetDate != nil:
		goal.TargetDate = params.TargetDate
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.goals.Update(ctx, goal); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("updating goal: %w", err)
	}
	return goal, nil
}

// Delete removes the goal; its tasks are kept and detached by the foreign key.
func (s *goalService) Delete(ctx context.Context, userID, goalID int64) error {
	if err := s.goals.Delete(ctx, userID, goalID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrGoalNotFound
		}
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return defaultGoalCategory
	}
	return category
}
