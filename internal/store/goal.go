package store

import (
	"context"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type goalStore struct {
	queries *sqlc.Queries
}

func newGoalStore(queries *sqlc.Queries) GoalStore {
	return &goalStore{queries: queries}
}

func (s *goalStore) Create(ctx context.Context, goal *model.Goal) error {
	row, err := s.queries.CreateGoal(ctx, sqlc.CreateGoalParams{
		ID:          goal.ID,
		UserID:      goal.UserID,
		Title:       goal.Title,
		Description: goal.Description,
		Category:    goal.Category,
		Status:      string(goal.Status),
		TargetDate:  toTimestamptz(goal.TargetDate),
	})
	if err != nil {
		return err
	}
	*goal = *toGoalModel(row)
	return nil
}

func (s *goalStore) GetByID(ctx context.Context, userID, id int64) (*model.Goal, error) {
	row, err := s.queries.GetGoal(ctx, sqlc.GetGoalParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toGoalModel(row), nil
}

func (s *goalStore) GetByTitle(ctx context.Context, userID int64, title string) (*model.Goal, error) {
	row, err := s.queries.GetGoalByTitle(ctx, sqlc.GetGoalByTitleParams{UserID: userID, Title: title})
	if err != nil {
		return nil, notFound(err)
	}
	return toGoalModel(row), nil
}

func (s *goalStore) List(ctx context.Context, userID int64, status *model.GoalStatus) ([]model.Goal, error) {
	rows, err := s.queries.ListGoals(ctx, sqlc.ListGoalsParams{
		UserID: userID,
		Status: stringPtr(status),
	})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toGoalModel), nil
}

func (s *goalStore) Update(ctx context.Context, goal *model.Goal) error {
	row, err := s.queries.UpdateGoal(ctx, sqlc.UpdateGoalParams{
		ID:          goal.ID,
		UserID:      goal.UserID,
		Title:       goal.Title,
		Description: goal.Description,
		Category:    goal.Category,
		Status:      string(goal.Status),
		TargetDate:  toTimestamptz(goal.TargetDate),
	})
	if err != nil {
		return notFound(err)
	}
	*goal = *toGoalModel(row)
	return nil
}

func (s *goalStore) UpdateProgress(ctx context.Context, id int64, progress int) error {
	return s.queries.UpdateGoalProgress(ctx, sqlc.UpdateGoalProgressParams{
		ID:       id,
		Progress: int32(progress),
	})
}

func (s *goalStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteGoal(ctx, sqlc.DeleteGoalParams{ID: id, UserID: userID}))
}

func (s *goalStore) CountTasks(ctx context.Context, goalID int64) (model.GoalTaskCounts, error) {
	row, err := s.queries.CountGoalTasks(ctx, &goalID)
	if err != nil {
		return model.GoalTaskCounts{}, err
	}
	return model.GoalTaskCounts{
		Total:     row.Total,
		Completed: row.Completed,
		Cancelled: row.Cancelled,
	}, nil
}

func toGoalModel(row sqlc.Goal) *model.Goal {
	return &model.Goal{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		Category:    row.Category,
		Status:      model.GoalStatus(row.Status),
		TargetDate:  timePtr(row.TargetDate),
		Progress:    int(row.Progress),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
