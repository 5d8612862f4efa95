package store

import (
	"context"
	"time"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	row, err := s.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		ID:          task.ID,
		UserID:      task.UserID,
		GoalID:      task.GoalID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     toTimestamptz(task.DueDate),
		CompletedAt: toTimestamptz(task.CompletedAt),
		Tags:        tagsOrEmpty(task.Tags),
	})
	if err != nil {
		return err
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) GetByID(ctx context.Context, userID, id int64) (*model.Task, error) {
	row, err := s.queries.GetTask(ctx, sqlc.GetTaskParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toTaskModel(row), nil
}

func (s *taskStore) List(ctx context.Context, userID int64, filter model.TaskFilter) ([]model.Task, error) {
	rows, err := s.queries.ListTasks(ctx, sqlc.ListTasksParams{
		UserID:   userID,
		Status:   stringPtr(filter.Status),
		Priority: stringPtr(filter.Priority),
		GoalID:   filter.GoalID,
	})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toTaskModel), nil
}

func (s *taskStore) Update(ctx context.Context, task *model.Task) error {
	row, err := s.queries.UpdateTask(ctx, sqlc.UpdateTaskParams{
		ID:          task.ID,
		UserID:      task.UserID,
		GoalID:      task.GoalID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     toTimestamptz(task.DueDate),
		CompletedAt: toTimestamptz(task.CompletedAt),
		Tags:        tagsOrEmpty(task.Tags),
	})
	if err != nil {
		return notFound(err)
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteTask(ctx, sqlc.DeleteTaskParams{ID: id, UserID: userID}))
}

func (s *taskStore) BulkUpdate(ctx context.Context, userID int64, ids []int64, status *model.TaskStatus, priority *model.TaskPriority) (int, []int64, error) {
	rows, err := s.queries.BulkUpdateTasks(ctx, sqlc.BulkUpdateTasksParams{
		UserID:   userID,
		Ids:      ids,
		Status:   stringPtr(status),
		Priority: stringPtr(priority),
	})
	if err != nil {
		return 0, nil, err
	}

	seen := make(map[int64]struct{})
	var goalIDs []int64
	for _, row := range rows {
		if row.GoalID == nil {
			continue
		}
		if _, ok := seen[*row.GoalID]; ok {
			continue
		}
		seen[*row.GoalID] = struct{}{}
		goalIDs = append(goalIDs, *row.GoalID)
	}
	return len(rows), goalIDs, nil
}

func (s *taskStore) CountByStatus(ctx context.Context, userID int64) (map[model.TaskStatus]int64, error) {
	rows, err := s.queries.CountTasksByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts := make(map[model.TaskStatus]int64, len(model.TaskStatuses))
	for _, st := range model.TaskStatuses {
		counts[st] = 0
	}
	for _, row := range rows {
		counts[model.TaskStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (s *taskStore) ListOpenDueBefore(ctx context.Context, userID int64, before time.Time, limit int32) ([]model.Task, error) {
	rows, err := s.queries.ListTasksDueBefore(ctx, sqlc.ListTasksDueBeforeParams{
		UserID:     userID,
		DueBefore:  timestamptz(before),
		MaxResults: limit,
	})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toTaskModel), nil
}

func toTaskModel(row sqlc.Task) *model.Task {
	return &model.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		GoalID:      row.GoalID,
		Title:       row.Title,
		Description: row.Description,
		Status:      model.TaskStatus(row.Status),
		Priority:    model.TaskPriority(row.Priority),
		DueDate:     timePtr(row.DueDate),
		CompletedAt: timePtr(row.CompletedAt),
		Tags:        tagsOrEmpty(row.Tags),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
