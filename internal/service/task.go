package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

// MaxBulkUpdate caps how many tasks one bulk update may touch.
const MaxBulkUpdate = 100

type TaskService interface {
	List(ctx context.Context, userID int64, params ListTasksParams) ([]model.Task, error)
	Create(ctx context.Context, userID int64, params CreateTaskParams) (*model.Task, error)
	Get(ctx context.Context, userID, taskID int64) (*model.Task, error)
	Update(ctx context.Context, userID, taskID int64, params UpdateTaskParams) (*model.Task, error)
	Delete(ctx context.Context, userID, taskID int64) error
	BulkUpdate(ctx context.Context, userID int64, params BulkUpdateParams) (int, error)
}

type ListTasksParams struct {
	Status   string
	Priority string
	GoalID   *int64
}

type CreateTaskParams struct {
	Title       string
	Description *string
	Status      string // default todo
	Priority    string // default medium
	GoalID      *int64
	DueDate     *time.Time
	Tags        []string
}

type UpdateTaskParams struct {
	Title        *string
	Description  *string
	Status       *string
	Priority     *string
	GoalID       *int64
	ClearGoal    bool
	DueDate      *time.Time
	ClearDueDate bool
	Tags         []string
}

type BulkUpdateParams struct {
	TaskIDs  []int64
	Status   *string
	Priority *string
}

type taskService struct {
	tx    TxRunner
	tasks store.TaskStore
	goals store.GoalStore
	now   func() time.Time
}

func NewTaskService(tx TxRunner, tasks store.TaskStore, goals store.GoalStore) TaskService {
	return &taskService{tx: tx, tasks: tasks, goals: goals, now: time.Now}
}

func (s *taskService) List(ctx context.Context, userID int64, params ListTasksParams) ([]model.Task, error) {
	var (
		v      validator
		filter = model.TaskFilter{GoalID: params.GoalID}
	)
	if params.Status != "" {
		status := model.TaskStatus(params.Status)
		v.check(status.Valid(), "status", oneOf(model.TaskStatuses...))
		filter.Status = &status
	}
	if params.Priority != "" {
		priority := model.TaskPriority(params.Priority)
		v.check(priority.Valid(), "priority", oneOf(model.TaskPriorities...))
		filter.Priority = &priority
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) Create(ctx context.Context, userID int64, params CreateTaskParams) (*model.Task, error) {
	task := &model.Task{
		ID:          id.New(),
		UserID:      userID,
		GoalID:      params.GoalID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		Status:      model.TaskStatusTodo,
		Priority:    model.TaskPriorityMedium,
		DueDate:     params.DueDate,
		Tags:        normalizeTags(params.Tags),
	}

	var v validator
	v.check(task.Title != "" && len(task.Title) <= 200, "title", "must be 1 to 200 characters")
	status := task.Status
	if params.Status != "" {
		status = model.TaskStatus(params.Status)
		v.check(status.Valid(), "status", oneOf(model.TaskStatuses...))
	}
	if params.Priority != "" {
		task.Priority = model.TaskPriority(params.Priority)
		v.check(task.Priority.Valid(), "priority", oneOf(model.TaskPriorities...))
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	task.ApplyStatus(status, s.now())

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if err := checkGoalOwned(ctx, stores, userID, task.GoalID); err != nil {
			return err
		}
		if err := stores.Tasks().Create(ctx, task); err != nil {
			return fmt.Errorf("creating task: %w", err)
		}
		return recomputeProgress(ctx, stores, task.GoalID)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

func (s *taskService) Get(ctx context.Context, userID, taskID int64) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, userID, taskID int64, params UpdateTaskParams) (*model.Task, error) {
	var v validator
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		v.check(title != "" && len(title) <= 200, "title", "must be 1 to 200 characters")
		params.Title = &title
	}
	if params.Status != nil {
		v.check(model.TaskStatus(*params.Status).Valid(), "status", oneOf(model.TaskStatuses...))
	}
	if params.Priority != nil {
		v.check(model.TaskPriority(*params.Priority).Valid(), "priority", oneOf(model.TaskPriorities...))
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	var task *model.Task
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		task, err = stores.Tasks().GetByID(ctx, userID, taskID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("getting task: %w", err)
		}

		oldGoal, oldStatus := task.GoalID, task.Status

		if params.Title != nil {
			task.Title = *params.Title
		}
		if params.Description != nil {
			task.Description = trimmedOrNil(*params.Description)
		}
		if params.Priority != nil {
			task.Priority = model.TaskPriority(*params.Priority)
		}
		if params.Status != nil {
			task.ApplyStatus(model.TaskStatus(*params.Status), s.now())
		}
		switch {
		case params.ClearGoal:
			task.GoalID = nil
		case params.GoalID != nil:
			if err := checkGoalOwned(ctx, stores, userID, params.GoalID); err != nil {
				return err
			}
			task.GoalID = params.GoalID
		}
		switch {
		case params.ClearDueDate:
			task.DueDate = nil
		case params.DueDate != nil:
			task.DueDate = params.DueDate
		}
		if params.Tags != nil {
			task.Tags = normalizeTags(params.Tags)
		}

		if err := stores.Tasks().Update(ctx, task); err != nil {
			return fmt.Errorf("updating task: %w", err)
		}

		if task.Status == oldStatus && sameGoal(oldGoal, task.GoalID) {
			return nil
		}
		return recomputeProgress(ctx, stores, oldGoal, task.GoalID)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, userID, taskID int64) error {
	return s.tx.WithTx(ctx, func(stores StoreProvider) error {
		task, err := stores.Tasks().GetByID(ctx, userID, taskID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("getting task: %w", err)
		}
		if err := stores.Tasks().Delete(ctx, userID, taskID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("deleting task: %w", err)
		}
		return recomputeProgress(ctx, stores, task.GoalID)
	})
}

func (s *taskService) BulkUpdate(ctx context.Context, userID int64, params BulkUpdateParams) (int, error) {
	var (
		v        validator
		status   *model.TaskStatus
		priority *model.TaskPriority
	)
	v.check(len(params.TaskIDs) >= 1 && len(params.TaskIDs) <= MaxBulkUpdate, "task_ids", fmt.Sprintf("must contain 1 to %d ids", MaxBulkUpdate))
	v.check(params.Status != nil || params.Priority != nil, "status", "status or priority is required")
	if params.Status != nil {
		st := model.TaskStatus(*params.Status)
		v.check(st.Valid(), "status", oneOf(model.TaskStatuses...))
		status = &st
	}
	if params.Priority != nil {
		pr := model.TaskPriority(*params.Priority)
		v.check(pr.Valid(), "priority", oneOf(model.TaskPriorities...))
		priority = &pr
	}
	if err := v.err(); err != nil {
		return 0, err
	}

	ids := slices.Clone(params.TaskIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	var updated int
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		n, goalIDs, err := stores.Tasks().BulkUpdate(ctx, userID, ids, status, priority)
		if err != nil {
			return fmt.Errorf("bulk updating tasks: %w", err)
		}
		updated = n
		if status == nil {
			return nil
		}
		for _, goalID := range goalIDs {
			if err := recomputeProgress(ctx, stores, &goalID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "tasks bulk updated", "user_id", userID, "requested", len(ids), "updated", updated)
	return updated, nil
}

func checkGoalOwned(ctx context.Context, stores StoreProvider, userID int64, goalID *int64) error {
	if goalID == nil {
		return nil
	}
	if _, err := stores.Goals().GetByID(ctx, userID, *goalID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalid("goal_id", "goal does not exist")
		}
		return fmt.Errorf("getting goal: %w", err)
	}
	return nil
}

// recomputeProgress refreshes the stored progress of each distinct, non-nil goal.
func recomputeProgress(ctx context.Context, stores StoreProvider, goalIDs ...*int64) error {
	seen := make(map[int64]bool, len(goalIDs))
	for _, goalID := range goalIDs {
		if goalID == nil || seen[*goalID] {
			continue
		}
		seen[*goalID] = true

		counts, err := stores.Goals().CountTasks(ctx, *goalID)
		if err != nil {
			return fmt.Errorf("counting goal tasks: %w", err)
		}
		if err := stores.Goals().UpdateProgress(ctx, *goalID, counts.Progress()); err != nil {
			return fmt.Errorf("updating goal progress: %w", err)
		}
	}
	return nil
}

func sameGoal(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
