package dto

import (
	"fmt"
	"time"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/service"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	GoalID      *int64     `json:"goal_id,string"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
}

func (r CreateTaskRequest) Params() service.CreateTaskParams {
	return service.CreateTaskParams{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		GoalID:      r.GoalID,
		DueDate:     r.DueDate,
		Tags:        r.Tags,
	}
}

// UpdateTaskRequest leaves absent fields unchanged. Nullable fields are cleared
// through the explicit clear flags.
type UpdateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
	GoalID       *int64     `json:"goal_id,string"`
	ClearGoal    bool       `json:"clear_goal"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	Tags         []string   `json:"tags"`
}

func (r UpdateTaskRequest) Params() service.UpdateTaskParams {
	return service.UpdateTaskParams{
		Title:        r.Title,
		Description:  r.Description,
		Status:       r.Status,
		Priority:     r.Priority,
		GoalID:       r.GoalID,
		ClearGoal:    r.ClearGoal,
		DueDate:      r.DueDate,
		ClearDueDate: r.ClearDueDate,
		Tags:         r.Tags,
	}
}

type BulkUpdateTasksRequest struct {
	TaskIDs  []string `json:"task_ids"`
	Status   *string  `json:"status"`
	Priority *string  `json:"priority"`
}

func (r BulkUpdateTasksRequest) Params() (service.BulkUpdateParams, error) {
	ids, err := ParseIDs(r.TaskIDs)
	if err != nil {
		return service.BulkUpdateParams{}, fmt.Errorf("task_ids: %w", err)
	}
	return service.BulkUpdateParams{TaskIDs: ids, Status: r.Status, Priority: r.Priority}, nil
}

type BulkUpdateTasksResponse struct {
	Updated int `json:"updated"`
}

// ParseIDs converts decimal ID strings, rejecting the whole list on the first bad entry.
func ParseIDs(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		v, err := id.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", s)
		}
		ids = append(ids, v)
	}
	return ids, nil
}
