package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c *gin.Context) {
	params := service.ListTasksParams{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	if raw := c.Query("goal_id"); raw != "" {
		goalID, err := id.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal_id"})
			return
		}
		params.GoalID = &goalID
	}

	tasks, err := h.taskService.List(c.Request.Context(), userID(c), params)
	if err != nil {
		respondError(c, err, "list tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), userID(c), req.Params())
	if err != nil {
		respondError(c, err, "create task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Get(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), userID(c), taskID)
	if err != nil {
		respondError(c, err, "get task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), userID(c), taskID, req.Params())
	if err != nil {
		respondError(c, err, "update task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), userID(c), taskID); err != nil {
		respondError(c, err, "delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	params, err := req.Params()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": gin.H{"task_ids": err.Error()}})
		return
	}

	updated, err := h.taskService.BulkUpdate(c.Request.Context(), userID(c), params)
	if err != nil {
		respondError(c, err, "update tasks")
		return
	}
	c.JSON(http.StatusOK, dto.BulkUpdateTasksResponse{Updated: updated})
}
