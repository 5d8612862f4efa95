package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/service"
)

type GoalHandler struct {
	goalService service.GoalService
}

func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.goalService.List(c.Request.Context(), userID(c), c.Query("status"))
	if err != nil {
		respondError(c, err, "list goals")
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalHandler) Create(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := h.goalService.Create(c.Request.Context(), userID(c), req.Params())
	if err != nil {
		respondError(c, err, "create goal")
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (h *GoalHandler) Get(c *gin.Context) {
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	goal, err := h.goalService.Get(c.Request.Context(), userID(c), goalID)
	if err != nil {
		respondError(c, err, "get goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) Update(c *gin.Context) {
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := h.goalService.Update(c.Request.Context(), userID(c), goalID, req.Params())
	if err != nil {
		respondError(c, err, "update goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.goalService.Delete(c.Request.Context(), userID(c), goalID); err != nil {
		respondError(c, err, "delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}
