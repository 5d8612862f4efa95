package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/service"
)

type OpportunityHandler struct {
	opportunityService service.OpportunityService
}

func NewOpportunityHandler(opportunityService service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunityService: opportunityService}
}

func (h *OpportunityHandler) List(c *gin.Context) {
	minScore := 0
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_score must be an integer between 0 and 100"})
			return
		}
		minScore = v
	}

	opportunities, err := h.opportunityService.List(c.Request.Context(), userID(c), c.Query("status"), minScore)
	if err != nil {
		respondError(c, err, "list opportunities")
		return
	}
	c.JSON(http.StatusOK, opportunities)
}

func (h *OpportunityHandler) Create(c *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	opp, err := h.opportunityService.Create(c.Request.Context(), userID(c), req.Params())
	if err != nil {
		respondError(c, err, "create opportunity")
		return
	}
	c.JSON(http.StatusCreated, opp)
}

func (h *OpportunityHandler) Update(c *gin.Context) {
	opportunityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	opp, err := h.opportunityService.Update(c.Request.Context(), userID(c), opportunityID, req.Params())
	if err != nil {
		respondError(c, err, "update opportunity")
		return
	}
	c.JSON(http.StatusOK, opp)
}

func (h *OpportunityHandler) Delete(c *gin.Context) {
	opportunityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.opportunityService.Delete(c.Request.Context(), userID(c), opportunityID); err != nil {
		respondError(c, err, "delete opportunity")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OpportunityHandler) FromAlert(c *gin.Context) {
	alertID, ok := pathID(c, "id")
	if !ok {
		return
	}

	opp, err := h.opportunityService.FromAlert(c.Request.Context(), userID(c), alertID)
	if err != nil {
		respondError(c, err, "create opportunity from alert")
		return
	}
	c.JSON(http.StatusCreated, opp)
}
