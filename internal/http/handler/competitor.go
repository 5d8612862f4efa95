package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

type CompetitorHandler struct {
	competitorService service.CompetitorService
	scrapingService   service.ScrapingService
	alertService      service.AlertService
}

func NewCompetitorHandler(
	competitorService service.CompetitorService,
	scrapingService service.ScrapingService,
	alertService service.AlertService,
) *CompetitorHandler {
	return &CompetitorHandler{
		competitorService: competitorService,
		scrapingService:   scrapingService,
		alertService:      alertService,
	}
}

func (h *CompetitorHandler) List(c *gin.Context) {
	competitors, err := h.competitorService.List(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "list competitors")
		return
	}
	c.JSON(http.StatusOK, competitors)
}

func (h *CompetitorHandler) Create(c *gin.Context) {
	var req dto.CreateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	competitor, err := h.competitorService.Create(c.Request.Context(), userID(c), req.Params())
	if err != nil {
		respondError(c, err, "create competitor")
		return
	}
	c.JSON(http.StatusCreated, competitor)
}

func (h *CompetitorHandler) Get(c *gin.Context) {
	competitorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.competitorService.Get(c.Request.Context(), userID(c), competitorID)
	if err != nil {
		respondError(c, err, "get competitor")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *CompetitorHandler) Update(c *gin.Context) {
	competitorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	competitor, err := h.competitorService.Update(c.Request.Context(), userID(c), competitorID, req.Params())
	if err != nil {
		respondError(c, err, "update competitor")
		return
	}
	c.JSON(http.StatusOK, competitor)
}

func (h *CompetitorHandler) Delete(c *gin.Context) {
	competitorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.competitorService.Delete(c.Request.Context(), userID(c), competitorID); err != nil {
		respondError(c, err, "delete competitor")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompetitorHandler) CreateScrapingJob(c *gin.Context) {
	competitorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateScrapingJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job, err := h.scrapingService.Create(c.Request.Context(), userID(c), competitorID, req.Params())
	if err != nil {
		respondError(c, err, "create scraping job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *CompetitorHandler) GetScrapingJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	job, err := h.scrapingService.Get(c.Request.Context(), userID(c), jobID)
	if err != nil {
		respondError(c, err, "get scraping job")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *CompetitorHandler) UpdateScrapingJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	var req dto.UpdateScrapingJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job, err := h.scrapingService.Update(c.Request.Context(), userID(c), jobID, req.Params())
	if err != nil {
		respondError(c, err, "update scraping job")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *CompetitorHandler) DeleteScrapingJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	if err := h.scrapingService.Delete(c.Request.Context(), userID(c), jobID); err != nil {
		respondError(c, err, "delete scraping job")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompetitorHandler) RunScrapingJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	if err := h.scrapingService.RunNow(c.Request.Context(), userID(c), jobID); err != nil {
		respondError(c, err, "queue scraping job")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func (h *CompetitorHandler) ScrapingResults(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = min(v, 100)
	}

	results, err := h.scrapingService.Results(c.Request.Context(), userID(c), jobID, limit)
	if err != nil {
		respondError(c, err, "list scraping results")
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *CompetitorHandler) ListAlerts(c *gin.Context) {
	filter := model.AlertFilter{Limit: 100}

	if raw := c.Query("unread"); raw != "" {
		unread, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unread must be a boolean"})
			return
		}
		filter.UnreadOnly = unread
	}
	if raw := c.Query("competitor_id"); raw != "" {
		competitorID, err := id.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid competitor_id"})
			return
		}
		filter.CompetitorID = &competitorID
	}

	alerts, err := h.alertService.List(c.Request.Context(), userID(c), filter)
	if err != nil {
		respondError(c, err, "list alerts")
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *CompetitorHandler) MarkAlertRead(c *gin.Context) {
	alertID, ok := pathID(c, "id")
	if !ok {
		return
	}

	alert, err := h.alertService.MarkRead(c.Request.Context(), userID(c), alertID)
	if err != nil {
		respondError(c, err, "mark alert read")
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (h *CompetitorHandler) ArchiveAlert(c *gin.Context) {
	alertID, ok := pathID(c, "id")
	if !ok {
		return
	}

	alert, err := h.alertService.Archive(c.Request.Context(), userID(c), alertID)
	if err != nil {
		respondError(c, err, "archive alert")
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (h *CompetitorHandler) MarkAllAlertsRead(c *gin.Context) {
	updated, err := h.alertService.MarkAllRead(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "mark alerts read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}
