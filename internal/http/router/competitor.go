package router

import (
	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/handler"
)

func CompetitorRouter(rg *gin.RouterGroup, h *handler.CompetitorHandler, opportunities *handler.OpportunityHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)

	alerts := rg.Group("/alerts")
	alerts.GET("", h.ListAlerts)
	alerts.POST("/read-all", h.MarkAllAlertsRead)
	alerts.POST("/:id/read", h.MarkAlertRead)
	alerts.POST("/:id/archive", h.ArchiveAlert)
	alerts.POST("/:id/opportunity", opportunities.FromAlert)

	jobs := rg.Group("/scraping")
	jobs.GET("/:jobId", h.GetScrapingJob)
	jobs.PATCH("/:jobId", h.UpdateScrapingJob)
	jobs.DELETE("/:jobId", h.DeleteScrapingJob)
	jobs.POST("/:jobId/run", h.RunScrapingJob)
	jobs.GET("/:jobId/results", h.ScrapingResults)

	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/scraping", h.CreateScrapingJob)
}

func OpportunityRouter(rg *gin.RouterGroup, h *handler.OpportunityHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
