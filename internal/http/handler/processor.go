package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/social"
)

// SocialProcessor is the operator surface of the scheduled post publisher.
type SocialProcessor interface {
	Start(interval time.Duration) error
	Stop() error
	Status() social.Status
	ProcessNow(ctx context.Context) (social.CycleResult, error)
}

type ProcessorHandler struct {
	processor       SocialProcessor
	defaultInterval time.Duration
}

func NewProcessorHandler(processor SocialProcessor, defaultInterval time.Duration) *ProcessorHandler {
	return &ProcessorHandler{processor: processor, defaultInterval: defaultInterval}
}

func (h *ProcessorHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.processor.Status())
}

func (h *ProcessorHandler) Start(c *gin.Context) {
	var req dto.StartProcessorRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	interval := h.defaultInterval
	if req.IntervalSeconds > 0 {
		interval = time.Duration(req.IntervalSeconds) * time.Second
	}

	if err := h.processor.Start(interval); err != nil {
		respondError(c, err, "start processor")
		return
	}

	slog.InfoContext(c.Request.Context(), "social processor started by operator", "interval", interval)
	c.JSON(http.StatusOK, h.processor.Status())
}

func (h *ProcessorHandler) Stop(c *gin.Context) {
	if err := h.processor.Stop(); err != nil {
		respondError(c, err, "stop processor")
		return
	}

	slog.InfoContext(c.Request.Context(), "social processor stopped by operator")
	c.JSON(http.StatusOK, h.processor.Status())
}

func (h *ProcessorHandler) ProcessNow(c *gin.Context) {
	result, err := h.processor.ProcessNow(c.Request.Context())
	if err != nil {
		respondError(c, err, "process posts")
		return
	}
	c.JSON(http.StatusOK, result)
}
