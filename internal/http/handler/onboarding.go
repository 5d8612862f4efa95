package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/service"
)

type OnboardingHandler struct {
	onboardingService service.OnboardingService
}

func NewOnboardingHandler(onboardingService service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

func (h *OnboardingHandler) Complete(c *gin.Context) {
	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.onboardingService.Complete(c.Request.Context(), userID(c), req.Params())
	if err != nil {
		respondError(c, err, "complete onboarding")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OnboardingHandler) State(c *gin.Context) {
	state, err := h.onboardingService.State(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "load onboarding state")
		return
	}
	c.JSON(http.StatusOK, state)
}
