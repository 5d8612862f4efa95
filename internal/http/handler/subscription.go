package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/service"
)

const billingSecretHeader = "X-Billing-Secret"

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Summary(c *gin.Context) {
	summary, err := h.subscriptionService.Summary(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "load subscription")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// BillingWebhook applies a plan change pushed by the billing provider.
func (h *SubscriptionHandler) BillingWebhook(c *gin.Context) {
	var event service.BillingEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		badRequest(c, err)
		return
	}

	sub, err := h.subscriptionService.ApplyBillingEvent(c.Request.Context(), c.GetHeader(billingSecretHeader), event)
	if err != nil {
		respondError(c, err, "apply billing event")
		return
	}
	c.JSON(http.StatusOK, sub)
}
