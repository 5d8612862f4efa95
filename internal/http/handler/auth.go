package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/http/middleware"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

type AuthHandler struct {
	authService       service.AuthService
	onboardingService service.OnboardingService
	isProduction      bool
}

func NewAuthHandler(authService service.AuthService, onboardingService service.OnboardingService, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		onboardingService: onboardingService,
		isProduction:      isProduction,
	}
}

func (h *AuthHandler) GetAuthURL(c *gin.Context) {
	authURL, state, err := h.authService.AuthorizationURL(c.Query("login_hint"))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get authorization URL"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthURLResponse{AuthorizationURL: authURL, State: state})
}

func (h *AuthHandler) Exchange(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	user, session, err := h.authService.Exchange(ctx, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			slog.WarnContext(ctx, "sign-in failed", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid authorization code"})
			return
		}
		respondError(c, err, "sign in")
		return
	}

	middleware.SetSessionCookie(c, session.ID, int(model.SessionTTL.Seconds()), h.isProduction)

	slog.InfoContext(ctx, "user authenticated via exchange", "user_id", user.ID)

	c.JSON(http.StatusOK, dto.ExchangeResponse{
		User:      user,
		SessionID: session.ID,
		ExpiresIn: int(model.SessionTTL.Seconds()),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, ok := middleware.SessionIDFromRequest(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.authService.ValidateSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
			middleware.ClearSessionCookie(c, h.isProduction)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		respondError(c, err, "validate session")
		return
	}

	state, err := h.onboardingService.State(ctx, user.ID)
	if err != nil {
		respondError(c, err, "load onboarding state")
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{User: user, Onboarding: state})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	sessionID, err := id.Parse(req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	logoutURL, err := h.authService.Logout(ctx, sessionID)
	if err != nil {
		slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
	}

	middleware.ClearSessionCookie(c, h.isProduction)

	c.JSON(http.StatusOK, dto.LogoutResponse{Message: "logged out", LogoutURL: logoutURL})
}
