package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"solosuccess.app/api/internal/email"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/store"
)

// EmailHandler renders and sends the email named by a send_email task.
type EmailHandler struct {
	stores StoreProvider
	sender email.Sender
	appURL string
}

func NewEmailHandler(stores StoreProvider, sender email.Sender, appURL string) *EmailHandler {
	return &EmailHandler{stores: stores, sender: sender, appURL: appURL}
}

func (h *EmailHandler) Handle(ctx context.Context, msg queue.Message) error {
	user, err := h.stores.Users().GetByID(ctx, *msg.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.InfoContext(ctx, "email recipient no longer exists, skipping")
			return nil
		}
		return fmt.Errorf("loading user: %w", err)
	}

	var out email.Message
	switch msg.EmailKind {
	case queue.EmailWelcome:
		out = email.WelcomeEmail(user.Email, user.Name, h.appURL)

	case queue.EmailCompetitorAlert:
		if !user.EmailNotifications {
			return nil
		}
		alert, err := h.stores.Alerts().GetByID(ctx, user.ID, *msg.AlertID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("loading alert: %w", err)
		}
		competitor, err := h.stores.Competitors().GetByID(ctx, user.ID, alert.CompetitorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("loading competitor: %w", err)
		}

		details := email.AlertDetails{
			CompetitorName: competitor.Name,
			Title:          alert.Title,
			Severity:       string(alert.Severity),
		}
		if alert.Description != nil {
			details.Description = *alert.Description
		}
		if alert.SourceURL != nil {
			details.SourceURL = *alert.SourceURL
		}
		out = email.CompetitorAlertEmail(user.Email, h.appURL, details)

	default:
		slog.WarnContext(ctx, "unknown email kind, skipping", "email_kind", msg.EmailKind)
		return nil
	}

	if err := h.sender.Send(ctx, out); err != nil {
		return fmt.Errorf("sending %s email: %w", msg.EmailKind, err)
	}
	return nil
}
