package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/core/config"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/store"
)

// Identity is the user profile returned by the hosted login.
type Identity struct {
	WorkOSID  string
	Email     string
	Name      string
	AvatarURL *string
	SessionID string
}

// IdentityProvider is the hosted login (WorkOS AuthKit).
type IdentityProvider interface {
	AuthorizationURL(state, loginHint string) (string, error)
	Authenticate(ctx context.Context, code string) (*Identity, error)
	LogoutURL(sessionID string) (string, error)
}

type workOSProvider struct {
	cfg config.WorkOSConfig
}

func NewWorkOSProvider(cfg config.WorkOSConfig) IdentityProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workOSProvider{cfg: cfg}
}

func (p *workOSProvider) AuthorizationURL(state, loginHint string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    p.cfg.ClientID,
		RedirectURI: p.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
		LoginHint:   loginHint,
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

func (p *workOSProvider) Authenticate(ctx context.Context, code string) (*Identity, error) {
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: p.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		return nil, err
	}

	u := resp.User
	identity := &Identity{
		WorkOSID:  u.ID,
		Email:     u.Email,
		Name:      buildUserName(u),
		SessionID: sessionIDFromAccessToken(resp.AccessToken),
	}
	if u.ProfilePictureURL != "" {
		identity.AvatarURL = &u.ProfilePictureURL
	}
	return identity, nil
}

func (p *workOSProvider) LogoutURL(sessionID string) (string, error) {
	url, err := usermanagement.GetLogoutURL(usermanagement.GetLogoutURLOpts{SessionID: sessionID})
	if err != nil {
		return "", fmt.Errorf("generating logout URL: %w", err)
	}
	return url.String(), nil
}

// sessionIDFromAccessToken reads the sid claim. The token came straight from
// WorkOS over TLS, so its signature is not checked here.
func sessionIDFromAccessToken(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func buildUserName(user usermanagement.User) string {
	if user.FirstName != "" && user.LastName != "" {
		return user.FirstName + " " + user.LastName
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.LastName != "" {
		return user.LastName
	}
	return user.Email
}

type AuthService interface {
	// AuthorizationURL returns the hosted login URL and the state the client must echo back.
	AuthorizationURL(loginHint string) (string, string, error)
	Exchange(ctx context.Context, code string) (*model.User, *model.Session, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, error)
	// Logout ends the session and returns the provider logout URL, if any.
	Logout(ctx context.Context, sessionID int64) (string, error)
}

type authService struct {
	tx       TxRunner
	sessions store.SessionStore
	users    store.UserStore
	identity IdentityProvider
	producer queue.Producer
}

func NewAuthService(tx TxRunner, sessions store.SessionStore, users store.UserStore, identity IdentityProvider, producer queue.Producer) AuthService {
	return &authService{
		tx:       tx,
		sessions: sessions,
		users:    users,
		identity: identity,
		producer: producer,
	}
}

func (s *authService) AuthorizationURL(loginHint string) (string, string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generating state: %w", err)
	}
	state := hex.EncodeToString(buf)

	url, err := s.identity.AuthorizationURL(state, loginHint)
	if err != nil {
		return "", "", err
	}
	return url, state, nil
}

func (s *authService) Exchange(ctx context.Context, code string) (*model.User, *model.Session, error) {
	identity, err := s.identity.Authenticate(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	user := &model.User{
		ID:        id.New(),
		Name:      identity.Name,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		WorkOSID:  &identity.WorkOSID,
	}
	session := &model.Session{
		ID:        id.New(),
		ExpiresAt: time.Now().Add(model.SessionTTL),
	}
	if identity.SessionID != "" {
		session.WorkOSSessionID = &identity.SessionID
	}

	var created bool
	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		created, err = stores.Users().UpsertByEmail(ctx, user)
		if err != nil {
			return fmt.Errorf("upserting user: %w", err)
		}
		if err := stores.Subscriptions().EnsureDefault(ctx, user.ID); err != nil {
			return fmt.Errorf("ensuring subscription: %w", err)
		}
		session.UserID = user.ID
		if err := stores.Sessions().Create(ctx, session); err != nil {
			return fmt.Errorf("creating session: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to complete login", "error", err, "email", identity.Email)
		return nil, nil, err
	}

	if created {
		if err := s.producer.Enqueue(ctx, queue.WelcomeEmailTask(user.ID)); err != nil {
			slog.WarnContext(ctx, "failed to enqueue welcome email", "error", err, "user_id", user.ID)
		}
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"session_id", session.ID,
		"new_user", created,
	)
	return user, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	session, err := s.sessions.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) (string, error) {
	session, err := s.sessions.GetValid(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("getting session: %w", err)
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("deleting session: %w", err)
	}

	if session == nil || session.WorkOSSessionID == nil {
		return "", nil
	}
	url, err := s.identity.LogoutURL(*session.WorkOSSessionID)
	if err != nil {
		slog.WarnContext(ctx, "failed to build logout URL", "error", err)
		return "", nil
	}
	return url, nil
}
