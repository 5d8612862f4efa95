package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/oauth2"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/social"
	"solosuccess.app/api/internal/store"
)

// schedulingGrace tolerates clock skew for posts scheduled "now" by the client.
const schedulingGrace = 5 * time.Minute

var (
	platforms    = []model.SocialPlatform{model.PlatformLinkedIn, model.PlatformTwitter}
	postStatuses = []model.SocialPostStatus{model.PostScheduled, model.PostPublishing, model.PostPublished, model.PostFailed, model.PostCancelled}
)

// OAuthPlatform is the account-linking half of a social platform.
type OAuthPlatform interface {
	AuthURL(state, verifier string) string
	Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error)
	Profile(ctx context.Context, tok *oauth2.Token) (*social.Account, error)
}

// OAuthPlatforms adapts the configured platform registry.
func OAuthPlatforms(r social.Registry) map[model.SocialPlatform]OAuthPlatform {
	out := make(map[model.SocialPlatform]OAuthPlatform, len(r))
	for name, p := range r {
		out[name] = p
	}
	return out
}

type SocialService interface {
	Connections(ctx context.Context, userID int64) ([]model.SocialConnection, error)
	// Connect returns the provider consent URL and the state the callback must echo.
	Connect(ctx context.Context, userID int64, platform string) (string, string, error)
	Callback(ctx context.Context, userID int64, platform, code, state string) (*model.SocialConnection, error)
	Disconnect(ctx context.Context, userID int64, platform string) error

	Posts(ctx context.Context, userID int64, status string) ([]model.SocialPost, error)
	SchedulePost(ctx context.Context, userID int64, params SchedulePostParams) (*model.SocialPost, error)
	CancelPost(ctx context.Context, userID, postID int64) (*model.SocialPost, error)
}

type SchedulePostParams struct {
	Platform    string
	Content     string
	ScheduledAt *time.Time // default now
}

type socialService struct {
	connections store.SocialConnectionStore
	posts       store.SocialPostStore
	platforms   map[model.SocialPlatform]OAuthPlatform
	signer      *social.StateSigner
	now         func() time.Time
}

func NewSocialService(connections store.SocialConnectionStore, posts store.SocialPostStore, platforms map[model.SocialPlatform]OAuthPlatform, signer *social.StateSigner) SocialService {
	return &socialService{
		connections: connections,
		posts:       posts,
		platforms:   platforms,
		signer:      signer,
		now:         time.Now,
	}
}

func (s *socialService) Connections(ctx context.Context, userID int64) ([]model.SocialConnection, error) {
	conns, err := s.connections.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	return conns, nil
}

func (s *socialService) Connect(ctx context.Context, userID int64, platform string) (string, string, error) {
	name, p, err := s.platform(platform)
	if err != nil {
		return "", "", err
	}
	state, verifier, err := s.signer.Issue(userID, name)
	if err != nil {
		return "", "", err
	}
	return p.AuthURL(state, verifier), state, nil
}

func (s *socialService) Callback(ctx context.Context, userID int64, platform, code, state string) (*model.SocialConnection, error) {
	name, p, err := s.platform(platform)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(code) == "" {
		return nil, invalid("code", "is required")
	}

	verifier, err := s.signer.Verify(state, userID, name)
	if err != nil {
		return nil, invalid("state", err.Error())
	}

	tok, err := p.Exchange(ctx, code, verifier)
	if err != nil {
		slog.WarnContext(ctx, "social token exchange failed", "error", err, "platform", name)
		return nil, invalid("code", "could not be exchanged for a token")
	}

	account, err := p.Profile(ctx, tok)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load social profile", "error", err, "platform", name)
		return nil, fmt.Errorf("loading %s profile: %w", name, err)
	}

	conn := &model.SocialConnection{
		ID:                id.New(),
		UserID:            userID,
		Platform:          name,
		ExternalAccountID: account.ID,
		AccountName:       account.Name,
	}
	social.ApplyToken(conn, tok)
	if err := s.connections.Upsert(ctx, conn); err != nil {
		return nil, fmt.Errorf("saving connection: %w", err)
	}

	slog.InfoContext(ctx, "social account connected", "user_id", userID, "platform", name)
	return conn, nil
}

func (s *socialService) Disconnect(ctx context.Context, userID int64, platform string) error {
	name := model.SocialPlatform(platform)
	if !name.Valid() {
		return invalid("platform", oneOf(platforms...))
	}
	if err := s.connections.Delete(ctx, userID, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrConnectionNotFound
		}
		return fmt.Errorf("deleting connection: %w", err)
	}
	return nil
}

func (s *socialService) Posts(ctx context.Context, userID int64, status string) ([]model.SocialPost, error) {
	var filter *model.SocialPostStatus
	if status != "" {
		st := model.SocialPostStatus(status)
		if !st.Valid() {
			return nil, invalid("status", oneOf(postStatuses...))
		}
		filter = &st
	}
	posts, err := s.posts.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

func (s *socialService) SchedulePost(ctx context.Context, userID int64, params SchedulePostParams) (*model.SocialPost, error) {
	now := s.now()
	post := &model.SocialPost{
		ID:          id.New(),
		UserID:      userID,
		Platform:    model.SocialPlatform(params.Platform),
		Content:     strings.TrimSpace(params.Content),
		ScheduledAt: now,
		Status:      model.PostScheduled,
	}
	if params.ScheduledAt != nil {
		post.ScheduledAt = params.ScheduledAt.UTC()
	}

	var v validator
	v.check(post.Platform.Valid(), "platform", oneOf(platforms...))
	length := utf8.RuneCountInString(post.Content)
	v.check(length > 0, "content", "must not be empty")
	if post.Platform.Valid() {
		v.check(length <= post.Platform.MaxPostLength(), "content", fmt.Sprintf("must be at most %d characters", post.Platform.MaxPostLength()))
	}
	v.check(!post.ScheduledAt.Before(now.Add(-schedulingGrace)), "scheduled_at", "must not be in the past")
	if err := v.err(); err != nil {
		return nil, err
	}

	if _, err := s.connections.Get(ctx, userID, post.Platform); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, invalid("platform", fmt.Sprintf("connect a %s account first", post.Platform))
		}
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	slog.InfoContext(ctx, "social post scheduled",
		"post_id", post.ID,
		"platform", post.Platform,
		"scheduled_at", post.ScheduledAt)
	return post, nil
}

func (s *socialService) CancelPost(ctx context.Context, userID, postID int64) (*model.SocialPost, error) {
	post, err := s.posts.Cancel(ctx, userID, postID)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("cancelling post: %w", err)
	}

	// Cancel reports both a missing post and a post past scheduling as not found.
	if _, err := s.posts.GetByID(ctx, userID, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("getting post: %w", err)
	}
	return nil, ErrPostNotCancellable
}

func (s *socialService) platform(raw string) (model.SocialPlatform, OAuthPlatform, error) {
	name := model.SocialPlatform(raw)
	if !name.Valid() {
		return "", nil, invalid("platform", oneOf(platforms...))
	}
	p, ok := s.platforms[name]
	if !ok {
		return "", nil, ErrFeatureUnavailable
	}
	return name, p, nil
}
