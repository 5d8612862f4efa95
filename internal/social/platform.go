package social

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"solosuccess.app/api/core/config"
	"solosuccess.app/api/internal/model"
)

// ErrPlatformNotConfigured is returned for platforms without OAuth app credentials.
var ErrPlatformNotConfigured = errors.New("social platform is not configured")

// APIError is a non-2xx answer from a platform API.
type APIError struct {
	Platform model.SocialPlatform
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api returned %d: %s", e.Platform, e.Status, e.Body)
}

// Permanent reports whether retrying the same request cannot succeed.
func (e *APIError) Permanent() bool {
	return e.Status >= 400 && e.Status < 500 && e.Status != http.StatusTooManyRequests
}

// Account is the platform identity a connection publishes as.
type Account struct {
	ID   string
	Name string
}

// PublishResult carries the platform post id and, when the access token was
// refreshed during the call, the new token to persist.
type PublishResult struct {
	ExternalID string
	Token      *oauth2.Token
}

type Publisher interface {
	Publish(ctx context.Context, conn *model.SocialConnection, content string) (*PublishResult, error)
}

// Platform wraps one provider's OAuth app and REST API.
type Platform struct {
	Name       model.SocialPlatform
	OAuth      *oauth2.Config
	APIBaseURL string
	// PKCE is required by X/Twitter and unused by LinkedIn.
	PKCE       bool
	HTTPClient *http.Client
}

func NewLinkedIn(cfg config.OAuthAppConfig) *Platform {
	return &Platform{
		Name: model.PlatformLinkedIn,
		OAuth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"openid", "profile", "w_member_social"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   "https://www.linkedin.com/oauth/v2/authorization",
				TokenURL:  "https://www.linkedin.com/oauth/v2/accessToken",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		APIBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func NewTwitter(cfg config.OAuthAppConfig) *Platform {
	return &Platform{
		Name: model.PlatformTwitter,
		OAuth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"tweet.read", "tweet.write", "users.read", "offline.access"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   "https://twitter.com/i/oauth2/authorize",
				TokenURL:  "https://api.twitter.com/2/oauth2/token",
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		APIBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		PKCE:       true,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Registry holds the platforms with configured OAuth apps.
type Registry map[model.SocialPlatform]*Platform

func NewRegistry(cfg config.SocialConfig) Registry {
	r := Registry{}
	if cfg.LinkedIn.Enabled() {
		r[model.PlatformLinkedIn] = NewLinkedIn(cfg.LinkedIn)
	}
	if cfg.Twitter.Enabled() {
		r[model.PlatformTwitter] = NewTwitter(cfg.Twitter)
	}
	return r
}

func (r Registry) Get(platform model.SocialPlatform) (*Platform, error) {
	p, ok := r[platform]
	if !ok {
		return nil, ErrPlatformNotConfigured
	}
	return p, nil
}

// Publishers exposes the registry to the post processor.
func (r Registry) Publishers() map[model.SocialPlatform]Publisher {
	out := make(map[model.SocialPlatform]Publisher, len(r))
	for name, p := range r {
		out[name] = p
	}
	return out
}

func (p *Platform) AuthURL(state, verifier string) string {
	var opts []oauth2.AuthCodeOption
	if p.PKCE {
		opts = append(opts, oauth2.S256ChallengeOption(verifier))
	}
	return p.OAuth.AuthCodeURL(state, opts...)
}

func (p *Platform) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	var opts []oauth2.AuthCodeOption
	if p.PKCE {
		opts = append(opts, oauth2.VerifierOption(verifier))
	}
	tok, err := p.OAuth.Exchange(p.clientContext(ctx), code, opts...)
	if err != nil {
		return nil, fmt.Errorf("exchanging %s code: %w", p.Name, err)
	}
	return tok, nil
}

// Profile looks up the account the token belongs to.
func (p *Platform) Profile(ctx context.Context, tok *oauth2.Token) (*Account, error) {
	client := oauth2.NewClient(p.clientContext(ctx), oauth2.StaticTokenSource(tok))

	switch p.Name {
	case model.PlatformLinkedIn:
		var out struct {
			Sub  string `json:"sub"`
			Name string `json:"name"`
		}
		if err := p.do(ctx, client, http.MethodGet, "/v2/userinfo", nil, &out); err != nil {
			return nil, err
		}
		return &Account{ID: out.Sub, Name: out.Name}, nil

	case model.PlatformTwitter:
		var out struct {
			Data struct {
				ID       string `json:"id"`
				Name     string `json:"name"`
				Username string `json:"username"`
			} `json:"data"`
		}
		if err := p.do(ctx, client, http.MethodGet, "/2/users/me", nil, &out); err != nil {
			return nil, err
		}
		return &Account{ID: out.Data.ID, Name: "@" + out.Data.Username}, nil
	}
	return nil, ErrPlatformNotConfigured
}

func (p *Platform) Publish(ctx context.Context, conn *model.SocialConnection, content string) (*PublishResult, error) {
	tok := ConnectionToken(conn)
	src := p.OAuth.TokenSource(p.clientContext(ctx), tok)
	client := oauth2.NewClient(p.clientContext(ctx), src)

	var externalID string
	switch p.Name {
	case model.PlatformLinkedIn:
		body := map[string]any{
			"author":         "urn:li:person:" + conn.ExternalAccountID,
			"lifecycleState": "PUBLISHED",
			"specificContent": map[string]any{
				"com.linkedin.ugc.ShareContent": map[string]any{
					"shareCommentary":    map[string]string{"text": content},
					"shareMediaCategory": "NONE",
				},
			},
			"visibility": map[string]string{"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC"},
		}
		var out struct {
			ID string `json:"id"`
		}
		if err := p.do(ctx, client, http.MethodPost, "/v2/ugcPosts", body, &out); err != nil {
			return nil, err
		}
		externalID = out.ID

	case model.PlatformTwitter:
		var out struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		if err := p.do(ctx, client, http.MethodPost, "/2/tweets", map[string]string{"text": content}, &out); err != nil {
			return nil, err
		}
		externalID = out.Data.ID

	default:
		return nil, ErrPlatformNotConfigured
	}

	result := &PublishResult{ExternalID: externalID}
	if current, err := src.Token(); err == nil && current.AccessToken != tok.AccessToken {
		result.Token = current
	}
	return result, nil
}

// ConnectionToken rebuilds the stored OAuth token of a connection.
func ConnectionToken(conn *model.SocialConnection) *oauth2.Token {
	tok := &oauth2.Token{AccessToken: conn.AccessToken, TokenType: "Bearer"}
	if conn.RefreshToken != nil {
		tok.RefreshToken = *conn.RefreshToken
	}
	if conn.TokenExpiresAt != nil {
		tok.Expiry = *conn.TokenExpiresAt
	}
	return tok
}

// ApplyToken copies a fresh token onto the connection for persistence.
func ApplyToken(conn *model.SocialConnection, tok *oauth2.Token) {
	conn.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		conn.RefreshToken = &tok.RefreshToken
	}
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry
		conn.TokenExpiresAt = &expiry
	} else {
		conn.TokenExpiresAt = nil
	}
}

func (p *Platform) clientContext(ctx context.Context) context.Context {
	if p.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, p.HTTPClient)
}

func (p *Platform) do(ctx context.Context, client *http.Client, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", p.Name, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.APIBaseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s request: %w", p.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if p.Name == model.PlatformLinkedIn {
		req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", p.Name, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading %s response: %w", p.Name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Platform: p.Name, Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if p.Name == model.PlatformLinkedIn && resp.Header.Get("X-RestLi-Id") != "" && len(data) == 0 {
		data = fmt.Appendf(nil, `{"id":%q}`, resp.Header.Get("X-RestLi-Id"))
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", p.Name, err)
	}
	return nil
}
