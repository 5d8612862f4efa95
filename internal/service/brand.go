package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/common/llm"
	"solosuccess.app/api/common/metrics"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

const brandSystemPrompt = `You are a brand strategist for solo founders.
Create a cohesive brand identity from the business details provided.
The tagline is under 10 words. The mission is one or two sentences.
Voice describes how the brand writes in three short adjectives and a sentence.
Give 4 to 6 palette colors as #RRGGBB hex codes with human names.
Pick widely available web fonts for typography. Give 5 to 10 keywords.`

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type BrandService interface {
	Generate(ctx context.Context, userID int64, input model.BrandInput) (*model.BrandProfile, error)
	List(ctx context.Context, userID int64) ([]model.BrandProfile, error)
	Get(ctx context.Context, userID, profileID int64) (*model.BrandProfile, error)
	Delete(ctx context.Context, userID, profileID int64) error
}

type brandService struct {
	profiles store.BrandProfileStore
	client   llm.StructuredClient
}

// NewBrandService wires the generator. client may be nil when no model is configured.
func NewBrandService(profiles store.BrandProfileStore, client llm.StructuredClient) BrandService {
	return &brandService{profiles: profiles, client: client}
}

func (s *brandService) Generate(ctx context.Context, userID int64, input model.BrandInput) (*model.BrandProfile, error) {
	input.BusinessName = strings.TrimSpace(input.BusinessName)
	input.Industry = strings.TrimSpace(input.Industry)
	input.TargetAudience = strings.TrimSpace(input.TargetAudience)
	input.Tone = strings.TrimSpace(input.Tone)

	var v validator
	v.check(input.BusinessName != "" && len(input.BusinessName) <= 200, "business_name", "must be 1 to 200 characters")
	v.check(input.Industry != "" && len(input.Industry) <= 100, "industry", "must be 1 to 100 characters")
	v.check(len(input.TargetAudience) <= 500, "target_audience", "must be at most 500 characters")
	v.check(len(input.Values) <= 10, "values", "must contain at most 10 values")
	if err := v.err(); err != nil {
		return nil, err
	}

	if s.client == nil {
		return nil, ErrFeatureUnavailable
	}

	var identity model.BrandIdentity
	usage, err := s.client.Generate(ctx, llm.StructuredRequest{
		SystemPrompt: brandSystemPrompt,
		UserPrompt:   brandPrompt(input),
		SchemaName:   "brand_identity",
		Schema:       llm.GenerateSchema[model.BrandIdentity](),
		MaxTokens:    1500,
		Temperature:  llm.Temp(0.8),
	}, &identity)
	if err != nil {
		slog.ErrorContext(ctx, "brand generation failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("%w: %v", ErrAssistantFailed, err)
	}
	if usage != nil {
		metrics.RecordTokens("brand", usage.PromptTokens, usage.CompletionTokens)
	}
	identity.ColorPalette = validColors(identity.ColorPalette)

	profile := &model.BrandProfile{
		ID:           id.New(),
		UserID:       userID,
		BusinessName: input.BusinessName,
		Industry:     input.Industry,
		Input:        input,
		Identity:     identity,
		Model:        s.client.Model(),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("storing brand profile: %w", err)
	}

	slog.InfoContext(ctx, "brand profile generated", "profile_id", profile.ID, "user_id", userID, "model", profile.Model)
	return profile, nil
}

func brandPrompt(in model.BrandInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Business name: %s\n", in.BusinessName)
	fmt.Fprintf(&b, "Industry: %s\n", in.Industry)
	if in.TargetAudience != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", in.TargetAudience)
	}
	if len(in.Values) > 0 {
		fmt.Fprintf(&b, "Core values: %s\n", strings.Join(in.Values, ", "))
	}
	if in.Tone != "" {
		fmt.Fprintf(&b, "Preferred tone: %s\n", in.Tone)
	}
	return b.String()
}

// validColors drops palette entries whose hex code is malformed.
func validColors(colors []model.BrandColor) []model.BrandColor {
	out := colors[:0]
	for _, c := range colors {
		if hexColor.MatchString(c.Hex) {
			c.Hex = strings.ToUpper(c.Hex)
			out = append(out, c)
		}
	}
	return out
}

func (s *brandService) List(ctx context.Context, userID int64) ([]model.BrandProfile, error) {
	profiles, err := s.profiles.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing brand profiles: %w", err)
	}
	return profiles, nil
}

func (s *brandService) Get(ctx context.Context, userID, profileID int64) (*model.BrandProfile, error) {
	p, err := s.profiles.GetByID(ctx, userID, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBrandProfileNotFound
		}
		return nil, fmt.Errorf("getting brand profile: %w", err)
	}
	return p, nil
}

func (s *brandService) Delete(ctx context.Context, userID, profileID int64) error {
	if err := s.profiles.Delete(ctx, userID, profileID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBrandProfileNotFound
		}
		return fmt.Errorf("deleting brand profile: %w", err)
	}
	return nil
}
