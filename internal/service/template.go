package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"solosuccess.app/api/common"
	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

type TemplateService interface {
	List(ctx context.Context, userID int64, category string) ([]model.Template, error)
	Create(ctx context.Context, userID int64, params CreateTemplateParams) (*model.Template, error)
	Get(ctx context.Context, userID, templateID int64) (*model.Template, error)
	Update(ctx context.Context, userID, templateID int64, params UpdateTemplateParams) (*model.Template, error)
	Delete(ctx context.Context, userID, templateID int64) error
	Export(ctx context.Context, userID, templateID int64, format string) (*TemplateExport, error)
}

type CreateTemplateParams struct {
	Title       string
	Category    string
	Description *string
	Content     json.RawMessage
	IsPublic    bool
}

type UpdateTemplateParams struct {
	Title       *string
	Category    *string
	Description *string
	Content     json.RawMessage
	IsPublic    *bool
}

// TemplateExport is a rendered template ready to be served as a download.
type TemplateExport struct {
	Filename    string
	ContentType string
	Body        []byte
}

type templateService struct {
	templates store.TemplateStore
}

func NewTemplateService(templates store.TemplateStore) TemplateService {
	return &templateService{templates: templates}
}

func (s *templateService) List(ctx context.Context, userID int64, category string) ([]model.Template, error) {
	var filter *string
	if c := strings.TrimSpace(category); c != "" {
		filter = &c
	}
	templates, err := s.templates.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return templates, nil
}

func (s *templateService) Create(ctx context.Context, userID int64, params CreateTemplateParams) (*model.Template, error) {
	t := &model.Template{
		ID:          id.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(params.Title),
		Category:    normalizeCategory(params.Category),
		Description: params.Description,
		Content:     params.Content,
		IsPublic:    params.IsPublic,
	}
	if len(t.Content) == 0 {
		t.Content = json.RawMessage(`{}`)
	}

	var v validator
	v.check(t.Title != "" && len(t.Title) <= 200, "title", "must be 1 to 200 characters")
	v.check(json.Valid(t.Content), "content", "must be valid JSON")
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.templates.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}
	return t, nil
}

// Get returns a template the user owns or one that is public.
func (s *templateService) Get(ctx context.Context, userID, templateID int64) (*model.Template, error) {
	t, err := s.templates.GetByID(ctx, userID, templateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("getting template: %w", err)
	}
	return t, nil
}

func (s *templateService) Update(ctx context.Context, userID, templateID int64, params UpdateTemplateParams) (*model.Template, error) {
	t, err := s.Get(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	// Public templates of other users are readable, never writable.
	if t.UserID != userID {
		return nil, ErrTemplateNotFound
	}

	var v validator
	if params.Title != nil {
		t.Title = strings.TrimSpace(*params.Title)
		v.check(t.Title != "" && len(t.Title) <= 200, "title", "must be 1 to 200 characters")
	}
	if params.Category != nil {
		t.Category = normalizeCategory(*params.Category)
	}
	if params.Description != nil {
		t.Description = trimmedOrNil(*params.Description)
	}
	if params.Content != nil {
		v.check(json.Valid(params.Content), "content", "must be valid JSON")
		t.Content = params.Content
	}
	if params.IsPublic != nil {
		t.IsPublic = *params.IsPublic
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.templates.Update(ctx, t); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("updating template: %w", err)
	}
	return t, nil
}

func (s *templateService) Delete(ctx context.Context, userID, templateID int64) error {
	if err := s.templates.Delete(ctx, userID, templateID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}

func (s *templateService) Export(ctx context.Context, userID, templateID int64, format string) (*TemplateExport, error) {
	f := model.ExportFormat(format)
	if format == "" {
		f = model.ExportJSON
	}
	if !f.Valid() {
		return nil, invalid("format", oneOf(model.ExportJSON, model.ExportMarkdown))
	}

	t, err := s.Get(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}

	base, err := common.Slugify(t.Title, "template")
	if err != nil {
		base = "template"
	}

	switch f {
	case model.ExportMarkdown:
		return &TemplateExport{
			Filename:    base + ".md",
			ContentType: "text/markdown; charset=utf-8",
			Body:        renderTemplateMarkdown(t),
		}, nil
	default:
		body, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			slog.ErrorContext(ctx, "failed to encode template export", "error", err, "template_id", t.ID)
			return nil, fmt.Errorf("encoding template: %w", err)
		}
		return &TemplateExport{
			Filename:    base + ".json",
			ContentType: "application/json",
			Body:        body,
		}, nil
	}
}

func renderTemplateMarkdown(t *model.Template) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "_Category: %s_\n\n", t.Category)
	if t.Description != nil && *t.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", *t.Description)
	}

	var content any
	if err := json.Unmarshal(t.Content, &content); err != nil {
		fmt.Fprintf(&b, "```json\n%s\n```\n", t.Content)
		return b.Bytes()
	}

	switch c := content.(type) {
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "## %s\n\n", headingFromKey(k))
			writeMarkdownValue(&b, c[k], 0)
			b.WriteString("\n")
		}
	default:
		writeMarkdownValue(&b, c, 0)
	}
	return b.Bytes()
}

func writeMarkdownValue(b *bytes.Buffer, v any, depth int) {
	indent := strings.Repeat("  ", depth)
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			switch item.(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s-\n", indent)
				writeMarkdownValue(b, item, depth+1)
			default:
				fmt.Fprintf(b, "%s- %v\n", indent, item)
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			switch inner := val[k].(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s- **%s**:\n", indent, headingFromKey(k))
				writeMarkdownValue(b, inner, depth+1)
			default:
				fmt.Fprintf(b, "%s- **%s**: %v\n", indent, headingFromKey(k), inner)
			}
		}
	case nil:
	default:
		fmt.Fprintf(b, "%s%v\n", indent, val)
	}
}

func headingFromKey(k string) string {
	words := strings.FieldsFunc(k, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
