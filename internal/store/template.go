package store

import (
	"context"
	"encoding/json"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type templateStore struct {
	queries *sqlc.Queries
}

func newTemplateStore(queries *sqlc.Queries) TemplateStore {
	return &templateStore{queries: queries}
}

func (s *templateStore) Create(ctx context.Context, t *model.Template) error {
	row, err := s.queries.CreateTemplate(ctx, sqlc.CreateTemplateParams{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Category:    t.Category,
		Description: t.Description,
		Content:     jsonOrEmpty(t.Content),
		IsPublic:    t.IsPublic,
	})
	if err != nil {
		return err
	}
	*t = *toTemplateModel(row)
	return nil
}

func (s *templateStore) GetByID(ctx context.Context, userID, id int64) (*model.Template, error) {
	row, err := s.queries.GetTemplate(ctx, sqlc.GetTemplateParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toTemplateModel(row), nil
}

func (s *templateStore) List(ctx context.Context, userID int64, category *string) ([]model.Template, error) {
	rows, err := s.queries.ListTemplates(ctx, sqlc.ListTemplatesParams{UserID: userID, Category: category})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toTemplateModel), nil
}

func (s *templateStore) Update(ctx context.Context, t *model.Template) error {
	row, err := s.queries.UpdateTemplate(ctx, sqlc.UpdateTemplateParams{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Category:    t.Category,
		Description: t.Description,
		Content:     jsonOrEmpty(t.Content),
		IsPublic:    t.IsPublic,
	})
	if err != nil {
		return notFound(err)
	}
	*t = *toTemplateModel(row)
	return nil
}

func (s *templateStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteTemplate(ctx, sqlc.DeleteTemplateParams{ID: id, UserID: userID}))
}

func toTemplateModel(row sqlc.Template) *model.Template {
	return &model.Template{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Category:    row.Category,
		Description: row.Description,
		Content:     json.RawMessage(row.Content),
		IsPublic:    row.IsPublic,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
