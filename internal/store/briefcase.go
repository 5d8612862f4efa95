package store

import (
	"context"
	"encoding/json"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type briefcaseStore struct {
	queries *sqlc.Queries
}

func newBriefcaseStore(queries *sqlc.Queries) BriefcaseStore {
	return &briefcaseStore{queries: queries}
}

func (s *briefcaseStore) Create(ctx context.Context, b *model.Briefcase) error {
	row, err := s.queries.CreateBriefcase(ctx, sqlc.CreateBriefcaseParams{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Description: b.Description,
		IsDefault:   b.IsDefault,
	})
	if err != nil {
		return err
	}
	*b = *toBriefcaseModel(row)
	return nil
}

func (s *briefcaseStore) GetByID(ctx context.Context, userID, id int64) (*model.Briefcase, error) {
	row, err := s.queries.GetBriefcase(ctx, sqlc.GetBriefcaseParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toBriefcaseModel(row), nil
}

func (s *briefcaseStore) GetDefault(ctx context.Context, userID int64) (*model.Briefcase, error) {
	row, err := s.queries.GetDefaultBriefcase(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return toBriefcaseModel(row), nil
}

func (s *briefcaseStore) List(ctx context.Context, userID int64) ([]model.Briefcase, error) {
	rows, err := s.queries.ListBriefcases(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toBriefcaseModel), nil
}

func (s *briefcaseStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteBriefcase(ctx, sqlc.DeleteBriefcaseParams{ID: id, UserID: userID}))
}

func toBriefcaseModel(row sqlc.Briefcase) *model.Briefcase {
	return &model.Briefcase{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		IsDefault:   row.IsDefault,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

type documentStore struct {
	queries *sqlc.Queries
}

func newDocumentStore(queries *sqlc.Queries) DocumentStore {
	return &documentStore{queries: queries}
}

func (s *documentStore) Create(ctx context.Context, doc *model.Document) error {
	row, err := s.queries.CreateDocument(ctx, sqlc.CreateDocumentParams{
		ID:          doc.ID,
		UserID:      doc.UserID,
		BriefcaseID: doc.BriefcaseID,
		Name:        doc.Name,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		StorageKey:  doc.StorageKey,
		Tags:        tagsOrEmpty(doc.Tags),
		Metadata:    jsonOrEmpty(doc.Metadata),
	})
	if err != nil {
		return err
	}
	*doc = *toDocumentModel(row)
	return nil
}

func (s *documentStore) GetByID(ctx context.Context, userID, id int64) (*model.Document, error) {
	row, err := s.queries.GetDocument(ctx, sqlc.GetDocumentParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toDocumentModel(row), nil
}

func (s *documentStore) GetByIDs(ctx context.Context, userID int64, ids []int64) ([]model.Document, error) {
	rows, err := s.queries.GetDocumentsByIDs(ctx, sqlc.GetDocumentsByIDsParams{UserID: userID, Ids: ids})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toDocumentModel), nil
}

func (s *documentStore) ListByBriefcase(ctx context.Context, userID, briefcaseID int64) ([]model.Document, error) {
	rows, err := s.queries.ListDocumentsByBriefcase(ctx, sqlc.ListDocumentsByBriefcaseParams{
		BriefcaseID: briefcaseID,
		UserID:      userID,
	})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toDocumentModel), nil
}

func (s *documentStore) SearchByName(ctx context.Context, userID int64, query string, limit int32) ([]model.Document, error) {
	rows, err := s.queries.SearchDocumentsByName(ctx, sqlc.SearchDocumentsByNameParams{
		UserID:     userID,
		Query:      query,
		MaxResults: limit,
	})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toDocumentModel), nil
}

func (s *documentStore) StorageKeysByBriefcase(ctx context.Context, userID, briefcaseID int64) ([]string, error) {
	return s.queries.ListDocumentStorageKeysByBriefcase(ctx, sqlc.ListDocumentStorageKeysByBriefcaseParams{
		BriefcaseID: briefcaseID,
		UserID:      userID,
	})
}

func (s *documentStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteDocument(ctx, sqlc.DeleteDocumentParams{ID: id, UserID: userID}))
}

func (s *documentStore) Count(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountDocuments(ctx, userID)
}

func toDocumentModel(row sqlc.Document) *model.Document {
	return &model.Document{
		ID:          row.ID,
		UserID:      row.UserID,
		BriefcaseID: row.BriefcaseID,
		Name:        row.Name,
		ContentType: row.ContentType,
		SizeBytes:   row.SizeBytes,
		StorageKey:  row.StorageKey,
		Tags:        tagsOrEmpty(row.Tags),
		Metadata:    json.RawMessage(row.Metadata),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
