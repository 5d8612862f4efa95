package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/search"
	"solosuccess.app/api/internal/storage"
	"solosuccess.app/api/internal/store"
)

const defaultSearchLimit = 20

type BriefcaseService interface {
	List(ctx context.Context, userID int64) ([]model.Briefcase, error)
	Create(ctx context.Context, userID int64, name string, description *string) (*model.Briefcase, error)
	// Delete removes a non-default briefcase together with its documents and their objects.
	Delete(ctx context.Context, userID, briefcaseID int64) error

	ListDocuments(ctx context.Context, userID, briefcaseID int64) ([]model.Document, error)
	Upload(ctx context.Context, userID int64, params UploadParams) (*model.Document, error)
	GetDocument(ctx context.Context, userID, documentID int64) (*DocumentDownload, error)
	DeleteDocument(ctx context.Context, userID, documentID int64) error
	Search(ctx context.Context, userID int64, query string) ([]model.Document, error)
}

type UploadParams struct {
	BriefcaseID int64
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	Tags        []string
	Metadata    json.RawMessage
}

// DocumentDownload is a document with a short-lived download link.
// DownloadURL is empty when object storage is disabled.
type DocumentDownload struct {
	model.Document
	DownloadURL string `json:"download_url,omitempty"`
}

type briefcaseService struct {
	briefcases store.BriefcaseStore
	documents  store.DocumentStore
	objects    storage.ObjectStore
	index      search.DocumentIndex
}

func NewBriefcaseService(briefcases store.BriefcaseStore, documents store.DocumentStore, objects storage.ObjectStore, index search.DocumentIndex) BriefcaseService {
	return &briefcaseService{
		briefcases: briefcases,
		documents:  documents,
		objects:    objects,
		index:      index,
	}
}

func (s *briefcaseService) List(ctx context.Context, userID int64) ([]model.Briefcase, error) {
	briefcases, err := s.briefcases.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing briefcases: %w", err)
	}
	return briefcases, nil
}

func (s *briefcaseService) Create(ctx context.Context, userID int64, name string, description *string) (*model.Briefcase, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, invalid("name", "must be 1 to 100 characters")
	}

	b := &model.Briefcase{
		ID:          id.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.briefcases.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("creating briefcase: %w", err)
	}
	return b, nil
}

func (s *briefcaseService) Delete(ctx context.Context, userID, briefcaseID int64) error {
	b, err := s.getBriefcase(ctx, userID, briefcaseID)
	if err != nil {
		return err
	}
	if b.IsDefault {
		return ErrDefaultBriefcase
	}

	docs, err := s.documents.ListByBriefcase(ctx, userID, briefcaseID)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if err := s.briefcases.Delete(ctx, userID, briefcaseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBriefcaseNotFound
		}
		return fmt.Errorf("deleting briefcase: %w", err)
	}

	// Rows are gone with the briefcase; leftover objects only cost storage.
	for i := range docs {
		s.cleanup(ctx, &docs[i])
	}

	slog.InfoContext(ctx, "briefcase deleted", "briefcase_id", briefcaseID, "documents", len(docs))
	return nil
}

func (s *briefcaseService) ListDocuments(ctx context.Context, userID, briefcaseID int64) ([]model.Document, error) {
	if _, err := s.getBriefcase(ctx, userID, briefcaseID); err != nil {
		return nil, err
	}
	docs, err := s.documents.ListByBriefcase(ctx, userID, briefcaseID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}

func (s *briefcaseService) Upload(ctx context.Context, userID int64, params UploadParams) (*model.Document, error) {
	var v validator
	v.check(strings.TrimSpace(params.Filename) != "", "file", "a file name is required")
	v.check(params.Size > 0, "file", "file is empty")
	v.check(params.Size <= model.MaxDocumentSize, "file", fmt.Sprintf("must be at most %d MiB", model.MaxDocumentSize>>20))
	if len(params.Metadata) > 0 {
		v.check(json.Valid(params.Metadata), "metadata", "must be valid JSON")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if _, err := s.getBriefcase(ctx, userID, params.BriefcaseID); err != nil {
		return nil, err
	}

	contentType := params.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc := &model.Document{
		ID:          id.New(),
		UserID:      userID,
		BriefcaseID: params.BriefcaseID,
		Name:        strings.TrimSpace(params.Filename),
		ContentType: contentType,
		SizeBytes:   params.Size,
		Tags:        normalizeTags(params.Tags),
		Metadata:    params.Metadata,
	}
	doc.StorageKey = storage.ObjectKey(userID, doc.BriefcaseID, doc.ID, doc.Name)

	if err := s.objects.Put(ctx, doc.StorageKey, params.Body, contentType); err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return nil, ErrFeatureUnavailable
		}
		return nil, fmt.Errorf("storing document: %w", err)
	}

	if err := s.documents.Create(ctx, doc); err != nil {
		if delErr := s.objects.Delete(ctx, doc.StorageKey); delErr != nil {
			slog.WarnContext(ctx, "failed to remove orphaned object", "error", delErr, "key", doc.StorageKey)
		}
		return nil, fmt.Errorf("creating document: %w", err)
	}

	if err := s.index.Index(ctx, doc); err != nil && !errors.Is(err, search.ErrDisabled) {
		slog.WarnContext(ctx, "failed to index document", "error", err, "document_id", doc.ID)
	}

	slog.InfoContext(ctx, "document uploaded",
		"document_id", doc.ID,
		"briefcase_id", doc.BriefcaseID,
		"size_bytes", doc.SizeBytes)
	return doc, nil
}

func (s *briefcaseService) GetDocument(ctx context.Context, userID, documentID int64) (*DocumentDownload, error) {
	doc, err := s.getDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	out := &DocumentDownload{Document: *doc}
	url, err := s.objects.PresignGet(ctx, doc.StorageKey, doc.Name)
	switch {
	case err == nil:
		out.DownloadURL = url
	case errors.Is(err, storage.ErrDisabled):
	default:
		return nil, fmt.Errorf("presigning download: %w", err)
	}
	return out, nil
}

func (s *briefcaseService) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	doc, err := s.getDocument(ctx, userID, documentID)
	if err != nil {
		return err
	}
	if err := s.documents.Delete(ctx, userID, documentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("deleting document: %w", err)
	}
	s.cleanup(ctx, doc)
	return nil
}

func (s *briefcaseService) Search(ctx context.Context, userID int64, query string) ([]model.Document, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("q", "a search query is required")
	}

	ids, err := s.index.Search(ctx, userID, query, defaultSearchLimit)
	if err != nil {
		if !errors.Is(err, search.ErrDisabled) {
			slog.WarnContext(ctx, "document search failed, falling back to name match", "error", err)
		}
		docs, err := s.documents.SearchByName(ctx, userID, query, defaultSearchLimit)
		if err != nil {
			return nil, fmt.Errorf("searching documents: %w", err)
		}
		return docs, nil
	}
	if len(ids) == 0 {
		return []model.Document{}, nil
	}

	docs, err := s.documents.GetByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	// Keep the index's ranking; drop hits whose rows are gone.
	byID := make(map[int64]model.Document, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}
	ranked := make([]model.Document, 0, len(docs))
	for _, docID := range ids {
		if d, ok := byID[docID]; ok {
			ranked = append(ranked, d)
		}
	}
	return ranked, nil
}

func (s *briefcaseService) cleanup(ctx context.Context, doc *model.Document) {
	if err := s.objects.Delete(ctx, doc.StorageKey); err != nil {
		slog.WarnContext(ctx, "failed to delete document object", "error", err, "key", doc.StorageKey)
	}
	if err := s.index.Remove(ctx, doc.ID); err != nil && !errors.Is(err, search.ErrDisabled) {
		slog.WarnContext(ctx, "failed to remove document from index", "error", err, "document_id", doc.ID)
	}
}

func (s *briefcaseService) getBriefcase(ctx context.Context, userID, briefcaseID int64) (*model.Briefcase, error) {
	b, err := s.briefcases.GetByID(ctx, userID, briefcaseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBriefcaseNotFound
		}
		return nil, fmt.Errorf("getting briefcase: %w", err)
	}
	return b, nil
}

func (s *briefcaseService) getDocument(ctx context.Context, userID, documentID int64) (*model.Document, error) {
	doc, err := s.documents.GetByID(ctx, userID, documentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}
