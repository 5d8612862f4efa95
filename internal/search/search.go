package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/typesense/typesense-go/v4/typesense"
	"github.com/typesense/typesense-go/v4/typesense/api"
	"github.com/typesense/typesense-go/v4/typesense/api/pointer"

	"solosuccess.app/api/core/config"
	"solosuccess.app/api/internal/model"
)

// ErrDisabled tells callers to fall back to database search.
var ErrDisabled = errors.New("document search is not configured")

// DocumentIndex keeps briefcase documents searchable per user.
type DocumentIndex interface {
	EnsureCollection(ctx context.Context) error
	Index(ctx context.Context, doc *model.Document) error
	Remove(ctx context.Context, documentID int64) error
	// Search returns matching document IDs owned by userID, best match first.
	Search(ctx context.Context, userID int64, query string, limit int) ([]int64, error)
}

type indexedDocument struct {
	ID          string   `json:"id"`
	UserID      int64    `json:"user_id"`
	BriefcaseID int64    `json:"briefcase_id"`
	Name        string   `json:"name"`
	ContentType string   `json:"content_type"`
	Tags        []string `json:"tags"`
	CreatedAt   int64    `json:"created_at"`
}

type TypesenseIndex struct {
	client     *typesense.Client
	collection string
}

func NewTypesenseIndex(cfg config.SearchConfig) *TypesenseIndex {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)
	return &TypesenseIndex{client: client, collection: cfg.Collection}
}

// EnsureCollection creates the collection on first start.
func (t *TypesenseIndex) EnsureCollection(ctx context.Context) error {
	_, err := t.client.Collection(t.collection).Retrieve(ctx)
	if err == nil {
		return nil
	}

	var httpErr *typesense.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusNotFound {
		return fmt.Errorf("retrieving collection %s: %w", t.collection, err)
	}

	_, err = t.client.Collections().Create(ctx, &api.CollectionSchema{
		Name: t.collection,
		Fields: []api.Field{
			{Name: "user_id", Type: "int64"},
			{Name: "briefcase_id", Type: "int64"},
			{Name: "name", Type: "string"},
			{Name: "content_type", Type: "string", Facet: pointer.True()},
			{Name: "tags", Type: "string[]", Facet: pointer.True()},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("created_at"),
	})
	if err != nil {
		return fmt.Errorf("creating collection %s: %w", t.collection, err)
	}

	slog.InfoContext(ctx, "search collection created", "collection", t.collection)
	return nil
}

func (t *TypesenseIndex) Index(ctx context.Context, doc *model.Document) error {
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}

	_, err := t.client.Collection(t.collection).Documents().Upsert(ctx, indexedDocument{
		ID:          strconv.FormatInt(doc.ID, 10),
		UserID:      doc.UserID,
		BriefcaseID: doc.BriefcaseID,
		Name:        doc.Name,
		ContentType: doc.ContentType,
		Tags:        tags,
		CreatedAt:   doc.CreatedAt.Unix(),
	}, &api.DocumentIndexParameters{})
	if err != nil {
		return fmt.Errorf("indexing document %d: %w", doc.ID, err)
	}
	return nil
}

func (t *TypesenseIndex) Remove(ctx context.Context, documentID int64) error {
	_, err := t.client.Collection(t.collection).Document(strconv.FormatInt(documentID, 10)).Delete(ctx)
	if err != nil {
		var httpErr *typesense.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("removing document %d: %w", documentID, err)
	}
	return nil
}

func (t *TypesenseIndex) Search(ctx context.Context, userID int64, query string, limit int) ([]int64, error) {
	if limit <= 0 {
		limit = 20
	}

	result, err := t.client.Collection(t.collection).Documents().Search(ctx, &api.SearchCollectionParams{
		Q:        pointer.String(query),
		QueryBy:  pointer.String("name,tags"),
		FilterBy: pointer.String(fmt.Sprintf("user_id:=%d", userID)),
		PerPage:  pointer.Int(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}
	if result.Hits == nil {
		return nil, nil
	}

	ids := make([]int64, 0, len(*result.Hits))
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		raw, ok := (*hit.Document)["id"].(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type noopIndex struct{}

func NewNoopIndex() DocumentIndex {
	return noopIndex{}
}

func (noopIndex) EnsureCollection(context.Context) error       { return nil }
func (noopIndex) Index(context.Context, *model.Document) error { return nil }
func (noopIndex) Remove(context.Context, int64) error          { return nil }

func (noopIndex) Search(context.Context, int64, string, int) ([]int64, error) {
	return nil, ErrDisabled
}
