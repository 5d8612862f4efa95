package store

import (
	"context"
	"encoding/json"
	"fmt"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type brandProfileStore struct {
	queries *sqlc.Queries
}

func newBrandProfileStore(queries *sqlc.Queries) BrandProfileStore {
	return &brandProfileStore{queries: queries}
}

func (s *brandProfileStore) Create(ctx context.Context, p *model.BrandProfile) error {
	input, err := json.Marshal(p.Input)
	if err != nil {
		return fmt.Errorf("marshaling brand input: %w", err)
	}
	identity, err := json.Marshal(p.Identity)
	if err != nil {
		return fmt.Errorf("marshaling brand identity: %w", err)
	}

	row, err := s.queries.CreateBrandProfile(ctx, sqlc.CreateBrandProfileParams{
		ID:           p.ID,
		UserID:       p.UserID,
		BusinessName: p.BusinessName,
		Industry:     p.Industry,
		Input:        input,
		Identity:     identity,
		Model:        p.Model,
	})
	if err != nil {
		return err
	}
	created, err := toBrandProfileModel(row)
	if err != nil {
		return err
	}
	*p = *created
	return nil
}

func (s *brandProfileStore) GetByID(ctx context.Context, userID, id int64) (*model.BrandProfile, error) {
	row, err := s.queries.GetBrandProfile(ctx, sqlc.GetBrandProfileParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toBrandProfileModel(row)
}

func (s *brandProfileStore) List(ctx context.Context, userID int64) ([]model.BrandProfile, error) {
	rows, err := s.queries.ListBrandProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles := make([]model.BrandProfile, 0, len(rows))
	for _, row := range rows {
		p, err := toBrandProfileModel(row)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (s *brandProfileStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteBrandProfile(ctx, sqlc.DeleteBrandProfileParams{ID: id, UserID: userID}))
}

func toBrandProfileModel(row sqlc.BrandProfile) (*model.BrandProfile, error) {
	p := &model.BrandProfile{
		ID:           row.ID,
		UserID:       row.UserID,
		BusinessName: row.BusinessName,
		Industry:     row.Industry,
		Model:        row.Model,
		CreatedAt:    row.CreatedAt.Time,
	}
	if err := json.Unmarshal(row.Input, &p.Input); err != nil {
		return nil, fmt.Errorf("decoding brand input %d: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Identity, &p.Identity); err != nil {
		return nil, fmt.Errorf("decoding brand identity %d: %w", row.ID, err)
	}
	return p, nil
}
