package store

import (
	"context"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type socialConnectionStore struct {
	queries *sqlc.Queries
}

func newSocialConnectionStore(queries *sqlc.Queries) SocialConnectionStore {
	return &socialConnectionStore{queries: queries}
}

func (s *socialConnectionStore) Upsert(ctx context.Context, conn *model.SocialConnection) error {
	row, err := s.queries.UpsertSocialConnection(ctx, sqlc.UpsertSocialConnectionParams{
		ID:                conn.ID,
		UserID:            conn.UserID,
		Platform:          string(conn.Platform),
		ExternalAccountID: conn.ExternalAccountID,
		AccountName:       conn.AccountName,
		AccessToken:       conn.AccessToken,
		RefreshToken:      conn.RefreshToken,
		TokenExpiresAt:    toTimestamptz(conn.TokenExpiresAt),
	})
	if err != nil {
		return err
	}
	*conn = *toSocialConnectionModel(row)
	return nil
}

func (s *socialConnectionStore) Get(ctx context.Context, userID int64, platform model.SocialPlatform) (*model.SocialConnection, error) {
	row, err := s.queries.GetSocialConnection(ctx, sqlc.GetSocialConnectionParams{
		UserID:   userID,
		Platform: string(platform),
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toSocialConnectionModel(row), nil
}

func (s *socialConnectionStore) List(ctx context.Context, userID int64) ([]model.SocialConnection, error) {
	rows, err := s.queries.ListSocialConnections(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toSocialConnectionModel), nil
}

func (s *socialConnectionStore) Delete(ctx context.Context, userID int64, platform model.SocialPlatform) error {
	return affected(s.queries.DeleteSocialConnection(ctx, sqlc.DeleteSocialConnectionParams{
		UserID:   userID,
		Platform: string(platform),
	}))
}

func toSocialConnectionModel(row sqlc.SocialConnection) *model.SocialConnection {
	return &model.SocialConnection{
		ID:                row.ID,
		UserID:            row.UserID,
		Platform:          model.SocialPlatform(row.Platform),
		ExternalAccountID: row.ExternalAccountID,
		AccountName:       row.AccountName,
		AccessToken:       row.AccessToken,
		RefreshToken:      row.RefreshToken,
		TokenExpiresAt:    timePtr(row.TokenExpiresAt),
		CreatedAt:         row.CreatedAt.Time,
		UpdatedAt:         row.UpdatedAt.Time,
	}
}

type socialPostStore struct {
	queries *sqlc.Queries
}

func newSocialPostStore(queries *sqlc.Queries) SocialPostStore {
	return &socialPostStore{queries: queries}
}

func (s *socialPostStore) Create(ctx context.Context, post *model.SocialPost) error {
	row, err := s.queries.CreateSocialPost(ctx, sqlc.CreateSocialPostParams{
		ID:          post.ID,
		UserID:      post.UserID,
		Platform:    string(post.Platform),
		Content:     post.Content,
		ScheduledAt: timestamptz(post.ScheduledAt),
	})
	if err != nil {
		return err
	}
	*post = *toSocialPostModel(row)
	return nil
}

func (s *socialPostStore) GetByID(ctx context.Context, userID, id int64) (*model.SocialPost, error) {
	row, err := s.queries.GetSocialPost(ctx, sqlc.GetSocialPostParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toSocialPostModel(row), nil
}

func (s *socialPostStore) List(ctx context.Context, userID int64, status *model.SocialPostStatus) ([]model.SocialPost, error) {
	rows, err := s.queries.ListSocialPosts(ctx, sqlc.ListSocialPostsParams{UserID: userID, Status: stringPtr(status)})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toSocialPostModel), nil
}

func (s *socialPostStore) Cancel(ctx context.Context, userID, id int64) (*model.SocialPost, error) {
	row, err := s.queries.CancelSocialPost(ctx, sqlc.CancelSocialPostParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toSocialPostModel(row), nil
}

func (s *socialPostStore) ClaimDue(ctx context.Context, limit int32) ([]model.SocialPost, error) {
	rows, err := s.queries.ClaimDueSocialPosts(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toSocialPostModel), nil
}

func (s *socialPostStore) MarkPublished(ctx context.Context, id int64, externalID string) error {
	return s.queries.MarkSocialPostPublished(ctx, sqlc.MarkSocialPostPublishedParams{ExternalPostID: externalID, ID: id})
}

func (s *socialPostStore) MarkRetry(ctx context.Context, id int64, errMsg string) error {
	return s.queries.MarkSocialPostRetry(ctx, sqlc.MarkSocialPostRetryParams{LastError: errMsg, ID: id})
}

func (s *socialPostStore) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	return s.queries.MarkSocialPostFailed(ctx, sqlc.MarkSocialPostFailedParams{LastError: errMsg, ID: id})
}

func (s *socialPostStore) CountScheduled(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountScheduledSocialPosts(ctx, userID)
}

func toSocialPostModel(row sqlc.SocialPost) *model.SocialPost {
	return &model.SocialPost{
		ID:             row.ID,
		UserID:         row.UserID,
		Platform:       model.SocialPlatform(row.Platform),
		Content:        row.Content,
		ScheduledAt:    row.ScheduledAt.Time,
		Status:         model.SocialPostStatus(row.Status),
		Attempts:       int(row.Attempts),
		ExternalPostID: row.ExternalPostID,
		LastError:      row.LastError,
		PublishedAt:    timePtr(row.PublishedAt),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
