package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/avatar-service/internal/domain"
	"github.com/marcos-nsantos/avatar-service/internal/domain/entity"
)

type AvatarRepo struct {
	pool *pgxpool.Pool
}

func NewAvatarRepo(pool *pgxpool.Pool) *AvatarRepo {
	return &AvatarRepo{pool: pool}
}

// Upsert keeps exactly one avatar row per user: a second upload
// replaces the record in place, mirroring the overwrite semantics of
// the object store.
func (r *AvatarRepo) Upsert(ctx context.Context, avatar *entity.Avatar) error {
	query := `
		INSERT INTO avatars (id, user_id, url, key, mime_type, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET url = EXCLUDED.url,
		    key = EXCLUDED.key,
		    mime_type = EXCLUDED.mime_type,
		    size = EXCLUDED.size,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		avatar.ID, avatar.UserID, avatar.URL, avatar.Key,
		avatar.MimeType, avatar.Size, avatar.CreatedAt, avatar.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting avatar: %w", err)
	}
	return nil
}

func (r *AvatarRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Avatar, error) {
	query := `
		SELECT id, user_id, url, key, mime_type, size, created_at, updated_at
		FROM avatars
		WHERE user_id = $1
	`
	var avatar entity.Avatar
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&avatar.ID, &avatar.UserID, &avatar.URL, &avatar.Key,
		&avatar.MimeType, &avatar.Size, &avatar.CreatedAt, &avatar.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAvatarNotFound
		}
		return nil, fmt.Errorf("querying avatar: %w", err)
	}
	return &avatar, nil
}

func (r *AvatarRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM avatars WHERE user_id = $1`
	result, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("deleting avatar: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAvatarNotFound
	}
	return nil
}
