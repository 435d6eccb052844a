package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stylecrate/outfit-service/internal/domain"
)

// SaveRecommendation persists a generated result so later feedback can refer
// back to the outfit it rated.
func (r *Repository) SaveRecommendation(ctx context.Context, rec domain.StoredRecommendation) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO recommendations (id, user_id, item_ids, confidence, reasoning, missing_items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserID, rec.ItemIDs, rec.Confidence, rec.Reasoning, rec.MissingItems, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recommendation %s: %w", rec.ID, err)
	}
	return nil
}

// GetRecommendation loads a stored recommendation owned by the given user.
func (r *Repository) GetRecommendation(ctx context.Context, userID int64, id string) (*domain.StoredRecommendation, error) {
	rec := &domain.StoredRecommendation{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, item_ids, confidence, reasoning, missing_items, created_at
		FROM recommendations WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.ItemIDs, &rec.Confidence, &rec.Reasoning, &rec.MissingItems, &rec.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecommendationNotFound
		}
		return nil, fmt.Errorf("query recommendation %s: %w", id, err)
	}

	return rec, nil
}
