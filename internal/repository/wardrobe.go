package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stylecrate/outfit-service/internal/domain"
)

const wardrobeColumns = `id, user_id, type, category, material, color, insulation,
	style_tags, dress_codes, season_tags, last_worn, created_at`

// GetWardrobe returns the full wardrobe snapshot for a user, ordered by id so
// downstream selection is deterministic.
func (r *Repository) GetWardrobe(ctx context.Context, userID int64) ([]domain.ClothingItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+wardrobeColumns+`
		FROM wardrobe_items
		WHERE user_id = $1
		ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query wardrobe for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.ClothingItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over wardrobe items: %w", err)
	}
	return items, nil
}

// GetItemsByIDs loads specific wardrobe items, used when feedback refers back
// to a stored recommendation.
func (r *Repository) GetItemsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.ClothingItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+wardrobeColumns+`
		FROM wardrobe_items
		WHERE user_id = $1 AND id = ANY($2)
		ORDER BY id`, userID, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query wardrobe items for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.ClothingItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over wardrobe items: %w", err)
	}
	return items, nil
}

// MarkItemWorn stamps last_worn, which feeds the cooldown filter on the next
// recommendation.
func (r *Repository) MarkItemWorn(ctx context.Context, userID, itemID int64, when time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE wardrobe_items SET last_worn = $3 WHERE user_id = $1 AND id = $2`,
		userID, itemID, when,
	)
	if err != nil {
		return fmt.Errorf("mark item %d worn for user %d: %w", itemID, userID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (domain.ClothingItem, error) {
	var item domain.ClothingItem
	var styleTags, dressCodes, seasonTags []string
	err := row.Scan(
		&item.ID, &item.UserID, &item.Type, &item.Category, &item.Material,
		&item.Color, &item.Insulation, &styleTags, &dressCodes, &seasonTags,
		&item.LastWorn, &item.CreatedAt,
	)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("scan wardrobe item: %w", err)
	}
	item.StyleTags = styleTags
	item.SeasonTags = seasonTags
	item.DressCodes = make([]domain.DressCode, len(dressCodes))
	for i, dc := range dressCodes {
		item.DressCodes[i] = domain.DressCode(dc)
	}
	return item, nil
}
