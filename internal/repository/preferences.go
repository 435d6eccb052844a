package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stylecrate/outfit-service/internal/domain"
)

// GetPreferences loads the user's preference snapshot, including the version
// used for optimistic writes. A user with no stored row gets onboarding
// defaults at version 0.
func (r *Repository) GetPreferences(ctx context.Context, userID int64) (domain.UserPreferences, error) {
	prefs := domain.UserPreferences{UserID: userID}

	err := r.pool.QueryRow(ctx,
		`SELECT colors, styles, materials, cooldown_days, temperature_sensitivity, version
		FROM user_preferences WHERE user_id = $1`,
		userID,
	).Scan(&prefs.Colors, &prefs.Styles, &prefs.Materials,
		&prefs.CooldownDays, &prefs.TemperatureSensitivity, &prefs.Version)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultPreferences(userID), nil
		}
		return domain.UserPreferences{}, fmt.Errorf("query preferences for user %d: %w", userID, err)
	}

	return prefs, nil
}

// UpdatePreferences writes the adjusted preferences with a compare-and-swap on
// the version read earlier. ErrVersionConflict means a concurrent feedback
// write won; the caller re-reads and retries.
func (r *Repository) UpdatePreferences(ctx context.Context, prefs domain.UserPreferences) error {
	if prefs.Version == 0 {
		// First write for this user; the unique constraint arbitrates races.
		tag, err := r.pool.Exec(ctx,
			`INSERT INTO user_preferences
				(user_id, colors, styles, materials, cooldown_days, temperature_sensitivity, version)
			VALUES ($1, $2, $3, $4, $5, $6, 1)
			ON CONFLICT (user_id) DO NOTHING`,
			prefs.UserID, prefs.Colors, prefs.Styles, prefs.Materials,
			prefs.CooldownDays, prefs.TemperatureSensitivity,
		)
		if err != nil {
			return fmt.Errorf("insert preferences for user %d: %w", prefs.UserID, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrVersionConflict
		}
		return nil
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE user_preferences
		SET colors = $2, styles = $3, materials = $4,
			cooldown_days = $5, temperature_sensitivity = $6,
			version = version + 1
		WHERE user_id = $1 AND version = $7`,
		prefs.UserID, prefs.Colors, prefs.Styles, prefs.Materials,
		prefs.CooldownDays, prefs.TemperatureSensitivity, prefs.Version,
	)
	if err != nil {
		return fmt.Errorf("update preferences for user %d: %w", prefs.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}
