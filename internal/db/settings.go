package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shophq/opscore/internal/models"
)

// LatestShopSettings returns the most recently updated settings row, already
// coerced to numbers. ErrNotFound means no settings were ever saved; the
// caller decides whether to fall back to defaults.
func LatestShopSettings(ctx context.Context, database *sql.DB) (models.ShopSettings, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, start_time, late_penalty_per_minute, penalty_15m, penalty_30m, penalty_max,
		       ranking_reward_1, ranking_reward_2, ranking_reward_3, updated_at
		FROM shop_settings
		ORDER BY updated_at DESC
		LIMIT 1`)

	var raw models.ShopSettingsRow
	err := row.Scan(&raw.ID, &raw.StartTime, &raw.LatePenaltyPerMinute, &raw.Penalty15m,
		&raw.Penalty30m, &raw.PenaltyMax, &raw.RankingReward1, &raw.RankingReward2,
		&raw.RankingReward3, &raw.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShopSettings{}, ErrNotFound
		}
		return models.ShopSettings{}, fmt.Errorf("latest shop settings: %w", err)
	}
	return models.ParseShopSettings(raw)
}

// SaveShopSettings appends a new settings row ("most recently updated wins").
func SaveShopSettings(ctx context.Context, database *sql.DB, s models.ShopSettings) (int64, error) {
	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO shop_settings (start_time, late_penalty_per_minute, penalty_15m, penalty_30m,
		                           penalty_max, ranking_reward_1, ranking_reward_2, ranking_reward_3, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		s.StartTime,
		fmt.Sprintf("%.2f", s.LatePenaltyPerMinute),
		fmt.Sprintf("%.2f", s.Penalty15m),
		fmt.Sprintf("%.2f", s.Penalty30m),
		fmt.Sprintf("%.2f", s.PenaltyMax),
		fmt.Sprintf("%.2f", s.RankingReward1),
		fmt.Sprintf("%.2f", s.RankingReward2),
		fmt.Sprintf("%.2f", s.RankingReward3),
		time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save shop settings: %w", err)
	}
	return id, nil
}
