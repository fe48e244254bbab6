package postgres

import (
	"context"
	"errors"
	"fmt"

	"hoteldesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Load returns the stored display settings, or nil when none were saved yet.
func (r *SettingsRepository) Load(ctx context.Context) (*domain.UserSettings, error) {
	const q = `
		select language, currency, date_format, time_format, hotel_name, auto_logout_minutes
		from settings where key = $1;
	`

	var s domain.UserSettings
	err := r.pool.QueryRow(ctx, q, domain.SettingsKey).Scan(
		&s.Language,
		&s.Currency,
		&s.DateFormat,
		&s.TimeFormat,
		&s.HotelName,
		&s.AutoLogoutMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s domain.UserSettings) error {
	const q = `
		insert into settings (key, language, currency, date_format, time_format, hotel_name, auto_logout_minutes, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7, now())
		on conflict (key) do update set
			language = excluded.language,
			currency = excluded.currency,
			date_format = excluded.date_format,
			time_format = excluded.time_format,
			hotel_name = excluded.hotel_name,
			auto_logout_minutes = excluded.auto_logout_minutes,
			updated_at = now();
	`

	if _, err := r.pool.Exec(ctx, q,
		domain.SettingsKey,
		s.Language,
		s.Currency,
		s.DateFormat,
		s.TimeFormat,
		s.HotelName,
		s.AutoLogoutMinutes,
	); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
