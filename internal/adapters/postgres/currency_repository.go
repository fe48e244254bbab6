package postgres

import (
	"context"
	"fmt"

	"hoteldesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CurrencyRepository struct {
	pool *pgxpool.Pool
}

func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{pool: pool}
}

func (r *CurrencyRepository) ListTracked(ctx context.Context) ([]domain.RateEntry, error) {
	const q = `select code, rate from tracked_currencies order by code;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracked currencies: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.RateEntry, 0, 16)
	for rows.Next() {
		var e domain.RateEntry
		if err = rows.Scan(&e.Code, &e.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan tracked currency: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracked currencies: %w", err)
	}
	return entries, nil
}

func (r *CurrencyRepository) SaveTracked(ctx context.Context, entry domain.RateEntry) error {
	const q = `
		insert into tracked_currencies (code, rate, added_at)
		values ($1, $2, now())
		on conflict (code) do update set rate = excluded.rate;
	`

	if _, err := r.pool.Exec(ctx, q, entry.Code, entry.Rate); err != nil {
		return fmt.Errorf("failed to save tracked currency %q: %w", entry.Code, err)
	}
	return nil
}
