package adapters

import (
	"context"

	"hoteldesk/internal/domain"
)

// RatesSource provides the exchange-rate table and on-demand tracking of new
// currencies.
type RatesSource interface {
	FetchRates(ctx context.Context) (domain.ExchangeRates, error)
	TrackCurrency(ctx context.Context, code string) (float64, error)
}

// RateCalculator computes a total price in the base currency for a complete
// rate query.
type RateCalculator interface {
	CalculateRate(ctx context.Context, q domain.RateQuery) (float64, error)
}

// BookingStore is the subset of the hotel backend used by draft submission
// and the bookings listing.
type BookingStore interface {
	ListBookings(ctx context.Context, filters map[string]string) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, draft domain.BookingDraft) (domain.Booking, error)
	UpdateBooking(ctx context.Context, id int64, draft domain.BookingDraft) (domain.Booking, error)
	PatchBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, payment *domain.PaymentStatus) (domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// QuoteCache caches successful rate quotes by query fingerprint.
type QuoteCache interface {
	Get(key string) (float64, bool)
	Set(key string, amount float64)
}

// SettingsRepository persists display settings under the fixed settings key.
type SettingsRepository interface {
	Load(ctx context.Context) (*domain.UserSettings, error)
	Save(ctx context.Context, s domain.UserSettings) error
}

// CurrencyRepository persists the set of tracked currency codes.
type CurrencyRepository interface {
	ListTracked(ctx context.Context) ([]domain.RateEntry, error)
	SaveTracked(ctx context.Context, entry domain.RateEntry) error
}
