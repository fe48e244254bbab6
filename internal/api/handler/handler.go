package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/draft"
)

// CurrencyConverter is the currency-service surface the HTTP layer needs.
type CurrencyConverter interface {
	Convert(amount float64, from string) float64
	Snapshot() domain.ExchangeRates
	AddTrackedCurrency(ctx context.Context, code string) (domain.RateEntry, error)
	BaseCurrency() string
	DisplayCurrency() string
	SetDisplayCurrency(code string)
}

// BookingLister lists bookings from the hotel backend.
type BookingLister interface {
	ListBookings(ctx context.Context, filters map[string]string) ([]domain.Booking, error)
}

// SettingsStore persists display settings.
type SettingsStore interface {
	Load(ctx context.Context) (*domain.UserSettings, error)
	Save(ctx context.Context, s domain.UserSettings) error
}

type Handler struct {
	drafts   *draft.Registry
	currency CurrencyConverter
	bookings BookingLister
	settings SettingsStore
}

func NewHandler(drafts *draft.Registry, currency CurrencyConverter, bookings BookingLister, settings SettingsStore) *Handler {
	return &Handler{drafts: drafts, currency: currency, bookings: bookings, settings: settings}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
