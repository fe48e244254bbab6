package currency

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"hoteldesk/internal/adapters"
	"hoteldesk/internal/domain"

	"github.com/sirupsen/logrus"
)

var ErrInvalidCurrencyCode = errors.New("currency code must be exactly 3 letters")

// DefaultBase is the currency all amounts are persisted in server-side.
const DefaultBase = "CZK"

// defaultRates is the fallback table used until the first successful fetch,
// expressed as units per 1 CZK.
var defaultRates = map[string]float64{
	"CZK": 1.0,
	"EUR": 0.041,
	"USD": 0.044,
	"GBP": 0.035,
	"PLN": 0.175,
	"HUF": 16.2,
	"CHF": 0.039,
}

// Service converts amounts between the fixed base currency and the active
// display currency. Lookups are fail-open: a missing rate behaves as 1, so
// conversion never errors; availability is preferred over correctness here.
//
// The table is read-mostly: readers take an RLock, the refresh job and
// AddTrackedCurrency are the only writers.
type Service struct {
	source adapters.RatesSource
	repo   adapters.CurrencyRepository

	mu          sync.RWMutex
	base        string
	display     string
	rates       map[string]float64
	lastUpdated time.Time
}

func NewService(source adapters.RatesSource, repo adapters.CurrencyRepository, base, display string) *Service {
	if base == "" {
		base = DefaultBase
	}
	if display == "" {
		display = base
	}

	rates := make(map[string]float64, len(defaultRates))
	if base == DefaultBase {
		maps.Copy(rates, defaultRates)
	}
	rates[base] = 1.0

	return &Service{
		source:  source,
		repo:    repo,
		base:    base,
		display: display,
		rates:   rates,
	}
}

// Convert maps an amount from the given currency to the display currency.
// An empty from means the base currency. No rounding is applied; formatting
// happens only at display time.
func (s *Service) Convert(amount float64, from string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if from == "" {
		from = s.base
	}
	return amount / s.rateOf(from) * s.rateOf(s.display)
}

// ConvertToBase maps an amount from the given currency back to the base
// currency. An empty from means the display currency. The raw unrounded
// value is what goes to the backend, so rounding error does not compound
// across round-trips.
func (s *Service) ConvertToBase(amount float64, from string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if from == "" {
		from = s.display
	}
	return amount / s.rateOf(from)
}

// rateOf falls open to 1 for unknown codes. Caller holds at least an RLock.
func (s *Service) rateOf(code string) float64 {
	if r, ok := s.rates[code]; ok && r > 0 {
		return r
	}
	return 1
}

// RefreshRates pulls the latest table from the source. Failures are logged
// and swallowed: the current (default or previously fetched) table stays in
// effect. New values overwrite, codes missing from the feed are retained, so
// tracked currencies survive a partial feed.
func (s *Service) RefreshRates(ctx context.Context) {
	fetched, err := s.source.FetchRates(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Rate refresh failed, keeping current table")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.rates, fetched.Rates)
	s.rates[s.base] = 1.0
	if !fetched.LastUpdated.IsZero() {
		s.lastUpdated = fetched.LastUpdated
	} else {
		s.lastUpdated = time.Now().UTC()
	}
}

// AddTrackedCurrency validates the code, asks the source for a rate, merges
// it into the table and switches the display currency to it. Invalid codes
// fail before any network call.
func (s *Service) AddTrackedCurrency(ctx context.Context, code string) (domain.RateEntry, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !validCode(code) {
		return domain.RateEntry{}, ErrInvalidCurrencyCode
	}

	rate, err := s.source.TrackCurrency(ctx, code)
	if err != nil {
		return domain.RateEntry{}, fmt.Errorf("failed to track currency %q: %w", code, err)
	}

	s.mu.Lock()
	s.rates[code] = rate
	s.rates[s.base] = 1.0
	s.display = code
	s.mu.Unlock()

	entry := domain.RateEntry{Code: code, Rate: rate}
	if s.repo != nil {
		if saveErr := s.repo.SaveTracked(ctx, entry); saveErr != nil {
			logrus.WithError(saveErr).WithField("code", code).Warn("Tracked currency not persisted")
		}
	}
	return entry, nil
}

// Seed merges persisted tracked currencies into the table at startup.
func (s *Service) Seed(entries []domain.RateEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		if e.Rate > 0 {
			s.rates[e.Code] = e.Rate
		}
	}
	s.rates[s.base] = 1.0
}

func (s *Service) Snapshot() domain.ExchangeRates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ExchangeRates{
		Rates:       maps.Clone(s.rates),
		LastUpdated: s.lastUpdated,
	}
}

func (s *Service) BaseCurrency() string { return s.base }

func (s *Service) DisplayCurrency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display
}

func (s *Service) SetDisplayCurrency(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !validCode(code) {
		return
	}
	s.mu.Lock()
	s.display = code
	s.mu.Unlock()
}

// FormatAmount renders an amount with the fixed 2 decimals used on screen.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func validCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
