package draft

import (
	"sync"
	"time"

	"hoteldesk/internal/adapters"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/quote"

	"github.com/google/uuid"
)

// Session is one open booking form: its working draft plus the orchestrator
// keeping the price estimate in sync. Discarded on cancel or successful
// submit.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu    sync.Mutex
	draft domain.BookingDraft
	orch  *quote.Orchestrator
}

// Update carries changed form fields; nil pointers leave the current value
// untouched. ClearTotalAmount removes a previously entered override so the
// field is omitted on submission.
type Update struct {
	GuestID          *int64                `json:"guest_id,omitempty"`
	RoomID           *int64                `json:"room_id,omitempty"`
	CheckIn          *string               `json:"check_in,omitempty"`
	CheckOut         *string               `json:"check_out,omitempty"`
	NumberOfGuests   *int                  `json:"number_of_guests,omitempty"`
	Status           *domain.BookingStatus `json:"status,omitempty"`
	PaymentStatus    *domain.PaymentStatus `json:"payment_status,omitempty"`
	Notes            *string               `json:"notes,omitempty"`
	TotalAmount      *float64              `json:"total_amount,omitempty"`
	ClearTotalAmount bool                  `json:"clear_total_amount,omitempty"`
	ServiceIDs       *[]int64              `json:"service_ids,omitempty"`
}

// Apply merges the update into the draft and re-feeds the orchestrator with
// the resulting input tuple.
func (s *Session) Apply(u Update) domain.BookingDraft {
	s.mu.Lock()
	if u.GuestID != nil {
		s.draft.GuestID = *u.GuestID
	}
	if u.RoomID != nil {
		s.draft.RoomID = *u.RoomID
	}
	if u.CheckIn != nil {
		s.draft.CheckIn = *u.CheckIn
	}
	if u.CheckOut != nil {
		s.draft.CheckOut = *u.CheckOut
	}
	if u.NumberOfGuests != nil {
		s.draft.NumberOfGuests = *u.NumberOfGuests
	}
	if u.Status != nil {
		s.draft.Status = *u.Status
	}
	if u.PaymentStatus != nil {
		s.draft.PaymentStatus = *u.PaymentStatus
	}
	if u.Notes != nil {
		s.draft.Notes = *u.Notes
	}
	if u.TotalAmount != nil {
		v := *u.TotalAmount
		s.draft.TotalAmount = &v
	}
	if u.ClearTotalAmount {
		s.draft.TotalAmount = nil
	}
	if u.ServiceIDs != nil {
		s.draft.ServiceIDs = append([]int64(nil), (*u.ServiceIDs)...)
	}
	d := s.draft
	s.mu.Unlock()

	s.orch.SetQuery(rateQueryOf(d))
	return d
}

// Snapshot returns the draft together with the estimate state.
func (s *Session) Snapshot() (domain.BookingDraft, quote.State, *domain.RateQuote) {
	s.mu.Lock()
	d := s.draft
	s.mu.Unlock()

	state := s.orch.State()
	if q, ok := s.orch.Quote(); ok {
		return d, state, &q
	}
	return d, state, nil
}

func rateQueryOf(d domain.BookingDraft) domain.RateQuery {
	return domain.RateQuery{
		RoomID:         d.RoomID,
		CheckIn:        d.CheckIn,
		CheckOut:       d.CheckOut,
		NumberOfGuests: d.NumberOfGuests,
		ServiceIDs:     d.ServiceIDs,
	}
}

// AmountConverter is the slice of the currency service submission needs:
// mapping a display-currency override back to the base currency.
type AmountConverter interface {
	ConvertToBase(amount float64, from string) float64
}

// Registry owns the open draft sessions of the process.
type Registry struct {
	calc      adapters.RateCalculator
	cache     adapters.QuoteCache
	store     adapters.BookingStore
	converter AmountConverter
	debounce  time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry(calc adapters.RateCalculator, cache adapters.QuoteCache, store adapters.BookingStore, converter AmountConverter, debounce time.Duration) *Registry {
	return &Registry{
		calc:      calc,
		cache:     cache,
		store:     store,
		converter: converter,
		debounce:  debounce,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Create opens a new session. The initial draft may be empty (new booking)
// or prefilled from an existing booking (edit, BookingID set).
func (r *Registry) Create(initial domain.BookingDraft) *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		draft:     initial,
		orch:      quote.New(r.calc, r.cache, r.debounce),
	}
	s.orch.SetQuery(rateQueryOf(initial))

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return s, nil
}

// Discard drops the session and invalidates its pending rate queries.
func (r *Registry) Discard(id uuid.UUID) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return domain.ErrDraftNotFound
	}
	s.orch.Close()
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
