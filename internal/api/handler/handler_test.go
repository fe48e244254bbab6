package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hoteldesk/internal/currency"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/draft"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCurrency struct{ mock.Mock }

func (m *MockCurrency) Convert(amount float64, from string) float64 {
	args := m.Called(amount, from)
	v, _ := args.Get(0).(float64)
	return v
}

func (m *MockCurrency) Snapshot() domain.ExchangeRates {
	args := m.Called()
	s, _ := args.Get(0).(domain.ExchangeRates)
	return s
}

func (m *MockCurrency) AddTrackedCurrency(ctx context.Context, code string) (domain.RateEntry, error) {
	args := m.Called(ctx, code)
	e, _ := args.Get(0).(domain.RateEntry)
	return e, args.Error(1)
}

func (m *MockCurrency) BaseCurrency() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCurrency) DisplayCurrency() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCurrency) SetDisplayCurrency(code string) {
	m.Called(code)
}

type MockBookingLister struct{ mock.Mock }

func (m *MockBookingLister) ListBookings(ctx context.Context, filters map[string]string) ([]domain.Booking, error) {
	args := m.Called(ctx, filters)
	bs, _ := args.Get(0).([]domain.Booking)
	return bs, args.Error(1)
}

type MockBookingStore struct{ mock.Mock }

func (m *MockBookingStore) ListBookings(ctx context.Context, filters map[string]string) ([]domain.Booking, error) {
	args := m.Called(ctx, filters)
	bs, _ := args.Get(0).([]domain.Booking)
	return bs, args.Error(1)
}

func (m *MockBookingStore) CreateBooking(ctx context.Context, d domain.BookingDraft) (domain.Booking, error) {
	args := m.Called(ctx, d)
	b, _ := args.Get(0).(domain.Booking)
	return b, args.Error(1)
}

func (m *MockBookingStore) UpdateBooking(ctx context.Context, id int64, d domain.BookingDraft) (domain.Booking, error) {
	args := m.Called(ctx, id, d)
	b, _ := args.Get(0).(domain.Booking)
	return b, args.Error(1)
}

func (m *MockBookingStore) PatchBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, payment *domain.PaymentStatus) (domain.Booking, error) {
	args := m.Called(ctx, id, status, payment)
	b, _ := args.Get(0).(domain.Booking)
	return b, args.Error(1)
}

func (m *MockBookingStore) DeleteBooking(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSettings struct{ mock.Mock }

func (m *MockSettings) Load(ctx context.Context) (*domain.UserSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.UserSettings)
	return s, args.Error(1)
}

func (m *MockSettings) Save(ctx context.Context, s domain.UserSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type errorJSON struct {
	Error string `json:"error"`
}

// stubCalc never produces an estimate; these tests exercise the HTTP layer,
// not the quote flow.
type stubCalc struct{}

func (stubCalc) CalculateRate(context.Context, domain.RateQuery) (float64, error) {
	return 0, errors.New("no estimate available")
}

type staticConverter struct{}

func (staticConverter) ConvertToBase(amount float64, _ string) float64 { return amount }

type testDeps struct {
	currency *MockCurrency
	bookings *MockBookingLister
	store    *MockBookingStore
	settings *MockSettings
	registry *draft.Registry
}

func newTestHandler() (*Handler, *testDeps) {
	deps := &testDeps{
		currency: new(MockCurrency),
		bookings: new(MockBookingLister),
		store:    new(MockBookingStore),
		settings: new(MockSettings),
	}
	deps.registry = draft.NewRegistry(stubCalc{}, nil, deps.store, staticConverter{}, time.Millisecond)
	return NewHandler(deps.registry, deps.currency, deps.bookings, deps.settings), deps
}

func withDraftID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func completeDraftBody() []byte {
	b, _ := json.Marshal(domain.BookingDraft{
		GuestID:        7,
		RoomID:         101,
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-04",
		NumberOfGuests: 2,
	})
	return b
}

// --- Drafts ---

func TestHandler_CreateDraft_EmptyBody(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/drafts", nil)
	rr := httptest.NewRecorder()

	h.CreateDraft(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res DraftResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.NotEmpty(t, res.ID)
	require.Equal(t, "idle", res.State)
	require.Nil(t, res.Quote)
}

func TestHandler_CreateDraft_InitialFields(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/drafts", bytes.NewReader(completeDraftBody()))
	rr := httptest.NewRecorder()

	h.CreateDraft(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var res DraftResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, int64(101), res.Draft.RoomID)
	require.Equal(t, "2025-06-01", res.Draft.CheckIn)
}

func TestHandler_CreateDraft_UnknownField(t *testing.T) {
	h, deps := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/drafts", bytes.NewReader([]byte(`{"surprise":1}`)))
	rr := httptest.NewRecorder()

	h.CreateDraft(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Zero(t, deps.registry.Len())
}

func TestHandler_GetDraft_InvalidID(t *testing.T) {
	h, _ := newTestHandler()

	req := withDraftID(httptest.NewRequest(http.MethodGet, "/drafts/not-a-uuid", nil), "not-a-uuid")
	rr := httptest.NewRecorder()

	h.GetDraft(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "invalid draft ID format", ej.Error)
}

func TestHandler_GetDraft_NotFound(t *testing.T) {
	h, _ := newTestHandler()

	id := uuid.New().String()
	req := withDraftID(httptest.NewRequest(http.MethodGet, "/drafts/"+id, nil), id)
	rr := httptest.NewRecorder()

	h.GetDraft(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_UpdateDraft_MergesFields(t *testing.T) {
	h, deps := newTestHandler()
	s := deps.registry.Create(domain.BookingDraft{RoomID: 101})

	body := []byte(`{"check_in":"2025-06-01","notes":"late arrival"}`)
	req := withDraftID(httptest.NewRequest(http.MethodPatch, "/drafts/"+s.ID.String(), bytes.NewReader(body)), s.ID.String())
	rr := httptest.NewRecorder()

	h.UpdateDraft(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res DraftResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, int64(101), res.Draft.RoomID)
	require.Equal(t, "2025-06-01", res.Draft.CheckIn)
	require.Equal(t, "late arrival", res.Draft.Notes)
}

func TestHandler_DeleteDraft(t *testing.T) {
	h, deps := newTestHandler()
	s := deps.registry.Create(domain.BookingDraft{})

	req := withDraftID(httptest.NewRequest(http.MethodDelete, "/drafts/"+s.ID.String(), nil), s.ID.String())
	rr := httptest.NewRecorder()

	h.DeleteDraft(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Zero(t, deps.registry.Len())

	rr = httptest.NewRecorder()
	h.DeleteDraft(rr, withDraftID(httptest.NewRequest(http.MethodDelete, "/drafts/"+s.ID.String(), nil), s.ID.String()))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_SubmitDraft_InvalidDraft(t *testing.T) {
	h, deps := newTestHandler()
	s := deps.registry.Create(domain.BookingDraft{RoomID: 101})

	req := withDraftID(httptest.NewRequest(http.MethodPost, "/drafts/"+s.ID.String()+"/submit", nil), s.ID.String())
	rr := httptest.NewRecorder()

	h.SubmitDraft(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	deps.store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	require.Equal(t, 1, deps.registry.Len())
}

func TestHandler_SubmitDraft_Success(t *testing.T) {
	h, deps := newTestHandler()
	s := deps.registry.Create(domain.BookingDraft{
		GuestID:        7,
		RoomID:         101,
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-04",
		NumberOfGuests: 2,
	})

	deps.store.On("CreateBooking", mock.Anything, mock.Anything).Return(domain.Booking{ID: 42, RoomID: 101}, nil).Once()

	req := withDraftID(httptest.NewRequest(http.MethodPost, "/drafts/"+s.ID.String()+"/submit", nil), s.ID.String())
	rr := httptest.NewRecorder()

	h.SubmitDraft(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res domain.Booking
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, int64(42), res.ID)
	require.Zero(t, deps.registry.Len())
	deps.store.AssertExpectations(t)
}

func TestHandler_SubmitDraft_Unauthorized(t *testing.T) {
	h, deps := newTestHandler()
	s := deps.registry.Create(domain.BookingDraft{
		GuestID:        7,
		RoomID:         101,
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-04",
		NumberOfGuests: 2,
	})

	deps.store.On("CreateBooking", mock.Anything, mock.Anything).Return(domain.Booking{}, domain.ErrUnauthorized).Once()

	req := withDraftID(httptest.NewRequest(http.MethodPost, "/drafts/"+s.ID.String()+"/submit", nil), s.ID.String())
	rr := httptest.NewRecorder()

	h.SubmitDraft(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, 1, deps.registry.Len())
}

// --- Bookings ---

func TestHandler_ListBookings_Success(t *testing.T) {
	h, deps := newTestHandler()

	bookings := []domain.Booking{{ID: 1, RoomID: 101}, {ID: 2, RoomID: 102}}
	deps.bookings.On("ListBookings", mock.Anything, map[string]string{"status": "confirmed"}).Return(bookings, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/bookings?status=confirmed", nil)
	rr := httptest.NewRecorder()

	h.ListBookings(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res ListBookingsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Items, 2)
	deps.bookings.AssertExpectations(t)
}

func TestHandler_ListBookings_Unauthorized(t *testing.T) {
	h, deps := newTestHandler()
	deps.bookings.On("ListBookings", mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized).Once()

	rr := httptest.NewRecorder()
	h.ListBookings(rr, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_ListBookings_BackendError(t *testing.T) {
	h, deps := newTestHandler()
	deps.bookings.On("ListBookings", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	rr := httptest.NewRecorder()
	h.ListBookings(rr, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	require.Equal(t, http.StatusBadGateway, rr.Code)
}

// --- Currency ---

func TestHandler_GetRates(t *testing.T) {
	h, deps := newTestHandler()

	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	deps.currency.On("Snapshot").Return(domain.ExchangeRates{Rates: map[string]float64{"CZK": 1, "EUR": 0.04}, LastUpdated: now}).Once()
	deps.currency.On("BaseCurrency").Return("CZK").Once()
	deps.currency.On("DisplayCurrency").Return("EUR").Once()

	rr := httptest.NewRecorder()
	h.GetRates(rr, httptest.NewRequest(http.MethodGet, "/currency/rates", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetRatesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "CZK", res.Base)
	require.Equal(t, "EUR", res.Display)
	require.InDelta(t, 0.04, res.Rates["EUR"], 1e-9)
	require.True(t, res.LastUpdated.Equal(now))
}

func TestHandler_Convert_Success(t *testing.T) {
	h, deps := newTestHandler()

	deps.currency.On("Convert", 1250.0, "CZK").Return(50.0).Once()
	deps.currency.On("DisplayCurrency").Return("EUR").Once()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodGet, "/currency/convert?amount=1250&from=czk", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.InDelta(t, 50.0, res.Converted, 1e-9)
	require.Equal(t, "50.00", res.Formatted)
	require.Equal(t, "EUR", res.Currency)
	deps.currency.AssertExpectations(t)
}

func TestHandler_Convert_InvalidAmount(t *testing.T) {
	h, deps := newTestHandler()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodGet, "/currency/convert?amount=abc", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	deps.currency.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything)
}

func TestHandler_AddCurrency_InvalidCode(t *testing.T) {
	h, deps := newTestHandler()

	deps.currency.On("AddTrackedCurrency", mock.Anything, "X").Return(domain.RateEntry{}, currency.ErrInvalidCurrencyCode).Once()

	req := httptest.NewRequest(http.MethodPost, "/currency/tracked", bytes.NewReader([]byte(`{"code":"X"}`)))
	rr := httptest.NewRecorder()

	h.AddCurrency(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_AddCurrency_Success(t *testing.T) {
	h, deps := newTestHandler()

	deps.currency.On("AddTrackedCurrency", mock.Anything, "CHF").Return(domain.RateEntry{Code: "CHF", Rate: 0.039}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/currency/tracked", bytes.NewReader([]byte(`{"code":"CHF"}`)))
	rr := httptest.NewRecorder()

	h.AddCurrency(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var res domain.RateEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "CHF", res.Code)
	require.InDelta(t, 0.039, res.Rate, 1e-9)
}

// --- Settings ---

func TestHandler_GetSettings_DefaultsWhenUnsaved(t *testing.T) {
	h, deps := newTestHandler()

	deps.settings.On("Load", mock.Anything).Return(nil, nil).Once()
	deps.currency.On("BaseCurrency").Return("CZK").Once()
	deps.currency.On("DisplayCurrency").Return("EUR").Once()

	rr := httptest.NewRecorder()
	h.GetSettings(rr, httptest.NewRequest(http.MethodGet, "/settings", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res domain.UserSettings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "en", res.Language)
	require.Equal(t, "EUR", res.Currency)
	require.Equal(t, 30, res.AutoLogoutMinutes)
}

func TestHandler_GetSettings_Persisted(t *testing.T) {
	h, deps := newTestHandler()

	saved := &domain.UserSettings{Language: "cs", Currency: "CZK", HotelName: "U Zvonu", AutoLogoutMinutes: 15}
	deps.settings.On("Load", mock.Anything).Return(saved, nil).Once()

	rr := httptest.NewRecorder()
	h.GetSettings(rr, httptest.NewRequest(http.MethodGet, "/settings", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res domain.UserSettings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "cs", res.Language)
	require.Equal(t, "U Zvonu", res.HotelName)
}

func TestHandler_UpdateSettings_SwitchesDisplayCurrency(t *testing.T) {
	h, deps := newTestHandler()

	deps.settings.On("Save", mock.Anything, mock.MatchedBy(func(s domain.UserSettings) bool {
		return s.Currency == "EUR"
	})).Return(nil).Once()
	deps.currency.On("SetDisplayCurrency", "EUR").Once()

	body := []byte(`{"language":"en","currency":"EUR","date_format":"DD.MM.YYYY","time_format":"24h","hotel_name":"U Zvonu","auto_logout_minutes":30}`)
	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.UpdateSettings(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	deps.settings.AssertExpectations(t)
	deps.currency.AssertExpectations(t)
}

func TestHandler_UpdateSettings_SaveFailure(t *testing.T) {
	h, deps := newTestHandler()

	deps.settings.On("Save", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	body := []byte(`{"language":"en","currency":"EUR","date_format":"DD.MM.YYYY","time_format":"24h","hotel_name":"","auto_logout_minutes":30}`)
	rr := httptest.NewRecorder()
	h.UpdateSettings(rr, httptest.NewRequest(http.MethodPut, "/settings", bytes.NewReader(body)))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	deps.currency.AssertNotCalled(t, "SetDisplayCurrency", mock.Anything)
}
