package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"hoteldesk/internal/domain"
)

// BackendClient speaks the hotel backend's REST contract. All amounts it
// sends and receives are denominated in the base currency.
type BackendClient struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewBackendClient(httpClient *http.Client, baseURL string, token string) *BackendClient {
	return &BackendClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/"), token: token}
}

type bookingPage struct {
	Items       []domain.Booking `json:"items"`
	Total       int              `json:"total"`
	Pages       int              `json:"pages"`
	CurrentPage int              `json:"current_page"`
}

type calculateRateRequest struct {
	RoomID         int64   `json:"room_id"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	NumberOfGuests int     `json:"number_of_guests,omitempty"`
	ServiceIDs     []int64 `json:"service_ids,omitempty"`
}

type calculateRateResponse struct {
	TotalAmount    *float64 `json:"total_amount"`
	CalculatedRate *float64 `json:"calculated_rate"`
}

type createBookingRequest struct {
	GuestID        int64                `json:"guest_id"`
	RoomID         int64                `json:"room_id"`
	CheckIn        string               `json:"check_in"`
	CheckOut       string               `json:"check_out"`
	NumberOfGuests int                  `json:"number_of_guests"`
	Status         domain.BookingStatus `json:"status,omitempty"`
	PaymentStatus  domain.PaymentStatus `json:"payment_status,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	TotalAmount    *float64             `json:"total_amount,omitempty"`
	Services       []int64              `json:"services,omitempty"`
}

type patchStatusRequest struct {
	Status        domain.BookingStatus  `json:"status"`
	PaymentStatus *domain.PaymentStatus `json:"payment_status,omitempty"`
}

// ListBookings fetches bookings matching the given filters. The backend
// answers either with a pagination envelope or a bare array depending on the
// query; both are normalized to a plain slice, anything else to an empty one.
func (c *BackendClient) ListBookings(ctx context.Context, filters map[string]string) ([]domain.Booking, error) {
	q := url.Values{}
	for k, v := range filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	endpoint := c.baseURL + "/bookings"
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	raw, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return normalizeBookingList(raw), nil
}

// normalizeBookingList accepts either {items: [...]} or a bare array and
// degrades to an empty slice for any other shape.
func normalizeBookingList(raw json.RawMessage) []domain.Booking {
	var page bookingPage
	if err := json.Unmarshal(raw, &page); err == nil && page.Items != nil {
		return page.Items
	}
	var bare []domain.Booking
	if err := json.Unmarshal(raw, &bare); err == nil && bare != nil {
		return bare
	}
	return []domain.Booking{}
}

func (c *BackendClient) CreateBooking(ctx context.Context, draft domain.BookingDraft) (domain.Booking, error) {
	req := createBookingRequest{
		GuestID:        draft.GuestID,
		RoomID:         draft.RoomID,
		CheckIn:        draft.CheckIn,
		CheckOut:       draft.CheckOut,
		NumberOfGuests: draft.NumberOfGuests,
		Status:         draft.Status,
		PaymentStatus:  draft.PaymentStatus,
		Notes:          draft.Notes,
		TotalAmount:    draft.TotalAmount,
		Services:       draft.ServiceIDs,
	}
	raw, err := c.do(ctx, http.MethodPost, c.baseURL+"/bookings", req)
	if err != nil {
		return domain.Booking{}, err
	}
	return decodeBooking(raw)
}

// UpdateBooking sends the changed booking fields. Selected services are not
// resent on edit; only creation carries them.
func (c *BackendClient) UpdateBooking(ctx context.Context, id int64, draft domain.BookingDraft) (domain.Booking, error) {
	req := createBookingRequest{
		GuestID:        draft.GuestID,
		RoomID:         draft.RoomID,
		CheckIn:        draft.CheckIn,
		CheckOut:       draft.CheckOut,
		NumberOfGuests: draft.NumberOfGuests,
		Status:         draft.Status,
		PaymentStatus:  draft.PaymentStatus,
		Notes:          draft.Notes,
		TotalAmount:    draft.TotalAmount,
	}
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/bookings/%d", c.baseURL, id), req)
	if err != nil {
		return domain.Booking{}, err
	}
	return decodeBooking(raw)
}

func (c *BackendClient) PatchBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, payment *domain.PaymentStatus) (domain.Booking, error) {
	raw, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/bookings/%d/status", c.baseURL, id), patchStatusRequest{Status: status, PaymentStatus: payment})
	if err != nil {
		return domain.Booking{}, err
	}
	return decodeBooking(raw)
}

func (c *BackendClient) DeleteBooking(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/bookings/%d", c.baseURL, id), nil)
	return err
}

// CalculateRate asks the backend for the total stay price of a complete
// query. The backend answers with either total_amount or calculated_rate.
func (c *BackendClient) CalculateRate(ctx context.Context, q domain.RateQuery) (float64, error) {
	req := calculateRateRequest{
		RoomID:         q.RoomID,
		CheckIn:        q.CheckIn,
		CheckOut:       q.CheckOut,
		NumberOfGuests: q.NumberOfGuests,
		ServiceIDs:     q.ServiceIDs,
	}
	raw, err := c.do(ctx, http.MethodPost, c.baseURL+"/bookings/calculate-rate", req)
	if err != nil {
		return 0, err
	}

	var res calculateRateResponse
	if err = json.Unmarshal(raw, &res); err != nil {
		return 0, fmt.Errorf("failed to decode rate calculation response: %w", err)
	}
	switch {
	case res.TotalAmount != nil:
		return *res.TotalAmount, nil
	case res.CalculatedRate != nil:
		return *res.CalculatedRate, nil
	default:
		return 0, fmt.Errorf("rate calculation response carries no amount")
	}
}

func decodeBooking(raw json.RawMessage) (domain.Booking, error) {
	var b domain.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return domain.Booking{}, fmt.Errorf("failed to decode booking: %w", err)
	}
	return b, nil
}

type backendError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *BackendClient) do(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s %s request: %w", method, endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response of %s %s: %w", method, endpoint, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var be backendError
		if unmarshalErr := json.Unmarshal(raw, &be); unmarshalErr == nil {
			if msg := firstNonEmpty(be.Error, be.Message); msg != "" {
				return nil, fmt.Errorf("backend returned %d: %s", resp.StatusCode, msg)
			}
		}
		return nil, fmt.Errorf("unexpected status %d from %s %s", resp.StatusCode, method, endpoint)
	}
	return raw, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
