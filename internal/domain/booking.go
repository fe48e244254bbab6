package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a persisted booking as returned by the hotel backend.
// Monetary amounts are denominated in the base currency.
type Booking struct {
	ID             int64         `json:"id"`
	GuestID        int64         `json:"guest_id"`
	RoomID         int64         `json:"room_id"`
	CheckIn        string        `json:"check_in"`
	CheckOut       string        `json:"check_out"`
	NumberOfGuests int           `json:"number_of_guests"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	Notes          string        `json:"notes,omitempty"`
	TotalAmount    *float64      `json:"total_amount,omitempty"`
	Services       []int64       `json:"services,omitempty"`
	CreatedAt      time.Time     `json:"created_at,omitzero"`
}

// BookingDraft is the working state of a booking form: everything the user
// has filled in so far. A draft with a non-zero BookingID edits an existing
// booking; otherwise submission creates a new one. TotalAmount overrides are
// entered in the display currency and converted to base only on submission.
type BookingDraft struct {
	BookingID      int64         `json:"booking_id,omitempty"`
	GuestID        int64         `json:"guest_id,omitempty"`
	RoomID         int64         `json:"room_id,omitempty"`
	CheckIn        string        `json:"check_in,omitempty"`
	CheckOut       string        `json:"check_out,omitempty"`
	NumberOfGuests int           `json:"number_of_guests,omitempty"`
	Status         BookingStatus `json:"status,omitempty"`
	PaymentStatus  PaymentStatus `json:"payment_status,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	TotalAmount    *float64      `json:"total_amount,omitempty"`
	ServiceIDs     []int64       `json:"service_ids,omitempty"`
}

// RateQuote is a transient price estimate in the base currency. It is
// superseded by the next successful quote and never persisted.
type RateQuote struct {
	Amount     float64   `json:"amount"`
	ReceivedAt time.Time `json:"received_at"`
}
