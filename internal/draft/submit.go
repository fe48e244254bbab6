package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hoteldesk/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidDraft            = errors.New("draft failed validation")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
)

var validate = validator.New()

// submission is the client-side contract checked before any network call.
type submission struct {
	GuestID        int64  `validate:"required"`
	RoomID         int64  `validate:"required"`
	CheckIn        string `validate:"required,datetime=2006-01-02"`
	CheckOut       string `validate:"required,datetime=2006-01-02"`
	NumberOfGuests int    `validate:"required,gte=1"`
}

func validateDraft(d domain.BookingDraft) error {
	sub := submission{
		GuestID:        d.GuestID,
		RoomID:         d.RoomID,
		CheckIn:        d.CheckIn,
		CheckOut:       d.CheckOut,
		NumberOfGuests: d.NumberOfGuests,
	}
	if err := validate.Struct(sub); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	in, _ := time.Parse(domain.DateLayout, d.CheckIn)
	out, _ := time.Parse(domain.DateLayout, d.CheckOut)
	if !out.After(in) {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, ErrCheckOutNotAfterCheckIn)
	}
	return nil
}

// Submit validates the draft, converts a user-entered total from the display
// currency to base and persists the booking through the backend. The session
// is discarded only on success; a failed submission leaves the form state
// intact. A blank total is omitted entirely so the backend computes its own.
func (r *Registry) Submit(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	s, err := r.Get(id)
	if err != nil {
		return domain.Booking{}, err
	}

	s.mu.Lock()
	d := s.draft
	s.mu.Unlock()

	if err = validateDraft(d); err != nil {
		return domain.Booking{}, err
	}

	if d.TotalAmount != nil {
		// Raw unrounded value: rounding happens at display time only.
		base := r.converter.ConvertToBase(*d.TotalAmount, "")
		d.TotalAmount = &base
	}

	var booking domain.Booking
	if d.BookingID != 0 {
		booking, err = r.store.UpdateBooking(ctx, d.BookingID, d)
	} else {
		booking, err = r.store.CreateBooking(ctx, d)
	}
	if err != nil {
		return domain.Booking{}, err
	}

	_ = r.Discard(id)
	return booking, nil
}
