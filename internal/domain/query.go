package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the wire format for stay dates.
const DateLayout = "2006-01-02"

// RateQuery is an immutable input tuple for a rate calculation: room, stay
// range, optional guest count and selected ancillary services. Constructed
// fresh on every recalculation trigger.
type RateQuery struct {
	RoomID         int64   `json:"room_id"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	NumberOfGuests int     `json:"number_of_guests,omitempty"`
	ServiceIDs     []int64 `json:"service_ids,omitempty"`
}

// Complete reports whether the query has enough inputs to be sent to the
// rate calculator: room and both dates present, check-out strictly after
// check-in.
func (q RateQuery) Complete() bool {
	if q.RoomID == 0 || q.CheckIn == "" || q.CheckOut == "" {
		return false
	}
	in, err := time.Parse(DateLayout, q.CheckIn)
	if err != nil {
		return false
	}
	out, err := time.Parse(DateLayout, q.CheckOut)
	if err != nil {
		return false
	}
	return out.After(in)
}

// Fingerprint returns a stable key identifying the input tuple. Service IDs
// are order-insensitive.
func (q RateQuery) Fingerprint() string {
	ids := slices.Clone(q.ServiceIDs)
	slices.Sort(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return fmt.Sprintf("%d|%s|%s|%d|%s", q.RoomID, q.CheckIn, q.CheckOut, q.NumberOfGuests, strings.Join(parts, ","))
}
