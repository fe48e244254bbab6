package handler

import (
	"time"

	"hoteldesk/internal/currency"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/draft"
)

type QuoteView struct {
	Amount        float64   `json:"amount" example:"1250"`
	AmountDisplay string    `json:"amount_display" example:"50.00"`
	Currency      string    `json:"currency" example:"EUR"`
	ReceivedAt    time.Time `json:"received_at" example:"2025-01-02T15:04:05Z"`
}

type DraftResponse struct {
	ID    string              `json:"id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Draft domain.BookingDraft `json:"draft"`
	State string              `json:"state" example:"quoted"`
	Quote *QuoteView          `json:"quote,omitempty"`
}

// draftView snapshots a session. Quote amounts are kept in the base currency
// and rendered in the display currency alongside.
func (h *Handler) draftView(s *draft.Session) DraftResponse {
	d, state, q := s.Snapshot()
	res := DraftResponse{ID: s.ID.String(), Draft: d, State: string(state)}
	if q != nil {
		res.Quote = &QuoteView{
			Amount:        q.Amount,
			AmountDisplay: currency.FormatAmount(h.currency.Convert(q.Amount, "")),
			Currency:      h.currency.DisplayCurrency(),
			ReceivedAt:    q.ReceivedAt,
		}
	}
	return res
}
