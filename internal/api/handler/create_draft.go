package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"hoteldesk/internal/domain"
)

// CreateDraft godoc
// @Summary Open a booking draft
// @Description Open a new draft session, optionally pre-filled for editing an existing booking
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft body domain.BookingDraft false "Initial field values"
// @Success 201 {object} DraftResponse
// @Failure 400 {object} errorResponse
// @Router /drafts [post]
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var initial domain.BookingDraft

	r.Body = http.MaxBytesReader(w, r.Body, 4096)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&initial); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s := h.drafts.Create(initial)
	writeJSON(w, http.StatusCreated, h.draftView(s))
}
