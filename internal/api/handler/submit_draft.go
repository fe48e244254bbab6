package handler

import (
	"errors"
	"net/http"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/draft"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubmitDraft godoc
// @Summary Submit a booking draft
// @Description Validate the draft and create or update the booking on the hotel backend
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} domain.Booking
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /drafts/{id}/submit [post]
func (h *Handler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft ID format")
		return
	}

	booking, err := h.drafts.Submit(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDraftNotFound):
			writeError(w, http.StatusNotFound, "draft not found")
		case errors.Is(err, draft.ErrInvalidDraft):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "backend rejected credentials")
		default:
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "SubmitDraft", "draft_id": id}).Error("booking submission failed")
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, booking)
}
