package handler

import (
	"errors"
	"net/http"

	"hoteldesk/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetDraft godoc
// @Summary Get a booking draft
// @Description Current field values, estimate state and quote of a draft session
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} errorResponse
// @Router /drafts/{id} [get]
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft ID format")
		return
	}

	s, err := h.drafts.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			writeError(w, http.StatusNotFound, "draft not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load draft")
		return
	}

	writeJSON(w, http.StatusOK, h.draftView(s))
}
