package handler

import (
	"errors"
	"net/http"

	"hoteldesk/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DeleteDraft godoc
// @Summary Discard a booking draft
// @Description Drop the draft session and cancel any pending estimate
// @Tags Drafts
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /drafts/{id} [delete]
func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft ID format")
		return
	}

	if err := h.drafts.Discard(id); err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			writeError(w, http.StatusNotFound, "draft not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to discard draft")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
