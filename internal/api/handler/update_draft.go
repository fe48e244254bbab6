package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/draft"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UpdateDraft godoc
// @Summary Update booking draft fields
// @Description Merge changed fields into the draft; a complete stay tuple schedules a fresh price estimate
// @Tags Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param update body draft.Update true "Changed fields"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /drafts/{id} [patch]
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft ID format")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 4096)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var u draft.Update
	if err := dec.Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
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

	s.Apply(u)
	writeJSON(w, http.StatusOK, h.draftView(s))
}
