package handler

import (
	"encoding/json"
	"net/http"

	"hoteldesk/internal/domain"

	"github.com/sirupsen/logrus"
)

// UpdateSettings godoc
// @Summary Save display settings
// @Description Persist settings and switch the display currency
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body domain.UserSettings true "Settings"
// @Success 200 {object} domain.UserSettings
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /settings [put]
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4096)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var s domain.UserSettings
	if err := dec.Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settings.Save(r.Context(), s); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "UpdateSettings"}).Error("settings save failed")
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	h.currency.SetDisplayCurrency(s.Currency)

	writeJSON(w, http.StatusOK, s)
}
