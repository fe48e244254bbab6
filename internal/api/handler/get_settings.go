package handler

import (
	"net/http"

	"hoteldesk/internal/domain"

	"github.com/sirupsen/logrus"
)

// GetSettings godoc
// @Summary Get display settings
// @Description Persisted settings, or the defaults when nothing was saved yet
// @Tags Settings
// @Produce json
// @Success 200 {object} domain.UserSettings
// @Failure 500 {object} errorResponse
// @Router /settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Load(r.Context())
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetSettings"}).Error("settings load failed")
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	if s == nil {
		defaults := domain.DefaultSettings(h.currency.BaseCurrency())
		defaults.Currency = h.currency.DisplayCurrency()
		writeJSON(w, http.StatusOK, defaults)
		return
	}

	writeJSON(w, http.StatusOK, *s)
}
