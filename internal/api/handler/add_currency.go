package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hoteldesk/internal/currency"

	"github.com/sirupsen/logrus"
)

type AddCurrencyRequest struct {
	Code string `json:"code" example:"CHF"`
}

// AddCurrency godoc
// @Summary Track an additional currency
// @Description Fetch the current rate for the code and add it to the table
// @Tags Currency
// @Accept json
// @Produce json
// @Param currency body AddCurrencyRequest true "Currency code"
// @Success 201 {object} domain.RateEntry
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /currency/tracked [post]
func (h *Handler) AddCurrency(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req AddCurrencyRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.currency.AddTrackedCurrency(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, currency.ErrInvalidCurrencyCode) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "AddCurrency", "code": req.Code}).Error("currency tracking failed")
		writeError(w, http.StatusBadGateway, "failed to track currency")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}
