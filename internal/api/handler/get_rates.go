package handler

import (
	"net/http"
	"time"
)

type GetRatesResponse struct {
	Base        string             `json:"base" example:"CZK"`
	Display     string             `json:"display" example:"EUR"`
	Rates       map[string]float64 `json:"rates"`
	LastUpdated time.Time          `json:"last_updated" example:"2025-01-02T15:04:05Z"`
}

// GetRates godoc
// @Summary Current exchange-rate table
// @Description Rates are units of each currency per one unit of the base currency
// @Tags Currency
// @Produce json
// @Success 200 {object} GetRatesResponse
// @Router /currency/rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, _ *http.Request) {
	snapshot := h.currency.Snapshot()
	writeJSON(w, http.StatusOK, GetRatesResponse{
		Base:        h.currency.BaseCurrency(),
		Display:     h.currency.DisplayCurrency(),
		Rates:       snapshot.Rates,
		LastUpdated: snapshot.LastUpdated,
	})
}
