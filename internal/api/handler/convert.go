package handler

import (
	"net/http"
	"strconv"
	"strings"

	"hoteldesk/internal/currency"
)

type ConvertResponse struct {
	Amount    float64 `json:"amount" example:"1250"`
	From      string  `json:"from" example:"CZK"`
	Converted float64 `json:"converted" example:"51.25"`
	Formatted string  `json:"formatted" example:"51.25"`
	Currency  string  `json:"currency" example:"EUR"`
}

// Convert godoc
// @Summary Convert an amount into the display currency
// @Description Empty "from" means the base currency; an unknown currency converts at rate 1
// @Tags Currency
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string false "Source currency code"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Router /currency/convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	rawAmount := r.URL.Query().Get("amount")
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	from := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("from")))

	converted := h.currency.Convert(amount, from)
	writeJSON(w, http.StatusOK, ConvertResponse{
		Amount:    amount,
		From:      from,
		Converted: converted,
		Formatted: currency.FormatAmount(converted),
		Currency:  h.currency.DisplayCurrency(),
	})
}
