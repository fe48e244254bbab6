package main

import (
	"os"

	"hoteldesk/internal/app"
)

// @title HotelDesk Gateway API
// @version 1.0
// @description Admin dashboard gateway: booking drafts with live price estimates, currency conversion and display settings.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
