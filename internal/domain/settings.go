package domain

// SettingsKey is the fixed key under which display settings are stored,
// one row per installation.
const SettingsKey = "hoteldesk.settings"

// UserSettings holds the display preferences previously kept in browser
// local storage.
type UserSettings struct {
	Language          string `json:"language"`
	Currency          string `json:"currency"`
	DateFormat        string `json:"date_format"`
	TimeFormat        string `json:"time_format"`
	HotelName         string `json:"hotel_name"`
	AutoLogoutMinutes int    `json:"auto_logout_minutes"`
}

// DefaultSettings are applied until a user saves their own.
func DefaultSettings(baseCurrency string) UserSettings {
	return UserSettings{
		Language:          "en",
		Currency:          baseCurrency,
		DateFormat:        "DD.MM.YYYY",
		TimeFormat:        "24h",
		AutoLogoutMinutes: 30,
	}
}
