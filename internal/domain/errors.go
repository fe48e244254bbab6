package domain

import "errors"

var (
	ErrUnauthorized    = errors.New("backend rejected credentials")
	ErrBookingNotFound = errors.New("booking not found")
	ErrDraftNotFound   = errors.New("draft not found")
)
