package domain

import "time"

// Client represents a salon client. TimeCoeff adjusts the expected
// procedure duration for this client relative to the standard one;
// IsFirstVisit adds a one-time consultation overhead.
type Client struct {
	ID           int64
	TelegramID   *string
	Name         string
	Phone        *string
	Email        *string
	TimeCoeff    float64
	IsFirstVisit bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
