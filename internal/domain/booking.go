package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID           string          `json:"id"`
	EventID      string          `json:"event_id"`
	UserID       string          `json:"user_id"`
	TicketsCount int             `json:"tickets_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       BookingStatus   `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BookingView is a booking with its event and category resolved for the dashboard.
type BookingView struct {
	Booking      Booking `json:"booking"`
	Event        Event   `json:"event"`
	CategoryName string  `json:"category_name"`
}

type BookInput struct {
	EventID string
	UserID  string
	Tickets int
}

// CheckSeatCount rejects seat counts that would move a counter the wrong way.
func CheckSeatCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: seat count must be positive, got %d", ErrInvalidRequest, count)
	}
	return nil
}
