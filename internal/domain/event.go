package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusPast      EventStatus = "past"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	CategoryID     *string         `json:"category_id"`
	Location       string          `json:"location"`
	VenueName      string          `json:"venue_name"`
	ImageURL       string          `json:"image_url"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Price          decimal.Decimal `json:"price"`
	TotalSeats     int             `json:"total_seats"`
	AvailableSeats int             `json:"available_seats"`
	Status         EventStatus     `json:"status"`
	Featured       bool            `json:"featured"`
	Tags           []string        `json:"tags"`
	OrganizerID    string          `json:"organizer_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Bookable reports whether new reservations may be taken for the event.
func (e *Event) Bookable() bool {
	return e.Status == EventStatusUpcoming
}

type EventDetails struct {
	Event        Event    `json:"event"`
	CategoryName string   `json:"category_name"`
	Organizer    *Profile `json:"organizer"`
}

type EventFilter struct {
	SearchText string
	CategoryID string
}

type CreateEventInput struct {
	Title       string
	Description string
	CategoryID  *string
	Location    string
	VenueName   string
	ImageURL    string
	StartDate   time.Time
	EndDate     time.Time
	Price       decimal.Decimal
	TotalSeats  int
	Featured    bool
	Tags        []string
	OrganizerID string
}
