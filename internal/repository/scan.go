package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/stpnv0/SeatReserve/internal/domain"
)

const eventColumns = `e.id, e.title, e.description, e.category_id, e.location, e.venue_name, e.image_url,
	e.start_date, e.end_date, e.price, e.total_seats, e.available_seats, e.status, e.featured,
	e.tags, e.organizer_id, e.created_at, e.updated_at`

const bookingColumns = `b.id, b.event_id, b.user_id, b.tickets_count, b.total_amount, b.status,
	b.created_at, b.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func eventDest(e *domain.Event, categoryID, organizerID *sql.NullString) []any {
	return []any{
		&e.ID, &e.Title, &e.Description, categoryID, &e.Location, &e.VenueName, &e.ImageURL,
		&e.StartDate, &e.EndDate, &e.Price, &e.TotalSeats, &e.AvailableSeats, &e.Status, &e.Featured,
		pq.Array(&e.Tags), organizerID, &e.CreatedAt, &e.UpdatedAt,
	}
}

func fillEvent(e *domain.Event, categoryID, organizerID sql.NullString) {
	if categoryID.Valid {
		id := categoryID.String
		e.CategoryID = &id
	}
	e.OrganizerID = organizerID.String
	if e.Tags == nil {
		e.Tags = []string{}
	}
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e                       domain.Event
		categoryID, organizerID sql.NullString
	)
	if err := row.Scan(eventDest(&e, &categoryID, &organizerID)...); err != nil {
		return nil, err
	}
	fillEvent(&e, categoryID, organizerID)
	return &e, nil
}

func bookingDest(b *domain.Booking) []any {
	return []any{
		&b.ID, &b.EventID, &b.UserID, &b.TicketsCount, &b.TotalAmount, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	}
}
