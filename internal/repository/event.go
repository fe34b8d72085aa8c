package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, category_id, location, venue_name, image_url,
			  		start_date, end_date, price, total_seats, available_seats, status, featured,
			  		tags, organizer_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.CategoryID, e.Location, e.VenueName, e.ImageURL,
		e.StartDate, e.EndDate, e.Price, e.TotalSeats, e.AvailableSeats, e.Status, e.Featured,
		pq.Array(e.Tags), nullIfEmpty(e.OrganizerID), now,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrCategoryNotFound
		}
		return storageErr("insert event", err)
	}
	e.CreatedAt, e.UpdatedAt = now, now

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete event", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("event rows affected", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, storageErr("get event", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRep {
			return nil, domain.ErrEventNotFound
		}
		return nil, storageErr("scan event", err)
	}

	return e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `
		SELECT ` + eventColumns + `,
			COALESCE(c.name, ''),
			p.id, COALESCE(p.full_name, ''), COALESCE(p.email, ''), COALESCE(p.phone, '')
		FROM events e
		LEFT JOIN categories c ON c.id = e.category_id
		LEFT JOIN profiles p ON p.id = e.organizer_id
		WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, storageErr("get event details", err)
	}

	var (
		d                       domain.EventDetails
		categoryID, organizerID sql.NullString
		profileID               sql.NullString
		organizer               domain.Profile
	)
	dest := append(eventDest(&d.Event, &categoryID, &organizerID),
		&d.CategoryName,
		&profileID, &organizer.FullName, &organizer.Email, &organizer.Phone,
	)
	if err = row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRep {
			return nil, domain.ErrEventNotFound
		}
		return nil, storageErr("scan event details", err)
	}
	fillEvent(&d.Event, categoryID, organizerID)
	if profileID.Valid {
		organizer.ID = profileID.String
		d.Organizer = &organizer
	}

	return &d, nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.status = $1
			    AND (e.title ILIKE $2 OR e.description ILIKE $2)
			    AND ($3::uuid IS NULL OR e.category_id = $3::uuid)
			  ORDER BY e.start_date ASC, e.id`

	return r.queryEvents(ctx, "list upcoming events", query,
		domain.EventStatusUpcoming, containsPattern(filter.SearchText), nullIfEmpty(filter.CategoryID),
	)
}

func (r *EventRepository) ListFeatured(ctx context.Context, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.status = $1 AND e.featured
			  ORDER BY e.start_date ASC, e.id
			  LIMIT $2`

	return r.queryEvents(ctx, "list featured events", query, domain.EventStatusUpcoming, limit)
}

func (r *EventRepository) queryEvents(ctx context.Context, op, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if pgCode(err) == pgInvalidTextRep {
			return []*domain.Event{}, nil
		}
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storageErr("scan event", err)
		}
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}

	return res, nil
}

func (r *EventRepository) ListAll(ctx context.Context) ([]*domain.EventDetails, error) {
	query := `SELECT ` + eventColumns + `, COALESCE(c.name, '')
			  FROM events e
			  LEFT JOIN categories c ON c.id = e.category_id
			  ORDER BY e.created_at DESC, e.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, storageErr("list events", err)
	}
	defer rows.Close()

	res := make([]*domain.EventDetails, 0)
	for rows.Next() {
		var (
			d                       domain.EventDetails
			categoryID, organizerID sql.NullString
		)
		dest := append(eventDest(&d.Event, &categoryID, &organizerID), &d.CategoryName)
		if err = rows.Scan(dest...); err != nil {
			return nil, storageErr("scan event", err)
		}
		fillEvent(&d.Event, categoryID, organizerID)
		res = append(res, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("list events", err)
	}

	return res, nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM events`)
	if err != nil {
		return 0, storageErr("count events", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, storageErr("scan events count", err)
	}

	return n, nil
}

func (r *EventRepository) MarkPast(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `UPDATE events e
			  SET status = $2, updated_at = NOW()
			  WHERE e.status = $1 AND e.end_date < $3
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.EventStatusUpcoming, domain.EventStatusPast, now,
	)
	if err != nil {
		return nil, storageErr("mark past events", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storageErr("scan event", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
