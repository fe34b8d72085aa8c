package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Append(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, event_id, user_id, tickets_count, total_amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Master.ExecContext(
		ctx, query, b.ID, b.EventID, b.UserID,
		b.TicketsCount, b.TotalAmount, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgForeignKeyViolation:
			return storageErr("insert booking", domain.ErrEventNotFound)
		default:
			return storageErr("insert booking", err)
		}
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, storageErr("get booking", err)
	}

	var b domain.Booking
	if err = row.Scan(bookingDest(&b)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRep {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storageErr("scan booking", err)
	}

	return &b, nil
}

func (r *BookingRepository) MarkCancelled(ctx context.Context, id string) (*domain.Booking, domain.BookingStatus, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", storageErr("begin tx", err)
	}
	defer tx.Rollback()

	var prev domain.BookingStatus
	lockQuery := `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&prev); err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRep {
			return nil, "", domain.ErrBookingNotFound
		}
		return nil, "", storageErr("lock booking", err)
	}
	if prev == domain.BookingStatusCancelled {
		return nil, "", domain.ErrAlreadyCancelled
	}

	query := `UPDATE bookings b
			  SET status = $2, updated_at = NOW()
			  WHERE b.id = $1
			  RETURNING ` + bookingColumns
	var b domain.Booking
	if err = tx.QueryRowContext(ctx, query, id, domain.BookingStatusCancelled).Scan(bookingDest(&b)...); err != nil {
		return nil, "", storageErr("cancel booking", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, "", storageErr("commit cancel", err)
	}

	return &b, prev, nil
}

func (r *BookingRepository) RestoreStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return storageErr("restore booking status", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("booking rows affected", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BookingView, error) {
	query := `SELECT ` + bookingColumns + `, ` + eventColumns + `, COALESCE(c.name, '')
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  LEFT JOIN categories c ON c.id = e.category_id
			  WHERE b.user_id = $1
			  ORDER BY b.created_at DESC, b.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, storageErr("list bookings by user", err)
	}
	defer rows.Close()

	res := make([]*domain.BookingView, 0)
	for rows.Next() {
		var (
			v                       domain.BookingView
			categoryID, organizerID sql.NullString
		)
		dest := append(bookingDest(&v.Booking), eventDest(&v.Event, &categoryID, &organizerID)...)
		dest = append(dest, &v.CategoryName)
		if err = rows.Scan(dest...); err != nil {
			return nil, storageErr("scan booking", err)
		}
		fillEvent(&v.Event, categoryID, organizerID)
		res = append(res, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("list bookings by user", err)
	}

	return res, nil
}

func (r *BookingRepository) Summary(ctx context.Context) (*domain.Stats, error) {
	query := `SELECT COUNT(*),
			  		COALESCE(SUM(total_amount) FILTER (WHERE status = $1), 0)
			  FROM bookings`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, storageErr("bookings summary", err)
	}

	st := domain.Stats{TotalRevenue: decimal.Zero}
	if err = row.Scan(&st.TotalBookings, &st.TotalRevenue); err != nil {
		return nil, storageErr("scan bookings summary", err)
	}

	return &st, nil
}
