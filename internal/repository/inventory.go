package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// InventoryRepository keeps seat counters in the events row. Reserve and
// Release are single conditional UPDATE statements, so concurrent calls on the
// same event serialize on its row lock and calls on other events do not wait.
type InventoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInventoryRepo(db *dbpg.DB) *InventoryRepository {
	return &InventoryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *InventoryRepository) GetAvailability(ctx context.Context, eventID string) (int, error) {
	available, _, err := r.state(ctx, eventID)
	return available, err
}

func (r *InventoryRepository) state(ctx context.Context, eventID string) (int, domain.EventStatus, error) {
	query := `SELECT available_seats, status FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return 0, "", storageErr("get availability", err)
	}

	var (
		available int
		status    domain.EventStatus
	)
	if err = row.Scan(&available, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRep {
			return 0, "", domain.ErrEventNotFound
		}
		return 0, "", storageErr("scan availability", err)
	}

	return available, status, nil
}

// Reserve is not retried: a lost acknowledgement followed by a retry would
// decrement twice.
func (r *InventoryRepository) Reserve(ctx context.Context, eventID string, count int) (int, error) {
	if err := domain.CheckSeatCount(count); err != nil {
		return 0, err
	}

	query := `UPDATE events
			  SET available_seats = available_seats - $2, updated_at = NOW()
			  WHERE id = $1 AND status = 'upcoming' AND available_seats >= $2
			  RETURNING available_seats`

	var available int
	err := r.db.Master.QueryRowContext(ctx, query, eventID, count).Scan(&available)
	if err == nil {
		return available, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		if pgCode(err) == pgInvalidTextRep {
			return 0, domain.ErrEventNotFound
		}
		return 0, storageErr("reserve seats", err)
	}

	// Nothing updated; the follow-up read tells which condition failed.
	current, status, err := r.state(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if status != domain.EventStatusUpcoming {
		return current, domain.ErrEventNotBookable
	}

	return current, &domain.InsufficientInventoryError{
		EventID:   eventID,
		Requested: count,
		Available: current,
	}
}

func (r *InventoryRepository) Release(ctx context.Context, eventID string, count int) (int, error) {
	if err := domain.CheckSeatCount(count); err != nil {
		return 0, err
	}

	query := `UPDATE events
			  SET available_seats = LEAST(available_seats + $2, total_seats), updated_at = NOW()
			  WHERE id = $1
			  RETURNING available_seats`

	var available int
	if err := r.db.Master.QueryRowContext(ctx, query, eventID, count).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRep {
			return 0, domain.ErrEventNotFound
		}
		return 0, storageErr("release seats", err)
	}

	return available, nil
}
