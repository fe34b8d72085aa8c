package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, full_name, email, phone, telegram_chat_id, created_at, updated_at
			  FROM profiles
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, storageErr("get profile", err)
	}

	var p domain.Profile
	if err = row.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.TelegramChatID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRep {
			return nil, domain.ErrProfileNotFound
		}
		return nil, storageErr("scan profile", err)
	}

	return &p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, full_name, email, phone, telegram_chat_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)
			  ON CONFLICT (id) DO UPDATE
			  SET full_name = EXCLUDED.full_name,
			      email = EXCLUDED.email,
			      phone = EXCLUDED.phone,
			      telegram_chat_id = EXCLUDED.telegram_chat_id,
			      updated_at = EXCLUDED.updated_at
			  RETURNING created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		p.ID, p.FullName, p.Email, p.Phone, p.TelegramChatID, time.Now().UTC(),
	)
	if err != nil {
		return storageErr("upsert profile", err)
	}
	if err = row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return storageErr("upsert profile", err)
	}

	return nil
}
