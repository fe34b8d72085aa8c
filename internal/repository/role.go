package repository

import (
	"context"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RoleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoleRepo(db *dbpg.DB) *RoleRepository {
	return &RoleRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RoleRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, role)
	if err != nil {
		return false, storageErr("check role", err)
	}

	var ok bool
	if err = row.Scan(&ok); err != nil {
		if pgCode(err) == pgInvalidTextRep {
			return false, nil
		}
		return false, storageErr("scan role", err)
	}

	return ok, nil
}

func (r *RoleRepository) Grant(ctx context.Context, userID, role string) error {
	query := `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
			  ON CONFLICT (user_id, role) DO NOTHING`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, role); err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil
		}
		return storageErr("grant role", err)
	}

	return nil
}
