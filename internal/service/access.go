package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AccessService struct {
	roles  ports.RoleRepo
	logger logger.Logger
}

func NewAccessService(roles ports.RoleRepo, logger logger.Logger) *AccessService {
	return &AccessService{roles: roles, logger: logger}
}

func (s *AccessService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	ok, err := s.roles.HasRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("check admin role: %w", err)
	}
	return ok, nil
}

func (s *AccessService) GrantAdmin(ctx context.Context, userID string) error {
	if err := s.roles.Grant(ctx, userID, domain.RoleAdmin); err != nil {
		return fmt.Errorf("grant admin role: %w", err)
	}

	s.logger.Info("admin role granted", logger.String("user_id", userID))
	return nil
}
