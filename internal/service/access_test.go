package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccessService_IsAdmin(t *testing.T) {
	roles := mocks.NewMockRoleRepo(t)
	svc := NewAccessService(roles, newTestLogger(t))

	roles.EXPECT().HasRole(mock.Anything, "u1", domain.RoleAdmin).Return(true, nil)
	roles.EXPECT().HasRole(mock.Anything, "u2", domain.RoleAdmin).Return(false, nil)

	ok, err := svc.IsAdmin(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(context.Background(), "u2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessService_IsAdmin_Anonymous(t *testing.T) {
	svc := NewAccessService(mocks.NewMockRoleRepo(t), newTestLogger(t))

	ok, err := svc.IsAdmin(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessService_IsAdmin_Error(t *testing.T) {
	roles := mocks.NewMockRoleRepo(t)
	svc := NewAccessService(roles, newTestLogger(t))

	cause := errors.New("db down")
	roles.EXPECT().HasRole(mock.Anything, "u1", domain.RoleAdmin).Return(false, cause)

	_, err := svc.IsAdmin(context.Background(), "u1")

	assert.ErrorIs(t, err, cause)
}

func TestAccessService_GrantAdmin(t *testing.T) {
	roles := mocks.NewMockRoleRepo(t)
	svc := NewAccessService(roles, newTestLogger(t))

	roles.EXPECT().Grant(mock.Anything, "u1", domain.RoleAdmin).Return(nil)

	require.NoError(t, svc.GrantAdmin(context.Background(), "u1"))
}
