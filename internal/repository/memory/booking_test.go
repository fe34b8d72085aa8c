package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_MarkCancelled(t *testing.T) {
	s := NewStore()
	repo := NewBookingRepo(s)
	e := seedEvent(t, s, nil)
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, &domain.Booking{
		ID: "b1", EventID: e.ID, UserID: "u1", TicketsCount: 2, Status: domain.BookingStatusConfirmed,
	}))

	b, prev, err := repo.MarkCancelled(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, prev)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)

	_, _, err = repo.MarkCancelled(ctx, "b1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	_, _, err = repo.MarkCancelled(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	require.NoError(t, repo.RestoreStatus(ctx, "b1", prev))
	got, _ := repo.GetByID(ctx, "b1")
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}

func TestBookingRepository_Append_Duplicate(t *testing.T) {
	s := NewStore()
	repo := NewBookingRepo(s)
	e := seedEvent(t, s, nil)
	b := &domain.Booking{ID: "b1", EventID: e.ID, UserID: "u1", TicketsCount: 1}

	require.NoError(t, repo.Append(context.Background(), b))
	err := repo.Append(context.Background(), b)

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestBookingRepository_ListByUser_NewestFirst(t *testing.T) {
	s := NewStore()
	repo := NewBookingRepo(s)
	cat := DefaultCategories[0]
	e := seedEvent(t, s, func(e *domain.Event) { e.CategoryID = &cat.ID })
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Append(ctx, &domain.Booking{ID: "old", EventID: e.ID, UserID: "u1", TicketsCount: 1, CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Append(ctx, &domain.Booking{ID: "new", EventID: e.ID, UserID: "u1", TicketsCount: 1, CreatedAt: now}))
	require.NoError(t, repo.Append(ctx, &domain.Booking{ID: "other", EventID: e.ID, UserID: "u2", TicketsCount: 1, CreatedAt: now}))

	views, err := repo.ListByUser(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "new", views[0].Booking.ID)
	assert.Equal(t, "old", views[1].Booking.ID)
	assert.Equal(t, e.ID, views[0].Event.ID)
	assert.Equal(t, cat.Name, views[0].CategoryName)
}

func TestBookingRepository_Summary(t *testing.T) {
	s := NewStore()
	repo := NewBookingRepo(s)
	e := seedEvent(t, s, nil)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &domain.Booking{ID: "b1", EventID: e.ID, TicketsCount: 3,
		TotalAmount: decimal.RequireFromString("75.00"), Status: domain.BookingStatusConfirmed}))
	require.NoError(t, repo.Append(ctx, &domain.Booking{ID: "b2", EventID: e.ID, TicketsCount: 1,
		TotalAmount: decimal.RequireFromString("25.00"), Status: domain.BookingStatusCancelled}))

	st, err := repo.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalBookings)
	assert.Equal(t, "75.00", st.TotalRevenue.StringFixed(2))
	assert.Equal(t, 3, repo.ActiveTickets(e.ID))
}

func TestCategoryRepository_List_SortedByName(t *testing.T) {
	cats, err := NewCategoryRepo(NewStore()).List(context.Background())

	require.NoError(t, err)
	require.Len(t, cats, len(DefaultCategories))
	assert.Equal(t, "Arts & Theatre", cats[0].Name)
	assert.Equal(t, "Technology", cats[len(cats)-1].Name)
}

func TestRoleRepository_GrantAndHasRole(t *testing.T) {
	repo := NewRoleRepo(NewStore())
	ctx := context.Background()

	ok, err := repo.HasRole(ctx, "u1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Grant(ctx, "u1", domain.RoleAdmin))

	ok, err = repo.HasRole(ctx, "u1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)
}
