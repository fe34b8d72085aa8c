package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_ListUpcoming_Filters(t *testing.T) {
	s := NewStore()
	repo := NewEventRepo(s)
	music := DefaultCategories[0].ID
	tech := DefaultCategories[1].ID
	base := time.Now().Add(24 * time.Hour).UTC()

	jazz := seedEvent(t, s, func(e *domain.Event) {
		e.Title, e.Description, e.CategoryID = "Jazz Night", "Smooth evening", &music
		e.StartDate = base.Add(2 * time.Hour)
	})
	rock := seedEvent(t, s, func(e *domain.Event) {
		e.Title, e.Description, e.CategoryID = "Rock Fest", "Loud JAZZ-free zone", &music
		e.StartDate = base.Add(time.Hour)
	})
	conf := seedEvent(t, s, func(e *domain.Event) {
		e.Title, e.Description, e.CategoryID = "GoConf", "Talks about jazz and Go", &tech
		e.StartDate = base
	})
	seedEvent(t, s, func(e *domain.Event) {
		e.Title, e.CategoryID, e.Status = "Old jazz", &music, domain.EventStatusPast
	})

	ctx := context.Background()

	all, err := repo.ListUpcoming(ctx, domain.EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{conf.ID, rock.ID, jazz.ID}, ids(all))

	bySearch, err := repo.ListUpcoming(ctx, domain.EventFilter{SearchText: "jAzZ"})
	require.NoError(t, err)
	assert.Equal(t, []string{conf.ID, rock.ID, jazz.ID}, ids(bySearch))

	both, err := repo.ListUpcoming(ctx, domain.EventFilter{SearchText: "jazz", CategoryID: music})
	require.NoError(t, err)
	assert.Equal(t, []string{rock.ID, jazz.ID}, ids(both))

	byTitle, err := repo.ListUpcoming(ctx, domain.EventFilter{SearchText: "night"})
	require.NoError(t, err)
	assert.Equal(t, []string{jazz.ID}, ids(byTitle))

	none, err := repo.ListUpcoming(ctx, domain.EventFilter{SearchText: "opera"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepository_ListFeatured_Limit(t *testing.T) {
	s := NewStore()
	repo := NewEventRepo(s)
	base := time.Now().Add(24 * time.Hour).UTC()

	var want []string
	for i := range 5 {
		e := seedEvent(t, s, func(e *domain.Event) {
			e.Featured = true
			e.StartDate = base.Add(time.Duration(i) * time.Hour)
		})
		want = append(want, e.ID)
	}
	seedEvent(t, s, func(e *domain.Event) { e.StartDate = base.Add(-time.Hour) })

	got, err := repo.ListFeatured(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, want[:3], ids(got))
}

func TestEventRepository_GetDetails(t *testing.T) {
	s := NewStore()
	repo := NewEventRepo(s)
	cat := DefaultCategories[2]
	organizer := &domain.Profile{ID: "org-1", FullName: "Olga Organizer"}
	require.NoError(t, NewProfileRepo(s).Upsert(context.Background(), organizer))

	e := seedEvent(t, s, func(e *domain.Event) {
		e.CategoryID = &cat.ID
		e.OrganizerID = organizer.ID
		e.Tags = []string{"outdoor"}
	})

	d, err := repo.GetDetails(context.Background(), e.ID)

	require.NoError(t, err)
	assert.Equal(t, cat.Name, d.CategoryName)
	require.NotNil(t, d.Organizer)
	assert.Equal(t, "Olga Organizer", d.Organizer.FullName)
	assert.Equal(t, []string{"outdoor"}, d.Event.Tags)

	_, err = repo.GetDetails(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_GetByID_ReflectsInventory(t *testing.T) {
	s := NewStore()
	e := seedEvent(t, s, nil)
	_, err := NewInventoryStore(s).Reserve(context.Background(), e.ID, 4)
	require.NoError(t, err)

	got, err := NewEventRepo(s).GetByID(context.Background(), e.ID)

	require.NoError(t, err)
	assert.Equal(t, 6, got.AvailableSeats)
}

func TestEventRepository_Create_UnknownCategory(t *testing.T) {
	s := NewStore()
	unknown := "nope"

	err := NewEventRepo(s).Create(context.Background(), &domain.Event{ID: "e1", CategoryID: &unknown})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestEventRepository_Delete_CascadesBookings(t *testing.T) {
	s := NewStore()
	repo := NewEventRepo(s)
	bookings := NewBookingRepo(s)
	e := seedEvent(t, s, nil)
	require.NoError(t, bookings.Append(context.Background(), &domain.Booking{ID: "b1", EventID: e.ID, UserID: "u1", TicketsCount: 1}))

	require.NoError(t, repo.Delete(context.Background(), e.ID))

	_, err := bookings.GetByID(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	_, err = NewInventoryStore(s).GetAvailability(context.Background(), e.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), e.ID), domain.ErrEventNotFound)
}

func TestEventRepository_MarkPast(t *testing.T) {
	s := NewStore()
	repo := NewEventRepo(s)
	now := time.Now().UTC()

	ended := seedEvent(t, s, func(e *domain.Event) {
		e.StartDate = now.Add(-3 * time.Hour)
		e.EndDate = now.Add(-time.Hour)
	})
	seedEvent(t, s, nil)

	marked, err := repo.MarkPast(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, []string{ended.ID}, ids(marked))

	got, _ := repo.GetByID(context.Background(), ended.ID)
	assert.Equal(t, domain.EventStatusPast, got.Status)
}

func ids(events []*domain.Event) []string {
	res := make([]string, 0, len(events))
	for _, e := range events {
		res = append(res, e.ID)
	}
	return res
}
