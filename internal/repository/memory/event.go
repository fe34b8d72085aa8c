package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

type EventRepository struct {
	s *Store
}

func NewEventRepo(s *Store) *EventRepository {
	return &EventRepository{s: s}
}

func (r *EventRepository) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[e.ID]; ok {
		return domain.ErrStorage
	}
	if e.CategoryID != nil {
		if _, ok := r.s.categories[*e.CategoryID]; !ok {
			return domain.ErrCategoryNotFound
		}
	}

	now := r.s.now()
	e.CreatedAt, e.UpdatedAt = now, now

	stored := *e
	stored.Tags = slices.Clone(e.Tags)
	r.s.events[e.ID] = &stored
	r.s.seats.Store(e.ID, &seatCounter{
		available: e.AvailableSeats,
		total:     e.TotalSeats,
		bookable:  e.Bookable(),
	})
	return nil
}

func (r *EventRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.s.events, id)
	if c, ok := r.s.counter(id); ok {
		c.close()
	}
	r.s.seats.Delete(id)
	for bid, b := range r.s.bookings {
		if b.EventID == id {
			delete(r.s.bookings, bid)
		}
	}
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return r.s.eventCopy(e), nil
}

func (r *EventRepository) GetDetails(_ context.Context, id string) (*domain.EventDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	d := &domain.EventDetails{
		Event:        *r.s.eventCopy(e),
		CategoryName: r.s.categoryName(e.CategoryID),
	}
	if p, ok := r.s.profiles[e.OrganizerID]; ok {
		cp := *p
		d.Organizer = &cp
	}
	return d, nil
}

func (r *EventRepository) ListUpcoming(_ context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	search := strings.ToLower(filter.SearchText)

	return r.list(func(e *domain.Event) bool {
		if e.Status != domain.EventStatusUpcoming {
			return false
		}
		if filter.CategoryID != "" && (e.CategoryID == nil || *e.CategoryID != filter.CategoryID) {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(e.Title), search) ||
			strings.Contains(strings.ToLower(e.Description), search)
	}, 0), nil
}

func (r *EventRepository) ListFeatured(_ context.Context, limit int) ([]*domain.Event, error) {
	return r.list(func(e *domain.Event) bool {
		return e.Featured && e.Status == domain.EventStatusUpcoming
	}, limit), nil
}

// list returns matching events by start date ascending, at most limit of them
// when limit is positive.
func (r *EventRepository) list(match func(*domain.Event) bool, limit int) []*domain.Event {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Event, 0)
	for _, e := range r.s.events {
		if match(e) {
			res = append(res, r.s.eventCopy(e))
		}
	}
	slices.SortFunc(res, func(a, b *domain.Event) int {
		return cmp.Or(a.StartDate.Compare(b.StartDate), cmp.Compare(a.ID, b.ID))
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

func (r *EventRepository) ListAll(_ context.Context) ([]*domain.EventDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.EventDetails, 0, len(r.s.events))
	for _, e := range r.s.events {
		res = append(res, &domain.EventDetails{
			Event:        *r.s.eventCopy(e),
			CategoryName: r.s.categoryName(e.CategoryID),
		})
	}
	slices.SortFunc(res, func(a, b *domain.EventDetails) int {
		return cmp.Or(b.Event.CreatedAt.Compare(a.Event.CreatedAt), cmp.Compare(a.Event.ID, b.Event.ID))
	})
	return res, nil
}

func (r *EventRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.events), nil
}

func (r *EventRepository) MarkPast(_ context.Context, now time.Time) ([]*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Event
	for _, e := range r.s.events {
		if e.Status == domain.EventStatusUpcoming && e.EndDate.Before(now) {
			e.Status = domain.EventStatusPast
			e.UpdatedAt = r.s.now()
			if c, ok := r.s.counter(e.ID); ok {
				c.close()
			}
			res = append(res, r.s.eventCopy(e))
		}
	}
	return res, nil
}
