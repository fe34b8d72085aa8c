// Package memory keeps the whole catalog and booking ledger in process.
// It backs the "memory" storage driver and the concurrency tests.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

// DefaultCategories mirrors the reference data seeded by the migrations.
var DefaultCategories = []domain.Category{
	{ID: "5f0c4c1e-8f39-4c59-9a43-0c1f1a6a0001", Name: "Music"},
	{ID: "5f0c4c1e-8f39-4c59-9a43-0c1f1a6a0002", Name: "Technology"},
	{ID: "5f0c4c1e-8f39-4c59-9a43-0c1f1a6a0003", Name: "Sports"},
	{ID: "5f0c4c1e-8f39-4c59-9a43-0c1f1a6a0004", Name: "Arts & Theatre"},
	{ID: "5f0c4c1e-8f39-4c59-9a43-0c1f1a6a0005", Name: "Food & Drink"},
	{ID: "5f0c4c1e-8f39-4c59-9a43-0c1f1a6a0006", Name: "Business"},
}

// Store is the shared state behind the memory repositories.
//
// mu guards the maps. Seat counters live outside of it, one mutex per event,
// so reservations never take the store-wide lock. Lock order is mu, then a
// counter's mutex.
type Store struct {
	mu         sync.RWMutex
	events     map[string]*domain.Event
	bookings   map[string]*domain.Booking
	profiles   map[string]*domain.Profile
	categories map[string]*domain.Category
	roles      map[string]map[string]struct{}

	seats sync.Map // event id -> *seatCounter

	now func() time.Time
}

type seatCounter struct {
	mu        sync.Mutex
	available int
	total     int
	bookable  bool
}

// close stops further reservations on the counter.
func (c *seatCounter) close() {
	c.mu.Lock()
	c.bookable = false
	c.mu.Unlock()
}

func NewStore() *Store {
	s := &Store{
		events:     make(map[string]*domain.Event),
		bookings:   make(map[string]*domain.Booking),
		profiles:   make(map[string]*domain.Profile),
		categories: make(map[string]*domain.Category),
		roles:      make(map[string]map[string]struct{}),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, c := range DefaultCategories {
		s.categories[c.ID] = &c
	}
	return s
}

func (s *Store) counter(eventID string) (*seatCounter, bool) {
	v, ok := s.seats.Load(eventID)
	if !ok {
		return nil, false
	}
	return v.(*seatCounter), true
}

func (s *Store) available(eventID string) int {
	c, ok := s.counter(eventID)
	if !ok {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available
}

// eventCopy must be called with mu held.
func (s *Store) eventCopy(e *domain.Event) *domain.Event {
	cp := *e
	cp.Tags = slices.Clone(e.Tags)
	if e.CategoryID != nil {
		id := *e.CategoryID
		cp.CategoryID = &id
	}
	cp.AvailableSeats = s.available(e.ID)
	return &cp
}

// categoryName must be called with mu held.
func (s *Store) categoryName(id *string) string {
	if id == nil {
		return ""
	}
	if c, ok := s.categories[*id]; ok {
		return c.Name
	}
	return ""
}
