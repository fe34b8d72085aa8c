package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/handler/dto"
	hmocks "github.com/stpnv0/SeatReserve/internal/handler/mocks"
	"github.com/stpnv0/SeatReserve/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testUserID = "8d3c6f1e-2a4b-4c5d-9e6f-7a8b9c0d1e2f"

type services struct {
	query       *hmocks.MockQuerySvc
	reservation *hmocks.MockReservationSvc
	ledger      *hmocks.MockLedgerSvc
	admin       *hmocks.MockAdminSvc
	profiles    *hmocks.MockProfileSvc
	tickets     *hmocks.MockTicketSvc
}

func setupRouter(t *testing.T) (services, http.Handler) {
	t.Helper()
	s := services{
		query:       hmocks.NewMockQuerySvc(t),
		reservation: hmocks.NewMockReservationSvc(t),
		ledger:      hmocks.NewMockLedgerSvc(t),
		admin:       hmocks.NewMockAdminSvc(t),
		profiles:    hmocks.NewMockProfileSvc(t),
		tickets:     hmocks.NewMockTicketSvc(t),
	}

	h := NewHandler(s.query, s.reservation, s.ledger, s.admin, s.profiles, s.tickets)

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	})
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/featured", h.ListFeatured)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/availability", h.GetAvailability)
		api.GET("/categories", h.ListCategories)
		api.POST("/events/:id/book", h.BookEvent)
		api.GET("/me/bookings", h.ListMyBookings)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/ticket", h.GetTicket)
		api.GET("/me/profile", h.GetProfile)
		api.PUT("/me/profile", h.UpdateProfile)
		api.GET("/admin/events", h.AdminListEvents)
		api.POST("/admin/events", h.CreateEvent)
		api.DELETE("/admin/events/:id", h.DeleteEvent)
		api.GET("/admin/stats", h.Stats)
		api.POST("/admin/tickets/verify", h.VerifyTicket)
	}

	return s, r
}

func serve(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func sampleEvent(id string) *domain.Event {
	return &domain.Event{
		ID:             id,
		Title:          "Concert",
		StartDate:      time.Now().Add(24 * time.Hour),
		EndDate:        time.Now().Add(26 * time.Hour),
		Price:          decimal.RequireFromString("25"),
		TotalSeats:     10,
		AvailableSeats: 7,
		Status:         domain.EventStatusUpcoming,
		CreatedAt:      time.Now(),
	}
}

// --- Events ---

func TestHandler_ListEvents_PassesFilter(t *testing.T) {
	s, r := setupRouter(t)

	categoryID := uuid.NewString()
	s.query.EXPECT().
		ListUpcomingEvents(mock.Anything, domain.EventFilter{SearchText: "jazz", CategoryID: categoryID}).
		Return([]*domain.Event{sampleEvent(uuid.NewString())}, nil)

	w := serve(r, http.MethodGet, "/api/events?q=jazz&category_id="+categoryID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]dto.EventResponse](t, w)
	require.Len(t, resp, 1)
	assert.Equal(t, "25.00", resp[0].Price)
	assert.Equal(t, []string{}, resp[0].Tags)
}

func TestHandler_ListEvents_InvalidCategory(t *testing.T) {
	_, r := setupRouter(t)

	w := serve(r, http.MethodGet, "/api/events?category_id=music", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListFeatured(t *testing.T) {
	s, r := setupRouter(t)

	s.query.EXPECT().ListFeatured(mock.Anything, 0).Return([]*domain.Event{}, nil).Once()
	s.query.EXPECT().ListFeatured(mock.Anything, 5).Return([]*domain.Event{}, nil).Once()

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/events/featured", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/events/featured?limit=5", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/events/featured?limit=abc", nil).Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	s, r := setupRouter(t)

	eventID := uuid.NewString()
	details := &domain.EventDetails{
		Event:        *sampleEvent(eventID),
		CategoryName: "Music",
		Organizer:    &domain.Profile{ID: "org", FullName: "Org"},
	}
	s.query.EXPECT().GetEvent(mock.Anything, eventID).Return(details, nil)

	w := serve(r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.EventDetailsResponse](t, w)
	assert.Equal(t, 7, resp.Event.AvailableSeats)
	assert.Equal(t, "Music", resp.CategoryName)
	require.NotNil(t, resp.Organizer)
	assert.Equal(t, "Org", resp.Organizer.FullName)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := serve(r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	s, r := setupRouter(t)

	eventID := uuid.NewString()
	s.query.EXPECT().GetEvent(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := serve(r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetAvailability(t *testing.T) {
	s, r := setupRouter(t)

	eventID := uuid.NewString()
	s.query.EXPECT().GetAvailability(mock.Anything, eventID).Return(3, nil)

	w := serve(r, http.MethodGet, "/api/events/"+eventID+"/availability", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.AvailabilityResponse](t, w)
	assert.Equal(t, 3, resp.AvailableSeats)
	assert.Equal(t, eventID, resp.EventID)
}

func TestHandler_ListCategories(t *testing.T) {
	s, r := setupRouter(t)

	s.query.EXPECT().ListCategories(mock.Anything).Return([]*domain.Category{{ID: "c1", Name: "Music"}}, nil)

	w := serve(r, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]dto.CategoryResponse](t, w)
	require.Len(t, resp, 1)
	assert.Equal(t, "Music", resp[0].Name)
}

// --- Bookings ---

func TestHandler_BookEvent_Success(t *testing.T) {
	s, r := setupRouter(t)

	eventID := uuid.NewString()
	booking := &domain.Booking{
		ID:           uuid.NewString(),
		EventID:      eventID,
		UserID:       testUserID,
		TicketsCount: 3,
		TotalAmount:  decimal.RequireFromString("75"),
		Status:       domain.BookingStatusConfirmed,
		CreatedAt:    time.Now(),
	}
	s.reservation.EXPECT().
		Book(mock.Anything, domain.BookInput{EventID: eventID, UserID: testUserID, Tickets: 3}).
		Return(booking, nil)

	w := serve(r, http.MethodPost, "/api/events/"+eventID+"/book", dto.BookRequest{Tickets: 3})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.BookingResponse](t, w)
	assert.Equal(t, "75.00", resp.TotalAmount)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_BookEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)
	eventID := uuid.NewString()

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "invalid event id", path: "/api/events/xyz/book", body: `{"tickets":1}`},
		{name: "zero tickets", path: "/api/events/" + eventID + "/book", body: `{"tickets":0}`},
		{name: "negative tickets", path: "/api/events/" + eventID + "/book", body: `{"tickets":-1}`},
		{name: "malformed", path: "/api/events/" + eventID + "/book", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_BookEvent_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "insufficient inventory",
			err:      fmt.Errorf("reserve seats: %w", &domain.InsufficientInventoryError{Requested: 3, Available: 2}),
			wantCode: http.StatusConflict,
			wantMsg:  "Only 2 seats available",
		},
		{name: "not found", err: domain.ErrEventNotFound, wantCode: http.StatusNotFound},
		{name: "not bookable", err: domain.ErrEventNotBookable, wantCode: http.StatusUnprocessableEntity},
		{name: "invalid", err: domain.ErrInvalidRequest, wantCode: http.StatusBadRequest},
		{
			name:     "storage",
			err:      fmt.Errorf("%w: append booking: %w", domain.ErrStorage, errors.New("conn reset")),
			wantCode: http.StatusServiceUnavailable,
			wantMsg:  "storage unavailable, retry later",
		},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := setupRouter(t)
			eventID := uuid.NewString()
			s.reservation.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(r, http.MethodPost, "/api/events/"+eventID+"/book", dto.BookRequest{Tickets: 3})

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decode[dto.ErrorResponse](t, w).Error)
			}
		})
	}
}

func TestHandler_ListMyBookings(t *testing.T) {
	s, r := setupRouter(t)

	views := []*domain.BookingView{{
		Booking:      domain.Booking{ID: "b1", UserID: testUserID, TotalAmount: decimal.RequireFromString("10")},
		Event:        *sampleEvent("e1"),
		CategoryName: "Music",
	}}
	s.query.EXPECT().ListUserBookings(mock.Anything, testUserID).Return(views, nil)

	w := serve(r, http.MethodGet, "/api/me/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]dto.BookingViewResponse](t, w)
	require.Len(t, resp, 1)
	assert.Equal(t, "10.00", resp[0].Booking.TotalAmount)
	assert.Equal(t, "Concert", resp[0].Event.Title)
}

func TestHandler_CancelBooking(t *testing.T) {
	s, r := setupRouter(t)

	bookingID := uuid.NewString()
	s.ledger.EXPECT().CancelOwned(mock.Anything, bookingID, testUserID).
		Return(&domain.Booking{ID: bookingID, Status: domain.BookingStatusCancelled}, nil)

	w := serve(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", decode[dto.BookingResponse](t, w).Status)
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	s, r := setupRouter(t)

	bookingID := uuid.NewString()
	s.ledger.EXPECT().CancelOwned(mock.Anything, bookingID, testUserID).Return(nil, domain.ErrForbidden)

	w := serve(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetTicket(t *testing.T) {
	s, r := setupRouter(t)

	bookingID := uuid.NewString()
	s.tickets.EXPECT().Ticket(mock.Anything, bookingID, testUserID).Return([]byte("\x89PNG"), nil)

	w := serve(r, http.MethodGet, "/api/bookings/"+bookingID+"/ticket", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", w.Body.String())
}

func TestHandler_GetTicket_NotConfirmed(t *testing.T) {
	s, r := setupRouter(t)

	bookingID := uuid.NewString()
	s.tickets.EXPECT().Ticket(mock.Anything, bookingID, testUserID).Return(nil, domain.ErrBookingNotConfirmed)

	w := serve(r, http.MethodGet, "/api/bookings/"+bookingID+"/ticket", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Profile ---

func TestHandler_UpdateProfile(t *testing.T) {
	s, r := setupRouter(t)

	s.profiles.EXPECT().
		Update(mock.Anything, testUserID, mock.MatchedBy(func(in domain.UpdateProfileInput) bool {
			return in.FullName != nil && *in.FullName == "Alice" && in.Email == nil
		})).
		Return(&domain.Profile{ID: testUserID, FullName: "Alice"}, nil)

	w := serve(r, http.MethodPut, "/api/me/profile", `{"full_name":"Alice"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", decode[dto.ProfileResponse](t, w).FullName)
}

func TestHandler_UpdateProfile_InvalidEmail(t *testing.T) {
	s, r := setupRouter(t)

	s.profiles.EXPECT().
		Update(mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidRequest))

	w := serve(r, http.MethodPut, "/api/me/profile", `{"email":"Alice <alice@example.com>"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetProfile_NotFound(t *testing.T) {
	s, r := setupRouter(t)

	s.profiles.EXPECT().Get(mock.Anything, testUserID).Return(nil, domain.ErrProfileNotFound)

	w := serve(r, http.MethodGet, "/api/me/profile", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	s, r := setupRouter(t)

	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	s.admin.EXPECT().
		CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
			return in.Title == "Concert" && in.StartDate.Equal(start) && in.EndDate.IsZero() &&
				in.Price.Equal(decimal.RequireFromString("19.99")) && in.OrganizerID == testUserID
		})).
		Return(sampleEvent(uuid.NewString()), nil)

	body := `{"title":"Concert","start_date":"` + start.Format(time.RFC3339) + `","price":"19.99","total_seats":100}`
	w := serve(r, http.MethodPost, "/api/admin/events", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Concert", decode[dto.EventResponse](t, w).Title)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"start_date":"2030-01-01T10:00:00Z","total_seats":10}`},
		{name: "no seats", body: `{"title":"X","start_date":"2030-01-01T10:00:00Z","total_seats":0}`},
		{name: "bad start", body: `{"title":"X","start_date":"tomorrow","total_seats":10}`},
		{name: "bad end", body: `{"title":"X","start_date":"2030-01-01T10:00:00Z","end_date":"later","total_seats":10}`},
		{name: "bad category", body: `{"title":"X","start_date":"2030-01-01T10:00:00Z","total_seats":10,"category_id":"music"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodPost, "/api/admin/events", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_DeleteEvent(t *testing.T) {
	s, r := setupRouter(t)

	eventID := uuid.NewString()
	s.admin.EXPECT().DeleteEvent(mock.Anything, eventID).Return(nil)

	w := serve(r, http.MethodDelete, "/api/admin/events/"+eventID, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Stats(t *testing.T) {
	s, r := setupRouter(t)

	s.admin.EXPECT().Stats(mock.Anything).
		Return(&domain.Stats{TotalEvents: 2, TotalBookings: 5, TotalRevenue: decimal.RequireFromString("125.5")}, nil)

	w := serve(r, http.MethodGet, "/api/admin/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.StatsResponse](t, w)
	assert.Equal(t, 5, resp.TotalBookings)
	assert.Equal(t, "125.50", resp.TotalRevenue)
}

func TestHandler_AdminListEvents(t *testing.T) {
	s, r := setupRouter(t)

	s.admin.EXPECT().ListEvents(mock.Anything).
		Return([]*domain.EventDetails{{Event: *sampleEvent("e1"), CategoryName: "Sports"}}, nil)

	w := serve(r, http.MethodGet, "/api/admin/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]dto.EventDetailsResponse](t, w)
	require.Len(t, resp, 1)
	assert.Equal(t, "Sports", resp[0].CategoryName)
}

func TestHandler_VerifyTicket(t *testing.T) {
	s, r := setupRouter(t)

	s.tickets.EXPECT().Verify(mock.Anything, "booking:b1;event:e1;signature:ab").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, nil)
	s.tickets.EXPECT().Verify(mock.Anything, "forged").
		Return(nil, domain.ErrInvalidRequest)

	w := serve(r, http.MethodPost, "/api/admin/tickets/verify", dto.VerifyTicketRequest{Payload: "booking:b1;event:e1;signature:ab"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b1", decode[dto.BookingResponse](t, w).ID)

	w = serve(r, http.MethodPost, "/api/admin/tickets/verify", dto.VerifyTicketRequest{Payload: "forged"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
