package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/handler/dto"
	"github.com/stpnv0/SeatReserve/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type QuerySvc interface {
	ListUpcomingEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	ListFeatured(ctx context.Context, limit int) ([]*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.EventDetails, error)
	GetAvailability(ctx context.Context, eventID string) (int, error)
	ListUserBookings(ctx context.Context, userID string) ([]*domain.BookingView, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type ReservationSvc interface {
	Book(ctx context.Context, in domain.BookInput) (*domain.Booking, error)
}

type LedgerSvc interface {
	CancelOwned(ctx context.Context, id, userID string) (*domain.Booking, error)
}

type AdminSvc interface {
	CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context) ([]*domain.EventDetails, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type ProfileSvc interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, in domain.UpdateProfileInput) (*domain.Profile, error)
}

type TicketSvc interface {
	Ticket(ctx context.Context, bookingID, userID string) ([]byte, error)
	Verify(ctx context.Context, payload string) (*domain.Booking, error)
}

type Handler struct {
	query       QuerySvc
	reservation ReservationSvc
	ledger      LedgerSvc
	admin       AdminSvc
	profiles    ProfileSvc
	tickets     TicketSvc
}

func NewHandler(
	query QuerySvc,
	reservation ReservationSvc,
	ledger LedgerSvc,
	admin AdminSvc,
	profiles ProfileSvc,
	tickets TicketSvc,
) *Handler {
	return &Handler{
		query:       query,
		reservation: reservation,
		ledger:      ledger,
		admin:       admin,
		profiles:    profiles,
		tickets:     tickets,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		SearchText: c.Query("q"),
		CategoryID: c.Query("category_id"),
	}
	if filter.CategoryID != "" {
		if _, err := uuid.Parse(filter.CategoryID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid category id"})
			return
		}
	}

	events, err := h.query.ListUpcomingEvents(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsResponse(events))
}

func (h *Handler) ListFeatured(c *ginext.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	events, err := h.query.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsResponse(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid event id")
	if !ok {
		return
	}

	details, err := h.query.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid event id")
	if !ok {
		return
	}

	seats, err := h.query.GetAvailability(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{EventID: id, AvailableSeats: seats})
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.query.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) BookEvent(c *ginext.Context) {
	eventID, ok := pathUUID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reservation.Book(c.Request.Context(), domain.BookInput{
		EventID: eventID,
		UserID:  middleware.UserID(c),
		Tickets: req.Tickets,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	views, err := h.query.ListUserBookings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, dto.ToBookingViewResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid booking id")
	if !ok {
		return
	}

	booking, err := h.ledger.CancelOwned(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid booking id")
	if !ok {
		return
	}

	png, err := h.tickets.Ticket(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="ticket-%s.png"`, id))
	c.Data(http.StatusOK, "image/png", png)
}

// Profile

func (h *Handler) GetProfile(c *ginext.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.profiles.Update(c.Request.Context(), middleware.UserID(c), domain.UpdateProfileInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// Admin

func (h *Handler) AdminListEvents(c *ginext.Context) {
	events, err := h.admin.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventDetailsResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventDetailsResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}

	var endDate time.Time
	if req.EndDate != "" {
		if endDate, err = time.Parse(time.RFC3339, req.EndDate); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid end_date format, expected RFC3339",
			})
			return
		}
	}

	event, err := h.admin.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Location:    req.Location,
		VenueName:   req.VenueName,
		ImageURL:    req.ImageURL,
		StartDate:   startDate,
		EndDate:     endDate,
		Price:       req.Price,
		TotalSeats:  req.TotalSeats,
		Featured:    req.Featured,
		Tags:        req.Tags,
		OrganizerID: middleware.UserID(c),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid event id")
	if !ok {
		return
	}

	if err := h.admin.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *Handler) VerifyTicket(c *ginext.Context) {
	var req dto.VerifyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.tickets.Verify(c.Request.Context(), req.Payload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func pathUUID(c *ginext.Context, name, msg string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var inErr *domain.InsufficientInventoryError

	switch {
	case errors.As(err, &inErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: fmt.Sprintf("Only %d seats available", inErr.Available),
		})

	case errors.Is(err, domain.ErrInsufficientInventory):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotBookable):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingNotConfirmed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStorage):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage unavailable, retry later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
