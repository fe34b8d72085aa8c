package dto

import (
	"time"

	"github.com/stpnv0/SeatReserve/internal/domain"
)

type EventResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CategoryID     *string  `json:"category_id,omitempty"`
	Location       string   `json:"location"`
	VenueName      string   `json:"venue_name"`
	ImageURL       string   `json:"image_url,omitempty"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Price          string   `json:"price"`
	TotalSeats     int      `json:"total_seats"`
	AvailableSeats int      `json:"available_seats"`
	Status         string   `json:"status"`
	Featured       bool     `json:"featured"`
	Tags           []string `json:"tags"`
	OrganizerID    string   `json:"organizer_id,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type EventDetailsResponse struct {
	Event        EventResponse    `json:"event"`
	CategoryName string           `json:"category_name,omitempty"`
	Organizer    *ProfileResponse `json:"organizer,omitempty"`
}

type AvailabilityResponse struct {
	EventID        string `json:"event_id"`
	AvailableSeats int    `json:"available_seats"`
}

type BookingResponse struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	UserID       string `json:"user_id"`
	TicketsCount int    `json:"tickets_count"`
	TotalAmount  string `json:"total_amount"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type BookingViewResponse struct {
	Booking      BookingResponse `json:"booking"`
	Event        EventResponse   `json:"event"`
	CategoryName string          `json:"category_name,omitempty"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProfileResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

type StatsResponse struct {
	TotalEvents   int    `json:"total_events"`
	TotalBookings int    `json:"total_bookings"`
	TotalRevenue  string `json:"total_revenue"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		CategoryID:     e.CategoryID,
		Location:       e.Location,
		VenueName:      e.VenueName,
		ImageURL:       e.ImageURL,
		StartDate:      e.StartDate.Format(time.RFC3339),
		EndDate:        e.EndDate.Format(time.RFC3339),
		Price:          e.Price.StringFixed(2),
		TotalSeats:     e.TotalSeats,
		AvailableSeats: e.AvailableSeats,
		Status:         string(e.Status),
		Featured:       e.Featured,
		Tags:           tags,
		OrganizerID:    e.OrganizerID,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventsResponse(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{
		Event:        ToEventResponse(&d.Event),
		CategoryName: d.CategoryName,
	}
	if d.Organizer != nil {
		p := ToProfileResponse(d.Organizer)
		resp.Organizer = &p
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		EventID:      b.EventID,
		UserID:       b.UserID,
		TicketsCount: b.TicketsCount,
		TotalAmount:  b.TotalAmount.StringFixed(2),
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingViewResponse(v *domain.BookingView) BookingViewResponse {
	return BookingViewResponse{
		Booking:      ToBookingResponse(&v.Booking),
		Event:        ToEventResponse(&v.Event),
		CategoryName: v.CategoryName,
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		Email:          p.Email,
		Phone:          p.Phone,
		TelegramChatID: p.TelegramChatID,
	}
}

func ToStatsResponse(s *domain.Stats) StatsResponse {
	return StatsResponse{
		TotalEvents:   s.TotalEvents,
		TotalBookings: s.TotalBookings,
		TotalRevenue:  s.TotalRevenue.StringFixed(2),
	}
}
