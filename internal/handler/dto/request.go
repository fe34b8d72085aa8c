package dto

import "github.com/shopspring/decimal"

type CreateEventRequest struct {
	Title       string          `json:"title"       binding:"required"`
	Description string          `json:"description"`
	CategoryID  *string         `json:"category_id" binding:"omitempty,uuid"`
	Location    string          `json:"location"`
	VenueName   string          `json:"venue_name"`
	ImageURL    string          `json:"image_url"   binding:"omitempty,url"`
	StartDate   string          `json:"start_date"  binding:"required"`
	EndDate     string          `json:"end_date"`
	Price       decimal.Decimal `json:"price"`
	TotalSeats  int             `json:"total_seats" binding:"required,gt=0"`
	Featured    bool            `json:"featured"`
	Tags        []string        `json:"tags"`
}

type BookRequest struct {
	Tickets int `json:"tickets" binding:"required,gt=0"`
}

type UpdateProfileRequest struct {
	FullName       *string `json:"full_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type VerifyTicketRequest struct {
	Payload string `json:"payload" binding:"required"`
}
