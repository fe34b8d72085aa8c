package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02 Jan 2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, profile *domain.Profile, event *domain.Event, b *domain.Booking) {
	n.send(ctx, profile.TelegramChatID, confirmedText(event, b))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, profile *domain.Profile, event *domain.Event, b *domain.Booking) {
	n.send(ctx, profile.TelegramChatID, cancelledText(event, b))
}

func confirmedText(event *domain.Event, b *domain.Booking) string {
	return fmt.Sprintf(
		"*Booking confirmed*\n\nEvent: %s\nDate (UTC): %s\nVenue: %s\nTickets: %d\nTotal: %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		event.StartDate.UTC().Format(dateLayout),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, venue(event)),
		b.TicketsCount,
		b.TotalAmount.StringFixed(2),
	)
}

func cancelledText(event *domain.Event, b *domain.Booking) string {
	return fmt.Sprintf(
		"*Booking cancelled*\n\nEvent: %s\nDate (UTC): %s\nTickets released: %d",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		event.StartDate.UTC().Format(dateLayout),
		b.TicketsCount,
	)
}

func venue(e *domain.Event) string {
	switch {
	case e.VenueName != "" && e.Location != "":
		return e.VenueName + ", " + e.Location
	case e.VenueName != "":
		return e.VenueName
	default:
		return e.Location
	}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
