package notify

import (
	"encoding/json"
	"fmt"

	"gasthof/internal/domain"
	"gasthof/internal/events"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// TelegramNotifier pushes booking events to the staff chat.
type TelegramNotifier struct {
	sender domain.TelegramSender
	chatID int64
	logger *zerolog.Logger
}

func NewTelegramNotifier(sender domain.TelegramSender, chatID int64, logger *zerolog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		sender: sender,
		chatID: chatID,
		logger: logger,
	}
}

// Register subscribes the notifier to the events it reports on.
func (n *TelegramNotifier) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventInquiryCreated, n.handleInquiryCreated)
	bus.Subscribe(events.EventBookingConfirmed, n.handleBookingConfirmed)
}

func (n *TelegramNotifier) handleInquiryCreated(event *events.Event) error {
	var payload events.InquiryEventPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		n.logger.Error().Err(err).Msg("decode inquiry event")
		return err
	}

	text := fmt.Sprintf("📥 New inquiry %s\n%s, %s → %s, %d guest(s)\n%d option(s) offered",
		payload.BookingID, payload.RoomType, payload.CheckIn, payload.CheckOut,
		payload.GuestCount, payload.OptionCount)
	if payload.OptionCount == 0 {
		text += "\n⚠️ No available rooms for this request"
	}

	return n.send(text)
}

func (n *TelegramNotifier) handleBookingConfirmed(event *events.Event) error {
	var payload events.ConfirmationEventPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		n.logger.Error().Err(err).Msg("decode confirmation event")
		return err
	}

	text := fmt.Sprintf("✅ Booking %s confirmed\n%s, %s → %s, %d guest(s)\nTotal: %.2f EUR",
		payload.BookingID, payload.RoomName, payload.CheckIn, payload.CheckOut,
		payload.GuestCount, payload.TotalPrice)

	return n.send(text)
}

func (n *TelegramNotifier) send(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.sender.Send(msg); err != nil {
		n.logger.Error().Err(err).Int64("chat_id", n.chatID).Msg("telegram send error")
		return err
	}
	return nil
}
