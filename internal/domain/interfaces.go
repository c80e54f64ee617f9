package domain

import (
	"context"
	"time"

	"gasthof/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Ledger is the durable two-partition booking store.
type Ledger interface {
	InsertPending(ctx context.Context, booking *models.PendingBooking) error
	GetPending(ctx context.Context, id string) (*models.PendingBooking, error)
	ListPending(ctx context.Context) ([]models.PendingBooking, error)
	RemovePending(ctx context.Context, id string) error
	AppendConfirmed(ctx context.Context, booking *models.ConfirmedBooking) error
	GetConfirmed(ctx context.Context, id string) (*models.ConfirmedBooking, bool, error)
	ListConfirmed(ctx context.Context) ([]models.ConfirmedBooking, error)
	BookingIDs(ctx context.Context) (map[string]bool, error)
	MoveToConfirmed(ctx context.Context, pendingID string, confirmed *models.ConfirmedBooking) error
}

// Extractor turns free text into structured inquiry fields.
type Extractor interface {
	Extract(ctx context.Context, freeText string, today time.Time) (*models.ExtractedInquiry, error)
}

// SearchEngine answers free-text informational questions about the property.
type SearchEngine interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	Rebuild(ctx context.Context) error
}

// ResultCache caches search results keyed by normalized query.
type ResultCache interface {
	Get(ctx context.Context, query string) ([]models.SearchResult, bool, error)
	Set(ctx context.Context, query string, results []models.SearchResult) error
}

// EventPublisher publishes domain events.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// SyncWorker schedules confirmed bookings for spreadsheet synchronization.
type SyncWorker interface {
	EnqueueTask(ctx context.Context, taskType string, booking *models.ConfirmedBooking) error
}

// SheetsWriter applies booking rows to an external spreadsheet.
type SheetsWriter interface {
	AppendConfirmedBooking(ctx context.Context, booking *models.ConfirmedBooking) error
	ReplaceConfirmedBookings(ctx context.Context, bookings []models.ConfirmedBooking) error
}

// TelegramSender is the subset of the bot API used for staff notifications.
type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// BookingService is the inquiry/confirmation workflow exposed to transports.
type BookingService interface {
	SubmitInquiry(ctx context.Context, freeText string) (*models.PendingBooking, error)
	Confirm(ctx context.Context, bookingID, roomName string) (*models.ConfirmedBooking, error)
	GetPending(ctx context.Context, bookingID string) (*models.PendingBooking, error)
	ListPending(ctx context.Context) ([]models.PendingBooking, error)
	ListConfirmed(ctx context.Context) ([]models.ConfirmedBooking, error)
}
