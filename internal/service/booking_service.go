package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gasthof/internal/database"
	"gasthof/internal/domain"
	"gasthof/internal/events"
	"gasthof/internal/models"
	"gasthof/internal/pricing"

	"github.com/rs/zerolog"
)

// BookingService carries an inquiry through the pending/confirmed
// lifecycle. The mutex is the single mutual-exclusion domain covering
// identifier allocation together with the ledger write it is paired with,
// so allocation and confirmation transitions are linearizable.
type BookingService struct {
	ledger       domain.Ledger
	catalog      *pricing.Catalog
	extractor    domain.Extractor
	eventBus     domain.EventPublisher
	sheetsWorker domain.SyncWorker
	logger       *zerolog.Logger

	mu sync.Mutex
}

func NewBookingService(ledger domain.Ledger, catalog *pricing.Catalog, extractor domain.Extractor,
	eventBus domain.EventPublisher, sheetsWorker domain.SyncWorker, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		ledger:       ledger,
		catalog:      catalog,
		extractor:    extractor,
		eventBus:     eventBus,
		sheetsWorker: sheetsWorker,
		logger:       logger,
	}
}

// SubmitInquiry resolves free text into a persisted pending booking with
// priced options. Zero options is still a pending booking: the identifier
// has been communicated to the caller as a reference either way.
func (s *BookingService) SubmitInquiry(ctx context.Context, freeText string) (*models.PendingBooking, error) {
	raw, err := s.extractor.Extract(ctx, freeText, time.Now())
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	inquiry, err := NormalizeInquiry(raw, freeText)
	if err != nil {
		return nil, err
	}

	options := s.resolveOptions(inquiry)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextBookingID(ctx)
	if err != nil {
		return nil, err
	}

	pending := &models.PendingBooking{
		ID:              id,
		RoomType:        inquiry.RoomType,
		CheckIn:         inquiry.CheckIn.Format(models.DateLayout),
		CheckOut:        inquiry.CheckOut.Format(models.DateLayout),
		GuestCount:      inquiry.GuestCount,
		IncludeCatering: inquiry.IncludeCatering,
		RawText:         inquiry.RawText,
		Options:         options,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.ledger.InsertPending(ctx, pending); err != nil {
		return nil, fmt.Errorf("persist pending booking: %w", err)
	}

	s.publishEvent(events.EventInquiryCreated, events.InquiryEventPayload{
		BookingID:   pending.ID,
		RoomType:    pending.RoomType,
		CheckIn:     pending.CheckIn,
		CheckOut:    pending.CheckOut,
		GuestCount:  pending.GuestCount,
		OptionCount: len(pending.Options),
	})

	s.logger.Info().
		Str("booking_id", pending.ID).
		Str("room_type", pending.RoomType).
		Int("options", len(pending.Options)).
		Msg("inquiry accepted")

	return pending, nil
}

// Confirm moves a pending booking into the confirmed partition. The chosen
// option is copied by value from the pending record, so its price cannot
// drift between inquiry and confirmation.
func (s *BookingService) Confirm(ctx context.Context, bookingID, roomName string) (*models.ConfirmedBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, alreadyConfirmed, err := s.ledger.GetConfirmed(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check confirmed partition: %w", err)
	}
	if alreadyConfirmed {
		return nil, ErrAlreadyConfirmed
	}

	pending, err := s.ledger.GetPending(ctx, bookingID)
	if errors.Is(err, database.ErrPendingNotFound) {
		return nil, ErrUnknownBooking
	}
	if err != nil {
		return nil, fmt.Errorf("read pending booking: %w", err)
	}

	option, ok := pending.OptionByRoomName(roomName)
	if !ok {
		return nil, fmt.Errorf("room %q was not offered for %s: %w", roomName, bookingID, ErrOptionNotAvailable)
	}

	confirmed := &models.ConfirmedBooking{
		ID:              pending.ID,
		RoomType:        pending.RoomType,
		CheckIn:         pending.CheckIn,
		CheckOut:        pending.CheckOut,
		GuestCount:      pending.GuestCount,
		IncludeCatering: pending.IncludeCatering,
		RawText:         pending.RawText,
		SelectedRoom:    option,
		ConfirmedAt:     time.Now().UTC(),
	}

	if err := s.ledger.MoveToConfirmed(ctx, pending.ID, confirmed); err != nil {
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}

	s.publishEvent(events.EventBookingConfirmed, events.ConfirmationEventPayload{
		BookingID:  confirmed.ID,
		RoomName:   confirmed.SelectedRoom.RoomName,
		TotalPrice: confirmed.SelectedRoom.TotalPrice,
		CheckIn:    confirmed.CheckIn,
		CheckOut:   confirmed.CheckOut,
		GuestCount: confirmed.GuestCount,
	})
	s.enqueueSync(ctx, confirmed)

	s.logger.Info().
		Str("booking_id", confirmed.ID).
		Str("room", confirmed.SelectedRoom.RoomName).
		Float64("total", confirmed.SelectedRoom.TotalPrice).
		Msg("booking confirmed")

	return confirmed, nil
}

func (s *BookingService) GetPending(ctx context.Context, bookingID string) (*models.PendingBooking, error) {
	pending, err := s.ledger.GetPending(ctx, bookingID)
	if errors.Is(err, database.ErrPendingNotFound) {
		return nil, ErrUnknownBooking
	}
	return pending, err
}

func (s *BookingService) ListPending(ctx context.Context) ([]models.PendingBooking, error) {
	return s.ledger.ListPending(ctx)
}

func (s *BookingService) ListConfirmed(ctx context.Context) ([]models.ConfirmedBooking, error) {
	return s.ledger.ListConfirmed(ctx)
}

func (s *BookingService) resolveOptions(inquiry *models.BookingInquiry) []models.RoomOption {
	units := inquiry.Units()
	if inquiry.RoomType == models.RoomTypeMeeting {
		return s.catalog.ResolveMeetingOptions(inquiry.GuestCount, units, inquiry.IncludeCatering)
	}
	return s.catalog.ResolveHotelOptions(inquiry.GuestCount, units)
}

// nextBookingID probes sequential integers against every identifier
// currently present in either partition. A pending record removed without
// confirmation frees its identifier for reuse: the scan only considers
// records that still exist. Callers must hold s.mu.
func (s *BookingService) nextBookingID(ctx context.Context) (string, error) {
	used, err := s.ledger.BookingIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("scan booking ids: %w", err)
	}

	for n := 1; ; n++ {
		id := fmt.Sprintf(models.BookingIDFormat, n)
		if !used[id] {
			return id, nil
		}
	}
}

func (s *BookingService) publishEvent(eventType string, payload interface{}) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}

func (s *BookingService) enqueueSync(ctx context.Context, booking *models.ConfirmedBooking) {
	if s.sheetsWorker == nil {
		return
	}
	if err := s.sheetsWorker.EnqueueTask(ctx, "append", booking); err != nil {
		s.logger.Error().Err(err).Str("booking_id", booking.ID).Msg("sheets enqueue error")
	}
}
