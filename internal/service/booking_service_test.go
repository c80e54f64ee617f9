package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gasthof/internal/database"
	"gasthof/internal/events"
	"gasthof/internal/models"
	"gasthof/internal/pricing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	raw *models.ExtractedInquiry
	err error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string, _ time.Time) (*models.ExtractedInquiry, error) {
	return f.raw, f.err
}

type mockSyncWorker struct {
	mock.Mock
}

func (m *mockSyncWorker) EnqueueTask(ctx context.Context, taskType string, booking *models.ConfirmedBooking) error {
	return m.Called(ctx, taskType, booking).Error(0)
}

func testService(t *testing.T, extractor *fakeExtractor) (*BookingService, *database.DB) {
	t.Helper()

	logger := zerolog.Nop()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "ledger.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	catalog, err := pricing.NewCatalog(
		[]models.HotelRoom{
			{Name: "Smart Queen", Category: "Smart", MaxGuests: 2, BasePrice: 119, ExtraGuestPrice: 25},
			{Name: "Family Loft", Category: "Family", MaxGuests: 4, BasePrice: 159, ExtraGuestPrice: 30},
		},
		[]models.MeetingRoom{
			{Name: "Forum", MaxCapacity: 40, FullDayPrice: 750, CateringPerPerson: 35},
		},
	)
	require.NoError(t, err)

	svc := NewBookingService(db, catalog, extractor, events.NewEventBus(), nil, &logger)
	return svc, db
}

func hotelExtractor() *fakeExtractor {
	return &fakeExtractor{raw: &models.ExtractedInquiry{
		RoomType:   models.RoomTypeHotel,
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-12",
		GuestCount: 2,
	}}
}

func TestSubmitInquiry_PersistsPendingWithOptions(t *testing.T) {
	svc, db := testService(t, hotelExtractor())
	ctx := context.Background()

	pending, err := svc.SubmitInquiry(ctx, "room for two, 2 nights")
	require.NoError(t, err)
	assert.Equal(t, "BK-001", pending.ID)
	require.Len(t, pending.Options, 2)
	assert.Equal(t, 288.0, pending.Options[0].TotalPrice) // (119+25)*2, cheapest first

	stored, err := db.GetPending(ctx, "BK-001")
	require.NoError(t, err)
	assert.Equal(t, pending.Options, stored.Options)
}

func TestSubmitInquiry_SequentialIdentifiers(t *testing.T) {
	svc, _ := testService(t, hotelExtractor())
	ctx := context.Background()

	first, err := svc.SubmitInquiry(ctx, "first")
	require.NoError(t, err)
	second, err := svc.SubmitInquiry(ctx, "second")
	require.NoError(t, err)

	assert.Equal(t, "BK-001", first.ID)
	assert.Equal(t, "BK-002", second.ID)
}

func TestSubmitInquiry_ConcurrentAllocationsAreUnique(t *testing.T) {
	svc, _ := testService(t, hotelExtractor())
	ctx := context.Background()

	const workers = 10
	ids := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pending, err := svc.SubmitInquiry(ctx, "concurrent")
			if err == nil {
				ids <- pending.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "identifier %s allocated twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestSubmitInquiry_NoAvailabilityStillPending(t *testing.T) {
	extractor := hotelExtractor()
	extractor.raw.GuestCount = 9 // exceeds every room's capacity
	svc, db := testService(t, extractor)
	ctx := context.Background()

	pending, err := svc.SubmitInquiry(ctx, "nine of us")
	require.NoError(t, err)
	assert.Empty(t, pending.Options)

	stored, err := db.GetPending(ctx, pending.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Options)
}

func TestSubmitInquiry_MeetingWithCatering(t *testing.T) {
	extractor := &fakeExtractor{raw: &models.ExtractedInquiry{
		RoomType:        models.RoomTypeMeeting,
		CheckIn:         "2026-09-10",
		CheckOut:        "2026-09-11",
		GuestCount:      30,
		IncludeCatering: true,
	}}
	svc, _ := testService(t, extractor)

	pending, err := svc.SubmitInquiry(context.Background(), "seminar for 30 with lunch")
	require.NoError(t, err)
	require.Len(t, pending.Options, 1)
	assert.Equal(t, 1800.0, pending.Options[0].TotalPrice) // 750 + 35*30*1
}

func TestSubmitInquiry_ValidationBeforePricing(t *testing.T) {
	extractor := hotelExtractor()
	extractor.raw.CheckOut = extractor.raw.CheckIn
	svc, db := testService(t, extractor)

	_, err := svc.SubmitInquiry(context.Background(), "same day")
	validationErr := IsValidationError(err)
	require.NotNil(t, validationErr)
	assert.Equal(t, RuleDateOrder, validationErr.Rule)

	// Nothing reached the ledger.
	pending, err := db.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSubmitInquiry_ExtractionFailure(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("model unavailable")}
	svc, _ := testService(t, extractor)

	_, err := svc.SubmitInquiry(context.Background(), "gibberish")
	require.NotNil(t, IsExtractionError(err))
	assert.Nil(t, IsValidationError(err))
}

func TestConfirm_Lifecycle(t *testing.T) {
	svc, db := testService(t, hotelExtractor())
	ctx := context.Background()

	pending, err := svc.SubmitInquiry(ctx, "room for two")
	require.NoError(t, err)
	offered := pending.Options[0]

	confirmed, err := svc.Confirm(ctx, pending.ID, offered.RoomName)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, confirmed.ID)
	// Confirming must not recompute the price.
	assert.Equal(t, offered.TotalPrice, confirmed.SelectedRoom.TotalPrice)

	// Absent from pending, present in confirmed.
	_, err = db.GetPending(ctx, pending.ID)
	assert.ErrorIs(t, err, database.ErrPendingNotFound)
	_, ok, err := db.GetConfirmed(ctx, pending.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConfirm_Twice(t *testing.T) {
	svc, db := testService(t, hotelExtractor())
	ctx := context.Background()

	pending, err := svc.SubmitInquiry(ctx, "room for two")
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, pending.ID, pending.Options[0].RoomName)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, pending.ID, pending.Options[0].RoomName)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	confirmed, err := db.ListConfirmed(ctx)
	require.NoError(t, err)
	assert.Len(t, confirmed, 1)
}

func TestConfirm_UnknownBooking(t *testing.T) {
	svc, _ := testService(t, hotelExtractor())

	_, err := svc.Confirm(context.Background(), "BK-042", "Smart Queen")
	assert.ErrorIs(t, err, ErrUnknownBooking)
}

func TestConfirm_OptionNotOffered(t *testing.T) {
	svc, db := testService(t, hotelExtractor())
	ctx := context.Background()

	pending, err := svc.SubmitInquiry(ctx, "room for two")
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, pending.ID, "Penthouse")
	assert.ErrorIs(t, err, ErrOptionNotAvailable)

	// The pending record is untouched.
	stored, err := db.GetPending(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.Options, stored.Options)
}

func TestConfirm_EnqueuesSheetSync(t *testing.T) {
	svc, _ := testService(t, hotelExtractor())
	worker := &mockSyncWorker{}
	svc.sheetsWorker = worker
	ctx := context.Background()

	worker.On("EnqueueTask", ctx, "append", mock.AnythingOfType("*models.ConfirmedBooking")).Return(nil).Once()

	pending, err := svc.SubmitInquiry(ctx, "room for two")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, pending.ID, pending.Options[0].RoomName)
	require.NoError(t, err)

	worker.AssertExpectations(t)
}

func TestNextBookingID_ReusesRemovedPendingID(t *testing.T) {
	svc, db := testService(t, hotelExtractor())
	ctx := context.Background()

	first, err := svc.SubmitInquiry(ctx, "first")
	require.NoError(t, err)
	second, err := svc.SubmitInquiry(ctx, "second")
	require.NoError(t, err)
	require.Equal(t, "BK-002", second.ID)

	// Removing an unconfirmed pending record frees its identifier: the
	// allocator only consults records that currently exist.
	require.NoError(t, db.RemovePending(ctx, first.ID))

	third, err := svc.SubmitInquiry(ctx, "third")
	require.NoError(t, err)
	assert.Equal(t, "BK-001", third.ID)
}

func TestNextBookingID_SkipsConfirmed(t *testing.T) {
	svc, _ := testService(t, hotelExtractor())
	ctx := context.Background()

	pending, err := svc.SubmitInquiry(ctx, "first")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, pending.ID, pending.Options[0].RoomName)
	require.NoError(t, err)

	// BK-001 lives in the confirmed partition now and must not be reissued.
	next, err := svc.SubmitInquiry(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, "BK-002", next.ID)
}
