package worker

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gasthof/internal/database"
	"gasthof/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSheets struct {
	appended []models.ConfirmedBooking
	replaced [][]models.ConfirmedBooking
	err      error
}

func (f *fakeSheets) AppendConfirmedBooking(_ context.Context, booking *models.ConfirmedBooking) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, *booking)
	return nil
}

func (f *fakeSheets) ReplaceConfirmedBookings(_ context.Context, bookings []models.ConfirmedBooking) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = append(f.replaced, bookings)
	return nil
}

func testBooking() *models.ConfirmedBooking {
	return &models.ConfirmedBooking{
		ID:       "BK-001",
		RoomType: models.RoomTypeHotel,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		SelectedRoom: models.RoomOption{
			RoomName:   "Smart Queen",
			TotalPrice: 288,
		},
		ConfirmedAt: time.Now(),
	}
}

func testWorker(t *testing.T, sheets *fakeSheets, redisClient *redis.Client) (*SheetsWorker, *database.DB) {
	t.Helper()
	logger := zerolog.Nop()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "ledger.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	w := NewSheetsWorker(db, sheets, redisClient, RetryPolicy{MaxRetries: 3}, &logger)
	return w, db
}

func TestEnqueueTask_PersistsAndPushesToRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	w, db := testWorker(t, &fakeSheets{}, client)
	ctx := context.Background()

	require.NoError(t, w.EnqueueTask(ctx, TaskAppend, testBooking()))

	tasks, err := db.GetPendingSyncTasks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, TaskAppend, tasks[0].TaskType)
	assert.Equal(t, "BK-001", tasks[0].BookingID)

	queued, err := client.LRange(ctx, w.redisQueueKey, 0, -1).Result()
	require.NoError(t, err)
	require.Len(t, queued, 1)

	var queuedTask models.SyncTask
	require.NoError(t, json.Unmarshal([]byte(queued[0]), &queuedTask))
	assert.Equal(t, tasks[0].ID, queuedTask.ID)
}

func TestEnqueueTask_Validation(t *testing.T) {
	w, _ := testWorker(t, &fakeSheets{}, nil)
	ctx := context.Background()

	assert.Error(t, w.EnqueueTask(ctx, "", testBooking()))
	assert.Error(t, w.EnqueueTask(ctx, TaskAppend, nil))
	assert.Error(t, w.EnqueueTask(ctx, TaskAppend, &models.ConfirmedBooking{}))
}

func TestProcessTask_Append(t *testing.T) {
	sheets := &fakeSheets{}
	w, db := testWorker(t, sheets, nil)
	ctx := context.Background()

	require.NoError(t, w.EnqueueTask(ctx, TaskAppend, testBooking()))
	tasks, err := db.GetPendingSyncTasks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	w.processTask(ctx, &tasks[0])

	require.Len(t, sheets.appended, 1)
	assert.Equal(t, "BK-001", sheets.appended[0].ID)

	remaining, err := db.GetPendingSyncTasks(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestProcessTask_ReplaceUsesLedger(t *testing.T) {
	sheets := &fakeSheets{}
	w, db := testWorker(t, sheets, nil)
	ctx := context.Background()

	require.NoError(t, db.AppendConfirmed(ctx, testBooking()))

	require.NoError(t, w.EnqueueTask(ctx, TaskReplace, nil))
	tasks, err := db.GetPendingSyncTasks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	w.processTask(ctx, &tasks[0])

	require.Len(t, sheets.replaced, 1)
	require.Len(t, sheets.replaced[0], 1)
	assert.Equal(t, "BK-001", sheets.replaced[0][0].ID)
}

func TestProcessTask_RetriesThenDeadLetters(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sheets := &fakeSheets{err: errors.New("sheets unavailable")}
	w, db := testWorker(t, sheets, client)
	ctx := context.Background()

	require.NoError(t, w.EnqueueTask(ctx, TaskAppend, testBooking()))
	tasks, err := db.GetPendingSyncTasks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	task := tasks[0]

	// First two attempts schedule retries, the third gives up.
	w.processTask(ctx, &task)
	task.RetryCount++
	w.processTask(ctx, &task)
	task.RetryCount++
	w.processTask(ctx, &task)

	failed, err := db.GetFailedSyncTasks(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Contains(t, *failed[0].LastError, "sheets unavailable")

	dead, err := client.LRange(ctx, w.deadLetterKey, 0, -1).Result()
	require.NoError(t, err)
	assert.Len(t, dead, 1)
}

func TestRetryPolicy_NextDelay(t *testing.T) {
	policy := RetryPolicy{
		MaxRetries:    5,
		InitialDelay:  time.Second,
		MaxDelay:      10 * time.Second,
		BackoffFactor: 2,
	}

	assert.Equal(t, time.Second, policy.NextDelay(1))
	assert.Equal(t, 2*time.Second, policy.NextDelay(2))
	assert.Equal(t, 4*time.Second, policy.NextDelay(3))
	assert.Equal(t, 10*time.Second, policy.NextDelay(10))
	assert.Equal(t, time.Second, policy.NextDelay(0))
}
