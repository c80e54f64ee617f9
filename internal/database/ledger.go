package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"gasthof/internal/metrics"
	"gasthof/internal/models"
)

const (
	partitionPending   = "pending"
	partitionConfirmed = "confirmed"
)

// InsertPending stores a new pending booking. The id must be unused.
func (db *DB) InsertPending(ctx context.Context, booking *models.PendingBooking) error {
	record, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to encode pending booking: %w", err)
	}

	query := `INSERT INTO pending_bookings (id, record, created_at) VALUES (?, ?, ?)`
	if _, err := db.ExecContext(ctx, query, booking.ID, string(record), booking.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert pending %s: %w", booking.ID, ErrDuplicateID)
		}
		return fmt.Errorf("failed to insert pending booking: %w", err)
	}
	return nil
}

// GetPending returns the pending booking for the id, or ErrPendingNotFound.
func (db *DB) GetPending(ctx context.Context, id string) (*models.PendingBooking, error) {
	query := `SELECT record FROM pending_bookings WHERE id = ?`

	var record string
	err := db.QueryRowContext(ctx, query, id).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending booking: %w", err)
	}

	var booking models.PendingBooking
	if err := json.Unmarshal([]byte(record), &booking); err != nil {
		metrics.IncCorruptLedgerRecord(partitionPending)
		db.logger.Error().Err(err).Str("booking_id", id).Msg("corrupt pending record")
		return nil, ErrPendingNotFound
	}
	return &booking, nil
}

// ListPending returns all decodable pending bookings ordered by creation
// time. Corrupt rows are skipped and surfaced via log and metric so the
// service keeps answering with whatever history is still readable.
func (db *DB) ListPending(ctx context.Context) ([]models.PendingBooking, error) {
	query := `SELECT id, record FROM pending_bookings ORDER BY created_at, id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.PendingBooking, 0)
	for rows.Next() {
		var id, record string
		if err := rows.Scan(&id, &record); err != nil {
			return nil, fmt.Errorf("failed to scan pending row: %w", err)
		}

		var booking models.PendingBooking
		if err := json.Unmarshal([]byte(record), &booking); err != nil {
			metrics.IncCorruptLedgerRecord(partitionPending)
			db.logger.Error().Err(err).Str("booking_id", id).Msg("skipping corrupt pending record")
			continue
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pending rows: %w", err)
	}
	return bookings, nil
}

// RemovePending deletes a pending booking, returning ErrPendingNotFound if
// the id is absent.
func (db *DB) RemovePending(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM pending_bookings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to remove pending booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPendingNotFound
	}
	return nil
}

// AppendConfirmed stores a confirmed booking. Confirmed records are
// append-only; an existing id is a hard error.
func (db *DB) AppendConfirmed(ctx context.Context, booking *models.ConfirmedBooking) error {
	record, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to encode confirmed booking: %w", err)
	}

	query := `INSERT INTO confirmed_bookings (id, record, confirmed_at) VALUES (?, ?, ?)`
	if _, err := db.ExecContext(ctx, query, booking.ID, string(record), booking.ConfirmedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("append confirmed %s: %w", booking.ID, ErrDuplicateID)
		}
		return fmt.Errorf("failed to append confirmed booking: %w", err)
	}
	return nil
}

// GetConfirmed returns the confirmed booking for the id, or sql.ErrNoRows
// wrapped as a not-found.
func (db *DB) GetConfirmed(ctx context.Context, id string) (*models.ConfirmedBooking, bool, error) {
	query := `SELECT record FROM confirmed_bookings WHERE id = ?`

	var record string
	err := db.QueryRowContext(ctx, query, id).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get confirmed booking: %w", err)
	}

	var booking models.ConfirmedBooking
	if err := json.Unmarshal([]byte(record), &booking); err != nil {
		metrics.IncCorruptLedgerRecord(partitionConfirmed)
		db.logger.Error().Err(err).Str("booking_id", id).Msg("corrupt confirmed record")
		return nil, false, nil
	}
	return &booking, true, nil
}

// ListConfirmed returns all decodable confirmed bookings ordered by
// confirmation time. Corrupt rows are skipped, logged and counted.
func (db *DB) ListConfirmed(ctx context.Context) ([]models.ConfirmedBooking, error) {
	query := `SELECT id, record FROM confirmed_bookings ORDER BY confirmed_at, id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.ConfirmedBooking, 0)
	for rows.Next() {
		var id, record string
		if err := rows.Scan(&id, &record); err != nil {
			return nil, fmt.Errorf("failed to scan confirmed row: %w", err)
		}

		var booking models.ConfirmedBooking
		if err := json.Unmarshal([]byte(record), &booking); err != nil {
			metrics.IncCorruptLedgerRecord(partitionConfirmed)
			db.logger.Error().Err(err).Str("booking_id", id).Msg("skipping corrupt confirmed record")
			continue
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read confirmed rows: %w", err)
	}
	return bookings, nil
}

// BookingIDs returns every identifier currently present in either
// partition. Decodability does not matter here: a row that exists but
// cannot be parsed still occupies its id.
func (db *DB) BookingIDs(ctx context.Context) (map[string]bool, error) {
	query := `SELECT id FROM pending_bookings UNION SELECT id FROM confirmed_bookings`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to collect booking ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan booking id: %w", err)
		}
		ids[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read booking ids: %w", err)
	}
	return ids, nil
}

// MoveToConfirmed removes the pending record and appends the confirmed one
// in a single transaction, so readers never observe the booking in both
// partitions or in neither.
func (db *DB) MoveToConfirmed(ctx context.Context, pendingID string, confirmed *models.ConfirmedBooking) error {
	record, err := json.Marshal(confirmed)
	if err != nil {
		return fmt.Errorf("failed to encode confirmed booking: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, `DELETE FROM pending_bookings WHERE id = ?`, pendingID)
	if err != nil {
		return fmt.Errorf("failed to remove pending booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPendingNotFound
	}

	query := `INSERT INTO confirmed_bookings (id, record, confirmed_at) VALUES (?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, confirmed.ID, string(record), confirmed.ConfirmedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("move to confirmed %s: %w", confirmed.ID, ErrDuplicateID)
		}
		return fmt.Errorf("failed to append confirmed booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit confirmation: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
