package models

const (
	RoomTypeHotel   = "hotel"
	RoomTypeMeeting = "meeting"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// DateLayout is the calendar format used for check-in/check-out dates
// everywhere: extraction output, API payloads and ledger records.
const DateLayout = "2006-01-02"

// BookingIDFormat produces identifiers like BK-001, BK-042, BK-1000.
const BookingIDFormat = "BK-%03d"

const (
	MinGuests = 1
	MaxGuests = 150
)
