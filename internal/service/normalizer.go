package service

import (
	"time"

	"gasthof/internal/models"
)

// NormalizeInquiry validates and canonicalizes extracted fields into a
// BookingInquiry. Invalid inquiries are rejected with the violated rule
// before any pricing is attempted.
func NormalizeInquiry(raw *models.ExtractedInquiry, rawText string) (*models.BookingInquiry, error) {
	if raw.RoomType != models.RoomTypeHotel && raw.RoomType != models.RoomTypeMeeting {
		return nil, newValidationError(RuleRoomType, "unknown room type %q, expected %q or %q",
			raw.RoomType, models.RoomTypeHotel, models.RoomTypeMeeting)
	}

	checkIn, err := time.Parse(models.DateLayout, raw.CheckIn)
	if err != nil {
		return nil, newValidationError(RuleDateFormat, "check-in date %q does not match %s", raw.CheckIn, models.DateLayout)
	}

	checkOut, err := time.Parse(models.DateLayout, raw.CheckOut)
	if err != nil {
		return nil, newValidationError(RuleDateFormat, "check-out date %q does not match %s", raw.CheckOut, models.DateLayout)
	}

	if !checkOut.After(checkIn) {
		return nil, newValidationError(RuleDateOrder, "check-out %s must be after check-in %s", raw.CheckOut, raw.CheckIn)
	}

	if raw.GuestCount < models.MinGuests {
		return nil, newValidationError(RuleGuestCount, "guest count %d is below the minimum of %d", raw.GuestCount, models.MinGuests)
	}
	if raw.GuestCount > models.MaxGuests {
		return nil, newValidationError(RuleGuestCount, "guest count %d exceeds the maximum of %d", raw.GuestCount, models.MaxGuests)
	}

	return &models.BookingInquiry{
		RoomType:        raw.RoomType,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestCount:      raw.GuestCount,
		IncludeCatering: raw.IncludeCatering,
		RawText:         rawText,
	}, nil
}
