package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingInquiry_Units(t *testing.T) {
	checkIn, _ := time.Parse(DateLayout, "2026-09-10")
	checkOut, _ := time.Parse(DateLayout, "2026-09-13")

	inquiry := BookingInquiry{CheckIn: checkIn, CheckOut: checkOut}
	assert.Equal(t, 3, inquiry.Units())

	oneNight := BookingInquiry{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1)}
	assert.Equal(t, 1, oneNight.Units())
}

func TestPendingBooking_OptionByRoomName(t *testing.T) {
	pending := PendingBooking{
		ID: "BK-001",
		Options: []RoomOption{
			{RoomName: "Smart Queen", TotalPrice: 238},
			{RoomName: "Comfort Twin", TotalPrice: 288},
		},
	}

	opt, ok := pending.OptionByRoomName("Comfort Twin")
	assert.True(t, ok)
	assert.Equal(t, 288.0, opt.TotalPrice)

	_, ok = pending.OptionByRoomName("Penthouse")
	assert.False(t, ok)
}
