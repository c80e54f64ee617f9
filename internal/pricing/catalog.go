package pricing

import (
	"fmt"

	"gasthof/internal/models"
)

// Catalog holds the property's room pricing rules. It is built once from
// config at startup and is immutable for the process lifetime.
type Catalog struct {
	hotelRooms   []models.HotelRoom
	meetingRooms []models.MeetingRoom
}

func NewCatalog(hotelRooms []models.HotelRoom, meetingRooms []models.MeetingRoom) (*Catalog, error) {
	if err := validateHotelRooms(hotelRooms); err != nil {
		return nil, err
	}
	if err := validateMeetingRooms(meetingRooms); err != nil {
		return nil, err
	}

	c := &Catalog{
		hotelRooms:   make([]models.HotelRoom, len(hotelRooms)),
		meetingRooms: make([]models.MeetingRoom, len(meetingRooms)),
	}
	copy(c.hotelRooms, hotelRooms)
	copy(c.meetingRooms, meetingRooms)

	return c, nil
}

func validateHotelRooms(rooms []models.HotelRoom) error {
	names := make(map[string]bool)
	for _, room := range rooms {
		if room.Name == "" {
			return fmt.Errorf("hotel room without a name")
		}
		if names[room.Name] {
			return fmt.Errorf("duplicate hotel room name: %s", room.Name)
		}
		names[room.Name] = true

		if room.MaxGuests < 1 {
			return fmt.Errorf("hotel room '%s' has invalid max_guests %d", room.Name, room.MaxGuests)
		}
		if room.BasePrice < 0 || room.ExtraGuestPrice < 0 {
			return fmt.Errorf("hotel room '%s' has negative price", room.Name)
		}
	}
	return nil
}

func validateMeetingRooms(rooms []models.MeetingRoom) error {
	names := make(map[string]bool)
	for _, room := range rooms {
		if room.Name == "" {
			return fmt.Errorf("meeting room without a name")
		}
		if names[room.Name] {
			return fmt.Errorf("duplicate meeting room name: %s", room.Name)
		}
		names[room.Name] = true

		if room.MaxCapacity < 1 {
			return fmt.Errorf("meeting room '%s' has invalid max_capacity %d", room.Name, room.MaxCapacity)
		}
		if room.FullDayPrice < 0 || room.CateringPerPerson < 0 {
			return fmt.Errorf("meeting room '%s' has negative price", room.Name)
		}
	}
	return nil
}

// HotelRooms returns the configured hotel room rules in catalog order.
func (c *Catalog) HotelRooms() []models.HotelRoom {
	rooms := make([]models.HotelRoom, len(c.hotelRooms))
	copy(rooms, c.hotelRooms)
	return rooms
}

// MeetingRooms returns the configured meeting room rules in catalog order.
func (c *Catalog) MeetingRooms() []models.MeetingRoom {
	rooms := make([]models.MeetingRoom, len(c.meetingRooms))
	copy(rooms, c.meetingRooms)
	return rooms
}
