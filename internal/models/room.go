package models

// HotelRoom is a room category priced per night. Loaded from config once at
// startup and never mutated afterwards.
type HotelRoom struct {
	Name            string   `yaml:"name" json:"name"`
	Category        string   `yaml:"category" json:"category"`
	MaxGuests       int      `yaml:"max_guests" json:"max_guests"`
	BasePrice       float64  `yaml:"base_price" json:"base_price"`
	ExtraGuestPrice float64  `yaml:"extra_guest_price" json:"extra_guest_price"`
	Features        []string `yaml:"features" json:"features"`
}

// MeetingRoom is priced per full day, with optional per-person catering.
type MeetingRoom struct {
	Name              string   `yaml:"name" json:"name"`
	MaxCapacity       int      `yaml:"max_capacity" json:"max_capacity"`
	FullDayPrice      float64  `yaml:"full_day_price" json:"full_day_price"`
	CateringPerPerson float64  `yaml:"catering_per_person" json:"catering_per_person"`
	Features          []string `yaml:"features" json:"features"`
}
