package search

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// HotelProfile is the structured property description the search
// index answers questions from.
type HotelProfile struct {
	HotelID          string `json:"hotel_id"`
	Name             string `json:"name"`
	Brand            string `json:"brand"`
	Address          string `json:"address"`
	PostalCode       string `json:"postal_code"`
	City             string `json:"city"`
	Country          string `json:"country"`
	Region           string `json:"region"`
	DescriptionShort string `json:"description_short"`
	DescriptionLong  string `json:"description_long"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`

	ParkingSpaces              int     `json:"parking_spaces"`
	ParkingFeeDay              float64 `json:"parking_fee_day"`
	ParkingHeightLimitM        float64 `json:"parking_height_limit_m"`
	ParkingReservationPossible bool    `json:"parking_reservation_possible"`

	DistanceAirportKm          float64 `json:"distance_airport_km"`
	DrivingTimeAirportMin      int     `json:"driving_time_airport_min"`
	PublicTransportDescription string  `json:"public_transport_description"`
	DistanceCityCenterMin      int     `json:"distance_city_center_min"`

	TotalRooms      int      `json:"total_rooms"`
	NonSmokingHotel bool     `json:"non_smoking_hotel"`
	RoomCategories  []string `json:"room_categories"`
	BedOptions      []string `json:"bed_options"`
	RoomFeatures    []string `json:"room_features"`

	BarName         string `json:"bar_name"`
	BarDescription  string `json:"bar_description"`
	BarOpeningHours string `json:"bar_opening_hours"`
	CashlessOnly    bool   `json:"cashless_only"`

	FitnessAvailable        bool     `json:"fitness_available"`
	FitnessHours            string   `json:"fitness_hours"`
	FitnessEquipment        []string `json:"fitness_equipment"`
	SaunaAvailable          bool     `json:"sauna_available"`
	SaunaHours              string   `json:"sauna_hours"`
	WellnessAreaDescription string   `json:"wellness_area_description"`

	FreeWifi         bool   `json:"free_wifi"`
	FreeMinibarDay1  bool   `json:"free_minibar_day1"`
	FreeFitness      bool   `json:"free_fitness"`
	FreeWellness     bool   `json:"free_wellness"`
	FreeLateCheckout string `json:"free_late_checkout"`
	FreePets         bool   `json:"free_pets"`

	MeetingRoomsTotal   int                  `json:"meeting_rooms_total"`
	EventTeamAvailable  bool                 `json:"event_team_available"`
	EventEquipment      string               `json:"event_technical_equipment_available"`
	MeetingRoomProfiles []MeetingRoomProfile `json:"meeting_rooms"`
}

// MeetingRoomProfile describes one event space for the search index.
type MeetingRoomProfile struct {
	Name           string  `json:"name"`
	Sqm            float64 `json:"sqm"`
	HeightM        float64 `json:"height_m"`
	Daylight       bool    `json:"daylight"`
	MaxCapacity    int     `json:"max_capacity"`
	SeatingOptions string  `json:"seating_options"`
}

func LoadProfile(path string) (*HotelProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hotel profile: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("hotel profile %s is empty", path)
	}

	var profile HotelProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode hotel profile %s: %w", path, err)
	}
	return &profile, nil
}
