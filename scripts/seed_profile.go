package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gasthof/internal/search"
)

// Writes a starter hotel profile so the search index has something to
// embed before the operator fills in real property data.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed_profile: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		outPath = flag.String("out", "configs/hotel_profile.json", "path to write the profile JSON")
		force   = flag.Bool("force", false, "overwrite an existing file")
	)
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*outPath); err == nil {
			return fmt.Errorf("%s already exists, use -force to overwrite", *outPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	data, err := json.MarshalIndent(starterProfile(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	fmt.Printf("Wrote starter profile to %s\n", *outPath)
	return nil
}

func starterProfile() *search.HotelProfile {
	return &search.HotelProfile{
		HotelID:          "gasthof-001",
		Name:             "Gasthof am Markt",
		Brand:            "Gasthof",
		Address:          "Marktplatz 1",
		PostalCode:       "10117",
		City:             "Berlin",
		Country:          "Germany",
		Region:           "Mitte",
		DescriptionShort: "City hotel next to the market square",
		DescriptionLong:  "A mid-sized city hotel with smart rooms, a lobby bar and two event spaces, a short walk from the old town.",

		Phone:   "+49 30 000000",
		Email:   "reception@example.com",
		Website: "https://example.com",

		ParkingSpaces:              40,
		ParkingFeeDay:              15,
		ParkingHeightLimitM:        2.0,
		ParkingReservationPossible: false,

		DistanceAirportKm:          25,
		DrivingTimeAirportMin:      35,
		PublicTransportDescription: "U-Bahn station 200 m from the entrance, direct line to the main station",
		DistanceCityCenterMin:      5,

		TotalRooms:      120,
		NonSmokingHotel: true,
		RoomCategories:  []string{"Smart Queen", "Family Loft"},
		BedOptions:      []string{"queen", "twin", "sofa bed"},
		RoomFeatures:    []string{"air conditioning", "smart TV", "rain shower"},

		BarName:         "Marktbar",
		BarDescription:  "Lobby bar with regional wines and small plates",
		BarOpeningHours: "17:00-01:00",
		CashlessOnly:    true,

		FitnessAvailable:        true,
		FitnessHours:            "06:00-22:00",
		FitnessEquipment:        []string{"treadmill", "free weights", "rowing machine"},
		SaunaAvailable:          true,
		SaunaHours:              "15:00-21:00",
		WellnessAreaDescription: "Sauna and relaxation room on the top floor",

		FreeWifi:         true,
		FreeMinibarDay1:  true,
		FreeFitness:      true,
		FreeWellness:     false,
		FreeLateCheckout: "subject to availability",
		FreePets:         false,

		MeetingRoomsTotal:  2,
		EventTeamAvailable: true,
		EventEquipment:     "projector, sound system, video conferencing",
		MeetingRoomProfiles: []search.MeetingRoomProfile{
			{
				Name:           "Forum",
				Sqm:            90,
				HeightM:        3.2,
				Daylight:       true,
				MaxCapacity:    40,
				SeatingOptions: "theatre, u-shape, classroom",
			},
			{
				Name:           "Studio",
				Sqm:            35,
				HeightM:        2.8,
				Daylight:       false,
				MaxCapacity:    12,
				SeatingOptions: "boardroom",
			},
		},
	}
}
