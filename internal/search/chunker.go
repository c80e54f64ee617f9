package search

import (
	"fmt"
	"strings"
)

const (
	CategoryBasicInfo      = "basic_info"
	CategoryContact        = "contact"
	CategoryParking        = "parking"
	CategoryTransportation = "transportation"
	CategoryRooms          = "rooms"
	CategoryBar            = "bar"
	CategoryWellness       = "fitness_wellness"
	CategoryAmenities      = "free_amenities"
	CategoryMeetingRooms   = "meeting_rooms"
)

// Chunk is one embeddable section of the hotel profile.
type Chunk struct {
	Category string
	Text     string
}

// BuildChunks renders the profile into one text chunk per topic so
// a question only pulls in the sections it is actually about.
func BuildChunks(p *HotelProfile) []Chunk {
	chunks := []Chunk{
		{Category: CategoryBasicInfo, Text: basicInfoText(p)},
		{Category: CategoryContact, Text: contactText(p)},
		{Category: CategoryParking, Text: parkingText(p)},
		{Category: CategoryTransportation, Text: transportText(p)},
		{Category: CategoryRooms, Text: roomsText(p)},
		{Category: CategoryBar, Text: barText(p)},
		{Category: CategoryWellness, Text: wellnessText(p)},
		{Category: CategoryAmenities, Text: amenitiesText(p)},
		{Category: CategoryMeetingRooms, Text: meetingRoomsText(p)},
	}
	return chunks
}

func basicInfoText(p *HotelProfile) string {
	return strings.TrimSpace(fmt.Sprintf(`Hotel Name: %s
Brand: %s
Address: %s, %s %s
Country: %s
Region: %s
Short Description: %s
Long Description: %s`,
		p.Name, p.Brand, p.Address, p.PostalCode, p.City,
		p.Country, p.Region, p.DescriptionShort, p.DescriptionLong))
}

func contactText(p *HotelProfile) string {
	return strings.TrimSpace(fmt.Sprintf(`Hotel Contact Information:
Phone: %s
Email: %s
Website: %s`, p.Phone, p.Email, p.Website))
}

func parkingText(p *HotelProfile) string {
	return strings.TrimSpace(fmt.Sprintf(`Parking Information:
Number of parking spaces: %d
Parking fee per day: %.2f EUR
Height limit: %.2f meters
Reservation possible: %s`,
		p.ParkingSpaces, p.ParkingFeeDay, p.ParkingHeightLimitM, yesNo(p.ParkingReservationPossible)))
}

func transportText(p *HotelProfile) string {
	return strings.TrimSpace(fmt.Sprintf(`Transportation and Location:
Distance to airport: %.1f km
Driving time to airport: %d minutes
Public transport: %s
Distance to city center: %d minutes`,
		p.DistanceAirportKm, p.DrivingTimeAirportMin, p.PublicTransportDescription, p.DistanceCityCenterMin))
}

func roomsText(p *HotelProfile) string {
	return strings.TrimSpace(fmt.Sprintf(`Room Information:
Total rooms: %d
Non-smoking hotel: %s
Room categories: %s
Bed options: %s
Room features: %s`,
		p.TotalRooms, yesNo(p.NonSmokingHotel),
		strings.Join(p.RoomCategories, ", "),
		strings.Join(p.BedOptions, ", "),
		strings.Join(p.RoomFeatures, ", ")))
}

func barText(p *HotelProfile) string {
	return strings.TrimSpace(fmt.Sprintf(`Bar Information:
Bar name: %s
Description: %s
Opening hours: %s
Cashless only: %s`,
		p.BarName, p.BarDescription, p.BarOpeningHours, yesNo(p.CashlessOnly)))
}

func wellnessText(p *HotelProfile) string {
	return strings.TrimSpace(fmt.Sprintf(`Fitness and Wellness:
Fitness available: %s
Fitness hours: %s
Fitness equipment: %s
Sauna available: %s
Sauna hours: %s
Wellness area: %s`,
		yesNo(p.FitnessAvailable), p.FitnessHours, strings.Join(p.FitnessEquipment, ", "),
		yesNo(p.SaunaAvailable), p.SaunaHours, p.WellnessAreaDescription))
}

func amenitiesText(p *HotelProfile) string {
	return strings.TrimSpace(fmt.Sprintf(`Free Amenities and Services:
Free WiFi: %s
Free minibar on first day: %s
Free fitness access: %s
Free wellness access: %s
Free late checkout: %s
Free pets allowed: %s`,
		yesNo(p.FreeWifi), yesNo(p.FreeMinibarDay1), yesNo(p.FreeFitness),
		yesNo(p.FreeWellness), p.FreeLateCheckout, yesNo(p.FreePets)))
}

func meetingRoomsText(p *HotelProfile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Meeting Rooms and Events:\n")
	fmt.Fprintf(&sb, "Total meeting rooms: %d\n", p.MeetingRoomsTotal)
	fmt.Fprintf(&sb, "Event team available: %s\n", yesNo(p.EventTeamAvailable))
	fmt.Fprintf(&sb, "Technical equipment: %s\n", p.EventEquipment)
	for _, room := range p.MeetingRoomProfiles {
		fmt.Fprintf(&sb, "\nRoom: %s\n", room.Name)
		fmt.Fprintf(&sb, "  Size: %.0f sqm, ceiling height %.1f m\n", room.Sqm, room.HeightM)
		fmt.Fprintf(&sb, "  Daylight: %s\n", yesNo(room.Daylight))
		fmt.Fprintf(&sb, "  Maximum capacity: %d people\n", room.MaxCapacity)
		fmt.Fprintf(&sb, "  Seating options: %s\n", room.SeatingOptions)
	}
	return strings.TrimSpace(sb.String())
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
