package pricing

import (
	"fmt"
	"sort"

	"gasthof/internal/models"
)

// ResolveHotelOptions prices every hotel room that can host the requested
// guest count for the given number of nights. Rooms below capacity are
// excluded outright. The result is sorted ascending by total price; an empty
// slice means no availability, which is not an error.
func (c *Catalog) ResolveHotelOptions(guests, nights int) []models.RoomOption {
	options := make([]models.RoomOption, 0, len(c.hotelRooms))

	for _, room := range c.hotelRooms {
		if room.MaxGuests < guests {
			continue
		}

		pricePerNight := room.BasePrice
		// Single rooms never carry the extra-guest surcharge.
		if room.MaxGuests > 1 && guests > 1 {
			pricePerNight += float64(guests-1) * room.ExtraGuestPrice
		}

		options = append(options, models.RoomOption{
			RoomName:     room.Name,
			Category:     room.Category,
			Capacity:     room.MaxGuests,
			PricePerUnit: pricePerNight,
			TotalPrice:   pricePerNight * float64(nights),
			Units:        nights,
			UnitKind:     "night",
			Features:     room.Features,
		})
	}

	sortByTotalPrice(options)
	return options
}

// ResolveMeetingOptions prices meeting rooms at the full-day rate, with an
// optional per-person catering charge annotated on the option.
func (c *Catalog) ResolveMeetingOptions(guests, days int, includeCatering bool) []models.RoomOption {
	options := make([]models.RoomOption, 0, len(c.meetingRooms))

	for _, room := range c.meetingRooms {
		if room.MaxCapacity < guests {
			continue
		}

		total := room.FullDayPrice * float64(days)
		notes := ""
		if includeCatering {
			total += room.CateringPerPerson * float64(guests) * float64(days)
			notes = fmt.Sprintf("includes catering for %d guests at %.2f per person per day", guests, room.CateringPerPerson)
		}

		options = append(options, models.RoomOption{
			RoomName:     room.Name,
			Category:     "meeting",
			Capacity:     room.MaxCapacity,
			PricePerUnit: room.FullDayPrice,
			TotalPrice:   total,
			Units:        days,
			UnitKind:     "day",
			Features:     room.Features,
			Notes:        notes,
		})
	}

	sortByTotalPrice(options)
	return options
}

// Ties keep catalog order so results stay reproducible.
func sortByTotalPrice(options []models.RoomOption) {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalPrice < options[j].TotalPrice
	})
}
