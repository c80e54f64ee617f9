package pricing

import (
	"testing"

	"gasthof/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewCatalog(
		[]models.HotelRoom{
			{Name: "Smart Single", Category: "Smart", MaxGuests: 1, BasePrice: 99, ExtraGuestPrice: 25},
			{Name: "Smart Queen", Category: "Smart", MaxGuests: 2, BasePrice: 119, ExtraGuestPrice: 25},
			{Name: "Family Loft", Category: "Family", MaxGuests: 4, BasePrice: 159, ExtraGuestPrice: 30},
		},
		[]models.MeetingRoom{
			{Name: "Forum", MaxCapacity: 40, FullDayPrice: 750, CateringPerPerson: 35},
			{Name: "Studio", MaxCapacity: 12, FullDayPrice: 300, CateringPerPerson: 35},
		},
	)
	require.NoError(t, err)
	return catalog
}

func TestResolveHotelOptions_Pricing(t *testing.T) {
	catalog := testCatalog(t)

	// 2 guests, 2 nights: 119 + 1*25 = 144 per night, 288 total.
	options := catalog.ResolveHotelOptions(2, 2)
	require.Len(t, options, 2)
	assert.Equal(t, "Smart Queen", options[0].RoomName)
	assert.Equal(t, 144.0, options[0].PricePerUnit)
	assert.Equal(t, 288.0, options[0].TotalPrice)
	assert.Equal(t, 2, options[0].Units)
	assert.Equal(t, "night", options[0].UnitKind)
}

func TestResolveHotelOptions_CapacityExclusion(t *testing.T) {
	catalog := testCatalog(t)

	options := catalog.ResolveHotelOptions(3, 1)
	require.Len(t, options, 1)
	assert.Equal(t, "Family Loft", options[0].RoomName)

	assert.Empty(t, catalog.ResolveHotelOptions(5, 1))
}

func TestResolveHotelOptions_SingleRoomNoSurcharge(t *testing.T) {
	catalog := testCatalog(t)

	options := catalog.ResolveHotelOptions(1, 3)
	require.Len(t, options, 3)
	// Single room comes first and is priced at base only.
	assert.Equal(t, "Smart Single", options[0].RoomName)
	assert.Equal(t, 99.0, options[0].PricePerUnit)
	assert.Equal(t, 297.0, options[0].TotalPrice)
	// Multi-capacity rooms with a single guest are also base-only.
	assert.Equal(t, 119.0, options[1].PricePerUnit)
}

func TestResolveHotelOptions_SortedAscending(t *testing.T) {
	catalog := testCatalog(t)

	options := catalog.ResolveHotelOptions(2, 1)
	for i := 1; i < len(options); i++ {
		assert.LessOrEqual(t, options[i-1].TotalPrice, options[i].TotalPrice)
	}
}

func TestResolveHotelOptions_MonotonicInGuestsAndNights(t *testing.T) {
	catalog := testCatalog(t)

	priceFor := func(guests, nights int) float64 {
		for _, opt := range catalog.ResolveHotelOptions(guests, nights) {
			if opt.RoomName == "Family Loft" {
				return opt.TotalPrice
			}
		}
		t.Fatalf("Family Loft missing for %d guests", guests)
		return 0
	}

	assert.LessOrEqual(t, priceFor(1, 2), priceFor(2, 2))
	assert.LessOrEqual(t, priceFor(2, 2), priceFor(3, 2))
	assert.LessOrEqual(t, priceFor(2, 2), priceFor(2, 3))
}

func TestResolveMeetingOptions_Catering(t *testing.T) {
	catalog := testCatalog(t)

	// 30 guests, 1 day, catering: 750 + 35*30*1 = 1800.
	options := catalog.ResolveMeetingOptions(30, 1, true)
	require.Len(t, options, 1)
	assert.Equal(t, "Forum", options[0].RoomName)
	assert.Equal(t, 750.0, options[0].PricePerUnit)
	assert.Equal(t, 1800.0, options[0].TotalPrice)
	assert.Contains(t, options[0].Notes, "catering")

	plain := catalog.ResolveMeetingOptions(30, 1, false)
	require.Len(t, plain, 1)
	assert.Equal(t, 750.0, plain[0].TotalPrice)
	assert.Empty(t, plain[0].Notes)
}

func TestResolveMeetingOptions_FullDayRateOnly(t *testing.T) {
	catalog := testCatalog(t)

	options := catalog.ResolveMeetingOptions(10, 3, false)
	require.Len(t, options, 2)
	assert.Equal(t, "Studio", options[0].RoomName)
	assert.Equal(t, 900.0, options[0].TotalPrice)
	assert.Equal(t, "day", options[0].UnitKind)
}

func TestNewCatalog_Validation(t *testing.T) {
	_, err := NewCatalog([]models.HotelRoom{
		{Name: "A", MaxGuests: 2, BasePrice: 100},
		{Name: "A", MaxGuests: 2, BasePrice: 100},
	}, nil)
	assert.Error(t, err)

	_, err = NewCatalog([]models.HotelRoom{{Name: "B", MaxGuests: 0, BasePrice: 50}}, nil)
	assert.Error(t, err)

	_, err = NewCatalog(nil, []models.MeetingRoom{{Name: "M", MaxCapacity: 10, FullDayPrice: -1}})
	assert.Error(t, err)
}
