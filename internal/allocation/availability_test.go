package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CWS-BookingService/pkg/ptr"
)

var nineSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

func TestUnavailableStartSlots_EmptyBookings(t *testing.T) {
	// Без бронирований недоступны только слоты, не вмещающие длительность
	// до конца дня
	unavailable := UnavailableStartSlots("2 hours", fourSlots, 2, nil)

	assert.Equal(t, map[string]struct{}{"12:00": {}}, unavailable)
}

func TestUnavailableStartSlots_OneHourAllFree(t *testing.T) {
	unavailable := UnavailableStartSlots("1 hour", fourSlots, 2, nil)
	assert.Empty(t, unavailable)
}

func TestUnavailableStartSlots_FullyBookedSpan(t *testing.T) {
	// Оба стола заняты на 10:00-12:00: любой двухчасовой интервал,
	// пересекающийся с этой занятостью, недоступен
	bookings := []Booking{
		{TimeSlot: "10:00", Duration: "2 hours", DeskNumber: ptr.Ptr(1)},
		{TimeSlot: "10:00", Duration: "2 hours", DeskNumber: ptr.Ptr(2)},
	}

	unavailable := UnavailableStartSlots("2 hours", fourSlots, 2, bookings)

	assert.Contains(t, unavailable, "10:00")
	assert.Contains(t, unavailable, "9:00")  // второй час пересекается с занятостью
	assert.Contains(t, unavailable, "11:00") // первый час пересекается с занятостью
	assert.Contains(t, unavailable, "12:00") // не вмещается до закрытия
}

func TestUnavailableStartSlots_PartialOccupancyStaysAvailable(t *testing.T) {
	// Один занятый стол из двух не делает слот недоступным
	bookings := []Booking{
		{TimeSlot: "10:00", Duration: "2 hours", DeskNumber: ptr.Ptr(1)},
	}

	unavailable := UnavailableStartSlots("2 hours", fourSlots, 2, bookings)

	assert.NotContains(t, unavailable, "10:00")
	assert.NotContains(t, unavailable, "9:00")
}

func TestUnavailableStartSlots_BoundaryTruncation(t *testing.T) {
	// 1-day на 9 слотах = 9 часов: влезает только старт с первого слота,
	// независимо от бронирований
	unavailable := UnavailableStartSlots("1-day", nineSlots, 1, nil)

	assert.NotContains(t, unavailable, "9:00 AM")
	for _, slot := range nineSlots[1:] {
		assert.Contains(t, unavailable, slot)
	}
}

func TestUnavailableStartSlots_Monotonicity(t *testing.T) {
	// Добавление бронирования никогда не уменьшает множество недоступных слотов
	base := []Booking{
		{TimeSlot: "10:00", Duration: "2 hours", DeskNumber: ptr.Ptr(1)},
	}
	extended := append([]Booking{}, base...)
	extended = append(extended, Booking{TimeSlot: "9:00", Duration: "1 hour", DeskNumber: nil})

	before := UnavailableStartSlots("2 hours", fourSlots, 2, base)
	after := UnavailableStartSlots("2 hours", fourSlots, 2, extended)

	for slot := range before {
		assert.Contains(t, after, slot)
	}
	assert.GreaterOrEqual(t, len(after), len(before))
}

func TestUnavailableStartSlots_LegacyBookingBlocksStarts(t *testing.T) {
	bookings := []Booking{
		{TimeSlot: "9:00", Duration: "1 hour", DeskNumber: nil},
	}

	unavailable := UnavailableStartSlots("1 hour", fourSlots, 3, bookings)

	assert.Contains(t, unavailable, "9:00")
	assert.NotContains(t, unavailable, "10:00")
}
