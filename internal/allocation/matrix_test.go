package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/pkg/ptr"
)

func TestBuildMatrix_EmptyBookings(t *testing.T) {
	matrix := BuildMatrix(fourSlots, 2, nil)

	require.Len(t, matrix, 4)
	for _, slot := range fourSlots {
		assert.Equal(t, []bool{true, true}, matrix[slot])
	}
}

func TestBuildMatrix_MarksAssignedDesk(t *testing.T) {
	bookings := []Booking{
		{TimeSlot: "10:00", Duration: "2 hours", DeskNumber: ptr.Ptr(1)},
	}

	matrix := BuildMatrix(fourSlots, 2, bookings)

	assert.Equal(t, []bool{true, true}, matrix["9:00"])
	assert.Equal(t, []bool{false, true}, matrix["10:00"])
	assert.Equal(t, []bool{false, true}, matrix["11:00"])
	assert.Equal(t, []bool{true, true}, matrix["12:00"])
}

func TestBuildMatrix_LegacyBookingBlocksAllDesks(t *testing.T) {
	// Бронирование без назначенного стола занимает все столы в своих слотах
	bookings := []Booking{
		{TimeSlot: "9:00", Duration: "1 hour", DeskNumber: nil},
	}

	matrix := BuildMatrix(fourSlots, 3, bookings)

	assert.Equal(t, []bool{false, false, false}, matrix["9:00"])
	assert.Equal(t, []bool{true, true, true}, matrix["10:00"])
}

func TestBuildMatrix_OutOfRangeDeskBlocksAllDesks(t *testing.T) {
	testCases := []struct {
		name string
		desk int
	}{
		{name: "desk number above total", desk: 5},
		{name: "zero desk number", desk: 0},
		{name: "negative desk number", desk: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := []Booking{
				{TimeSlot: "9:00", Duration: "1 hour", DeskNumber: ptr.Ptr(tc.desk)},
			}

			matrix := BuildMatrix(fourSlots, 2, bookings)
			assert.Equal(t, []bool{false, false}, matrix["9:00"])
		})
	}
}

func TestBuildMatrix_OrderIndependent(t *testing.T) {
	b1 := Booking{TimeSlot: "9:00", Duration: "2 hours", DeskNumber: ptr.Ptr(1)}
	b2 := Booking{TimeSlot: "10:00", Duration: "2 hours", DeskNumber: ptr.Ptr(2)}
	b3 := Booking{TimeSlot: "10:00", Duration: "1 hour", DeskNumber: nil}

	forward := BuildMatrix(fourSlots, 3, []Booking{b1, b2, b3})
	backward := BuildMatrix(fourSlots, 3, []Booking{b3, b2, b1})

	assert.Equal(t, forward, backward)
}

func TestBuildMatrix_BookingPastClosingTruncates(t *testing.T) {
	// Бронирование на 3 часа со стартом в предпоследнем слоте занимает
	// только оставшиеся слоты
	bookings := []Booking{
		{TimeSlot: "11:00", Duration: "3 hours", DeskNumber: ptr.Ptr(1)},
	}

	matrix := BuildMatrix(fourSlots, 1, bookings)

	assert.Equal(t, []bool{true}, matrix["9:00"])
	assert.Equal(t, []bool{true}, matrix["10:00"])
	assert.Equal(t, []bool{false}, matrix["11:00"])
	assert.Equal(t, []bool{false}, matrix["12:00"])
}

func TestBuildMatrix_UnknownStartSlotOccupiesNothing(t *testing.T) {
	bookings := []Booking{
		{TimeSlot: "8:00", Duration: "2 hours", DeskNumber: ptr.Ptr(1)},
	}

	matrix := BuildMatrix(fourSlots, 1, bookings)

	for _, slot := range fourSlots {
		assert.Equal(t, []bool{true}, matrix[slot])
	}
}
