package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var fourSlots = []string{"9:00", "10:00", "11:00", "12:00"}

func TestSlotsForBooking(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		hours    int
		expected []string
	}{
		{
			name:     "full span inside business hours",
			start:    "10:00",
			hours:    2,
			expected: []string{"10:00", "11:00"},
		},
		{
			name:     "single slot",
			start:    "9:00",
			hours:    1,
			expected: []string{"9:00"},
		},
		{
			name:     "truncated at closing, not wrapped",
			start:    "11:00",
			hours:    3,
			expected: []string{"11:00", "12:00"},
		},
		{
			name:     "start at last slot",
			start:    "12:00",
			hours:    2,
			expected: []string{"12:00"},
		},
		{
			name:     "unknown start slot yields empty span",
			start:    "8:00",
			hours:    2,
			expected: nil,
		},
		{
			name:     "zero hours yields empty span",
			start:    "9:00",
			hours:    0,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SlotsForBooking(tc.start, tc.hours, fourSlots)
			assert.Equal(t, tc.expected, got)
		})
	}
}
