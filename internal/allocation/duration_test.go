package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationHours(t *testing.T) {
	testCases := []struct {
		name       string
		label      string
		totalSlots int
		expected   int
	}{
		{name: "1 hour", label: "1 hour", totalSlots: 9, expected: 1},
		{name: "1-hour alias", label: "1-hour", totalSlots: 9, expected: 1},
		{name: "2 hours", label: "2 hours", totalSlots: 9, expected: 2},
		{name: "2-hours alias", label: "2-hours", totalSlots: 9, expected: 2},
		{name: "3 hours", label: "3 hours", totalSlots: 9, expected: 3},
		{name: "4 hours", label: "4 hours", totalSlots: 9, expected: 4},
		{name: "4-hours alias", label: "4-hours", totalSlots: 9, expected: 4},
		{name: "5 hours", label: "5 hours", totalSlots: 9, expected: 5},
		{name: "6 hours", label: "6 hours", totalSlots: 9, expected: 6},
		{name: "1-day consumes every slot", label: "1-day", totalSlots: 9, expected: 9},
		{name: "1-day with 4 slots", label: "1-day", totalSlots: 4, expected: 4},
		{name: "1-week multiplies slot count", label: "1-week", totalSlots: 9, expected: 63},
		{name: "1-month multiplies slot count", label: "1-month", totalSlots: 9, expected: 270},
		{name: "regex fallback", label: "7 hours", totalSlots: 9, expected: 7},
		{name: "regex fallback compact", label: "8hours", totalSlots: 9, expected: 8},
		{name: "regex fallback hyphenated", label: "12-hours", totalSlots: 9, expected: 12},
		{name: "unrecognized defaults to one", label: "half a day", totalSlots: 9, expected: 1},
		{name: "empty defaults to one", label: "", totalSlots: 9, expected: 1},
		{name: "case insensitive", label: "2 Hours", totalSlots: 9, expected: 2},
		{name: "surrounding whitespace", label: "  3 hours ", totalSlots: 9, expected: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DurationHours(tc.label, tc.totalSlots))
		})
	}
}

func TestKnownDuration(t *testing.T) {
	assert.True(t, KnownDuration("2 hours"))
	assert.True(t, KnownDuration("1-day"))
	assert.True(t, KnownDuration("7 hours"))
	assert.False(t, KnownDuration("half a day"))
	assert.False(t, KnownDuration(""))
}
