package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSitePlan(t *testing.T) {
	testCases := []struct {
		name     string
		values   map[string]string
		expected SitePlan
	}{
		{
			name:   "empty settings fall back to defaults",
			values: map[string]string{},
			expected: SitePlan{
				TotalDesks:       DefaultTotalDesks,
				HourlySlots:      DefaultHourlySlots,
				BookingDurations: DefaultBookingDurations,
			},
		},
		{
			name: "fully configured",
			values: map[string]string{
				SettingTotalDesks:       "12",
				SettingHourlySlots:      "8:00 AM, 9:00 AM, 10:00 AM",
				SettingBookingDurations: "1 hour, 2 hours",
			},
			expected: SitePlan{
				TotalDesks:       12,
				HourlySlots:      []string{"8:00 AM", "9:00 AM", "10:00 AM"},
				BookingDurations: []string{"1 hour", "2 hours"},
			},
		},
		{
			name: "whitespace and empties are dropped",
			values: map[string]string{
				SettingHourlySlots: " 9:00 AM ,, 10:00 AM ,",
			},
			expected: SitePlan{
				TotalDesks:       DefaultTotalDesks,
				HourlySlots:      []string{"9:00 AM", "10:00 AM"},
				BookingDurations: DefaultBookingDurations,
			},
		},
		{
			name: "only commas falls back to default slots",
			values: map[string]string{
				SettingHourlySlots: ", ,",
			},
			expected: SitePlan{
				TotalDesks:       DefaultTotalDesks,
				HourlySlots:      DefaultHourlySlots,
				BookingDurations: DefaultBookingDurations,
			},
		},
		{
			name: "malformed desk count falls back",
			values: map[string]string{
				SettingTotalDesks: "many",
			},
			expected: SitePlan{
				TotalDesks:       DefaultTotalDesks,
				HourlySlots:      DefaultHourlySlots,
				BookingDurations: DefaultBookingDurations,
			},
		},
		{
			name: "non-positive desk count falls back",
			values: map[string]string{
				SettingTotalDesks: "0",
			},
			expected: SitePlan{
				TotalDesks:       DefaultTotalDesks,
				HourlySlots:      DefaultHourlySlots,
				BookingDurations: DefaultBookingDurations,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseSitePlan(tc.values))
		})
	}
}

func TestSitePlanHasSlot(t *testing.T) {
	plan := SitePlan{HourlySlots: []string{"9:00 AM", "10:00 AM"}}

	assert.True(t, plan.HasSlot("9:00 AM"))
	assert.False(t, plan.HasSlot("8:00 AM"))
	assert.False(t, plan.HasSlot(""))
}

func TestBookingIsActive(t *testing.T) {
	active := []BookingStatus{StatusPending, StatusCodeSent, StatusConfirmed}
	inactive := []BookingStatus{StatusRejected, StatusCancelledByUser, StatusCancelledByAdmin}

	for _, s := range active {
		b := Booking{Status: s}
		assert.True(t, b.IsActive(), string(s))
		assert.True(t, b.CanBeCancelled(), string(s))
	}
	for _, s := range inactive {
		b := Booking{Status: s}
		assert.False(t, b.IsActive(), string(s))
	}
}
