package domain

import (
	"strconv"
	"strings"
)

// SitePlan is the site configuration snapshot the allocation engine works with.
// It is assembled once per request from the settings store and passed explicitly;
// the engine never reads configuration from ambient state.
type SitePlan struct {
	TotalDesks       int
	HourlySlots      []string // Ordered, gap-free; position implies adjacency in time
	BookingDurations []string
}

// ParseSitePlan builds a SitePlan from raw settings values.
// Missing, empty or malformed values fall back to the hardcoded defaults.
func ParseSitePlan(values map[string]string) SitePlan {
	plan := SitePlan{
		TotalDesks:       DefaultTotalDesks,
		HourlySlots:      DefaultHourlySlots,
		BookingDurations: DefaultBookingDurations,
	}

	if raw, ok := values[SettingTotalDesks]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
			plan.TotalDesks = n
		}
	}

	if slots := splitCSV(values[SettingHourlySlots]); len(slots) > 0 {
		plan.HourlySlots = slots
	}

	if durations := splitCSV(values[SettingBookingDurations]); len(durations) > 0 {
		plan.BookingDurations = durations
	}

	return plan
}

// HasSlot reports whether label is one of the configured hourly slots
func (p SitePlan) HasSlot(label string) bool {
	for _, s := range p.HourlySlots {
		if s == label {
			return true
		}
	}
	return false
}

// splitCSV splits a comma-separated value, trims each entry and drops empties
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
