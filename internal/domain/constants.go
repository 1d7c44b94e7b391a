package domain

// Default site configuration values, used when the settings store has no value
const (
	DefaultTotalDesks = 6
)

// DefaultHourlySlots is the default ordered slot sequence: 9:00 AM to 5:00 PM hourly
var DefaultHourlySlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

// DefaultBookingDurations is the default set of duration options offered to customers
var DefaultBookingDurations = []string{
	"1 hour",
	"2 hours",
	"3 hours",
	"4 hours",
	"5 hours",
	"6 hours",
}

// Setting keys in the site_settings store
const (
	SettingTotalDesks       = "total_desks"
	SettingHourlySlots      = "hourly_slots"
	SettingBookingDurations = "booking_durations"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinTotalDesks               = 1
	MaxTotalDesks               = 500
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте занятости столов
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelledByUser,
	StatusCancelledByAdmin,
}

// ActiveStatuses список статусов, занимающих место
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusCodeSent,
	StatusConfirmed,
}
