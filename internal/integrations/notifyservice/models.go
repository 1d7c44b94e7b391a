package notifyservice

// Типы событий, отправляемых в сервис уведомлений
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// Event событие бронирования для сервиса уведомлений
type Event struct {
	Type          string `json:"type"`
	BookingID     int64  `json:"booking_id"`
	UserID        int64  `json:"user_id"`
	WorkspaceType string `json:"workspace_type"`
	BookingDate   string `json:"booking_date"` // "2026-08-29"
	TimeSlot      string `json:"time_slot"`    // "9:00 AM"
	Duration      string `json:"duration"`
	DeskNumber    *int   `json:"desk_number,omitempty"`

	// Заполняются только для события booking.cancelled
	CancelStatus       string `json:"cancel_status,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
