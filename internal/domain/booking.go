package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusCodeSent         BookingStatus = "code_sent"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusRejected         BookingStatus = "rejected"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByAdmin BookingStatus = "cancelled_by_admin"
)

// Booking represents a workspace booking in the system
type Booking struct {
	ID            int64
	UserID        int64
	WorkspaceType string
	BookingDate   time.Time
	TimeSlot      string // Start slot label, e.g. "9:00 AM"
	Duration      string // Duration label, e.g. "2 hours", "1-day"
	DeskNumber    *int   // 1-based desk number; nil for legacy bookings created before desk assignment
	Status        BookingStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies capacity.
// Only pending, code_sent and confirmed bookings count against desk availability.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusCodeSent ||
		b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByAdmin
}

// WorkspaceBookingsFilter фильтр для получения бронирований рабочего пространства
type WorkspaceBookingsFilter struct {
	WorkspaceType   string         // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, отклонённые)
}
