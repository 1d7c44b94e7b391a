package get_availability

import (
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/allocation"
	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.WorkspaceType == "" {
		return fmt.Errorf("%w: workspaceType is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Duration == "" {
		return fmt.Errorf("%w: duration is required", ErrInvalidInput)
	}

	return nil
}

// toEngineBookings конвертирует доменные бронирования во вход движка распределения
func toEngineBookings(bookings []*domain.Booking) []allocation.Booking {
	result := make([]allocation.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		result = append(result, allocation.Booking{
			TimeSlot:   b.TimeSlot,
			Duration:   b.Duration,
			DeskNumber: b.DeskNumber,
		})
	}
	return result
}
