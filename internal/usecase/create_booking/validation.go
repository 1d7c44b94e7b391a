package create_booking

import (
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/allocation"
	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.WorkspaceType == "" {
		return fmt.Errorf("%w: workspaceType is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if req.Duration == "" {
		return fmt.Errorf("%w: duration is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartSlot проверяет, что стартовый слот есть в конфигурации сайта
func validateStartSlot(plan domain.SitePlan, slot string) error {
	if !plan.HasSlot(slot) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return nil
}

// toEngineBookings конвертирует доменные бронирования во вход движка распределения
func toEngineBookings(bookings []*domain.Booking) []allocation.Booking {
	result := make([]allocation.Booking, 0, len(bookings))
	for _, b := range bookings {
		// Репозиторий уже отдает только активные статусы, но фильтруем ещё раз:
		// движок обязан считать занятость только по активным бронированиям
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
