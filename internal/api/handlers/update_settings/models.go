package update_settings

import (
	"github.com/m04kA/CWS-BookingService/internal/service/settings/models"
)

// UpdateSettingsRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	TotalDesks       *int      `json:"totalDesks,omitempty"`
	HourlySlots      *[]string `json:"hourlySlots,omitempty"`
	BookingDurations *[]string `json:"bookingDurations,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(userID int64, isAdmin bool) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:           userID,
		IsAdmin:          isAdmin,
		TotalDesks:       r.TotalDesks,
		HourlySlots:      r.HourlySlots,
		BookingDurations: r.BookingDurations,
	}
}
