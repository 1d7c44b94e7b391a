package update_booking_status

import (
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64, isAdmin bool) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:  userID,
		IsAdmin: isAdmin,
		Status:  r.Status,
	}
}
