package create_booking

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	createBooking "github.com/m04kA/CWS-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	WorkspaceType string  `json:"workspaceType"` // "hot-desk"
	BookingDate   string  `json:"bookingDate"`   // "2026-09-01"
	TimeSlot      string  `json:"timeSlot"`      // "10:00 AM"
	Duration      string  `json:"duration"`      // "2 hours"
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	WorkspaceType string  `json:"workspaceType"`
	BookingDate   string  `json:"bookingDate"`
	TimeSlot      string  `json:"timeSlot"`
	Duration      string  `json:"duration"`
	DurationHours int     `json:"durationHours"`
	DeskNumber    int     `json:"deskNumber"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		WorkspaceType: r.WorkspaceType,
		Date:          bookingDate,
		TimeSlot:      r.TimeSlot,
		Duration:      r.Duration,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		WorkspaceType: resp.WorkspaceType,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		TimeSlot:      resp.TimeSlot,
		Duration:      resp.Duration,
		DurationHours: resp.DurationHours,
		DeskNumber:    resp.DeskNumber,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
