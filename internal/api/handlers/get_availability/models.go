package get_availability

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	getAvailability "github.com/m04kA/CWS-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	WorkspaceType string `json:"workspaceType"`
	Date          string `json:"date"`
	Duration      string `json:"duration"`
	DurationHours int    `json:"durationHours"`
	TotalDesks    int    `json:"totalDesks"`
	Slots         []Slot `json:"slots"`
}

// Slot стартовый слот с признаком доступности
type Slot struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(workspaceType, dateStr, duration string) (*getAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		WorkspaceType: workspaceType,
		Date:          date,
		Duration:      duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Label:     slot.Label,
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{
		WorkspaceType: resp.WorkspaceType,
		Date:          resp.Date.Format(domain.DateFormat),
		Duration:      resp.Duration,
		DurationHours: resp.DurationHours,
		TotalDesks:    resp.TotalDesks,
		Slots:         slots,
	}
}
