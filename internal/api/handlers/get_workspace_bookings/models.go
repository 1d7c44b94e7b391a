package get_workspace_bookings

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из параметров URL и query
// Даты приходят строками YYYY-MM-DD, пустые значения превращаются в nil
func ToServiceRequest(
	userID int64,
	isAdmin bool,
	workspaceType string,
	startDateStr, endDateStr, status string,
	includeInactive bool,
) (*models.GetWorkspaceBookingsRequest, error) {
	req := &models.GetWorkspaceBookingsRequest{
		UserID:          userID,
		IsAdmin:         isAdmin,
		WorkspaceType:   workspaceType,
		IncludeInactive: includeInactive,
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status != "" {
		req.Status = &status
	}

	return req, nil
}
