package get_settings

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	GetSitePlan(ctx context.Context) (*models.SitePlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
