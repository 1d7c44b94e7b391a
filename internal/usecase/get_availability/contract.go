package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetForAllocation получает активные бронирования типа пространства на дату
	GetForAllocation(ctx context.Context, workspaceType string, date time.Time) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек сайта
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
