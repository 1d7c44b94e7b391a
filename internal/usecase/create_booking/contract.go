package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/integrations/notifyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetForAllocation получает активные бронирования типа пространства на дату
	// (с блокировкой строк внутри транзакции)
	GetForAllocation(ctx context.Context, workspaceType string, date time.Time) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек сайта
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	SendEventWithGracefulDegradation(ctx context.Context, event *notifyservice.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
