package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/allocation"
	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// UseCase use case для расчета доступности стартовых слотов.
//
// Использует тот же движок распределения, что и создание бронирования:
// слот недоступен, только если ни один стол не свободен на весь запрошенный
// интервал. Упрощенное правило "любое бронирование в слоте = слот занят"
// из старых ревизий давало расхождение с фактическим назначением столов.
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute выполняет use case расчета доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: workspace=%s, date=%s, duration=%s",
		req.WorkspaceType, req.Date.Format(domain.DateFormat), req.Duration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем конфигурацию сайта
	values, err := uc.settingsRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load site settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load site settings: %v", ErrInternal, err)
	}
	plan := domain.ParseSitePlan(values)

	if !allocation.KnownDuration(req.Duration) {
		uc.logger.Warn("GetAvailability: unrecognized duration %q, falling back to 1 hour", req.Duration)
	}

	// 3. Читаем активные бронирования на дату (снапшот, без блокировок -
	// авторитетная проверка все равно повторится при вставке)
	bookings, err := uc.bookingRepo.GetForAllocation(ctx, req.WorkspaceType, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Считаем недоступные стартовые слоты
	unavailable := allocation.UnavailableStartSlots(
		req.Duration,
		plan.HourlySlots,
		plan.TotalDesks,
		toEngineBookings(bookings),
	)

	slots := make([]Slot, len(plan.HourlySlots))
	for i, label := range plan.HourlySlots {
		_, isUnavailable := unavailable[label]
		slots[i] = Slot{
			Label:     label,
			Available: !isUnavailable,
		}
	}

	uc.logger.Info("GetAvailability: %d of %d start slots unavailable, workspace=%s, date=%s",
		len(unavailable), len(plan.HourlySlots), req.WorkspaceType, req.Date.Format(domain.DateFormat))

	return &Response{
		WorkspaceType: req.WorkspaceType,
		Date:          req.Date,
		Duration:      req.Duration,
		DurationHours: allocation.DurationHours(req.Duration, len(plan.HourlySlots)),
		TotalDesks:    plan.TotalDesks,
		Slots:         slots,
	}, nil
}
