package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/allocation"
	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/integrations/notifyservice"
)

// UseCase use case для создания бронирования с назначением стола
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	notifyClient NotifyClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Назначение стола авторитетно только в момент, непосредственно предшествующий
// вставке: даже если доступность уже проверялась при выборе слота, стол
// назначается заново внутри сериализуемой транзакции с блокировкой прочитанных
// бронирований (FOR UPDATE). Это закрывает гонку "проверил-вставил" между
// конкурентными запросами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, workspace=%s, date=%s, slot=%s, duration=%s",
		req.UserID, req.WorkspaceType, req.Date.Format(domain.DateFormat), req.TimeSlot, req.Duration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем конфигурацию сайта (один раз на запрос, движок её не перечитывает)
	values, err := uc.settingsRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load site settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load site settings: %v", ErrInternal, err)
	}
	plan := domain.ParseSitePlan(values)

	// 3. Проверяем, что стартовый слот есть в конфигурации
	if err := validateStartSlot(plan, req.TimeSlot); err != nil {
		uc.logger.Warn("CreateBooking: unknown start slot %q for workspace=%s", req.TimeSlot, req.WorkspaceType)
		return nil, err
	}

	// 4. Откат нераспознанной длительности к 1 часу молча меняет размер
	// бронирования - фиксируем это в логе
	if !allocation.KnownDuration(req.Duration) {
		uc.logger.Warn("CreateBooking: unrecognized duration %q, falling back to 1 hour (user=%d)",
			req.Duration, req.UserID)
	}

	var result *domain.Booking
	var assignedDesk int

	// 5. Назначение стола и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Читаем активные бронирования на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetForAllocation(txCtx, req.WorkspaceType, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Назначаем стол first-fit по матрице занятости
		desk, err := allocation.AssignDesk(
			req.TimeSlot,
			req.Duration,
			plan.HourlySlots,
			plan.TotalDesks,
			toEngineBookings(bookings),
		)
		if err != nil {
			if errors.Is(err, allocation.ErrNoDeskAvailable) {
				uc.logger.Warn("CreateBooking: no desk available, workspace=%s, date=%s, slot=%s, duration=%s",
					req.WorkspaceType, req.Date.Format(domain.DateFormat), req.TimeSlot, req.Duration)
				return ErrNoDeskAvailable
			}
			uc.logger.Error("CreateBooking: desk assignment failed: %v", err)
			return fmt.Errorf("%w: desk assignment failed: %v", ErrInternal, err)
		}
		assignedDesk = desk

		uc.logger.Info("CreateBooking: assigned desk=%d of %d, workspace=%s, slot=%s",
			desk, plan.TotalDesks, req.WorkspaceType, req.TimeSlot)

		// 5.3. Создаем бронирование с назначенным столом
		booking := &domain.Booking{
			UserID:        req.UserID,
			WorkspaceType: req.WorkspaceType,
			BookingDate:   req.Date,
			TimeSlot:      req.TimeSlot,
			Duration:      req.Duration,
			DeskNumber:    &assignedDesk,
			Status:        domain.StatusPending,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, desk=%d", result.ID, assignedDesk)

	// 6. Уведомление после коммита; его недоступность бронирование не ломает
	if notifyErr := uc.notifyClient.SendEventWithGracefulDegradation(ctx, &notifyservice.Event{
		Type:          notifyservice.EventBookingCreated,
		BookingID:     result.ID,
		UserID:        result.UserID,
		WorkspaceType: result.WorkspaceType,
		BookingDate:   result.BookingDate.Format(domain.DateFormat),
		TimeSlot:      result.TimeSlot,
		Duration:      result.Duration,
		DeskNumber:    result.DeskNumber,
	}); notifyErr != nil {
		uc.logger.Warn("CreateBooking: notification degraded for booking id=%d: %v", result.ID, notifyErr)
	}

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		WorkspaceType: result.WorkspaceType,
		BookingDate:   result.BookingDate,
		TimeSlot:      result.TimeSlot,
		Duration:      result.Duration,
		DurationHours: allocation.DurationHours(result.Duration, len(plan.HourlySlots)),
		DeskNumber:    assignedDesk,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
