package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/settings/models"
)

// Service сервис для работы с настройками сайта
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSitePlan возвращает актуальную конфигурацию сайта
// Публичный метод - отсутствующие настройки заменяются значениями по умолчанию
func (s *Service) GetSitePlan(ctx context.Context) (*models.SitePlanResponse, error) {
	s.logger.Info("GetSitePlan: fetching site settings")

	values, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetSitePlan: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSitePlan - repository error: %v", ErrInternal, err)
	}

	plan := domain.ParseSitePlan(values)
	s.logger.Info("GetSitePlan: desks=%d, slots=%d, durations=%d",
		plan.TotalDesks, len(plan.HourlySlots), len(plan.BookingDurations))

	return models.FromDomainSitePlan(&plan), nil
}

// Update обновляет настройки сайта
// Доступно только администраторам
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SitePlanResponse, error) {
	s.logger.Info("Update: updating site settings by user=%d", req.UserID)

	// Проверяем права доступа
	if !req.IsAdmin {
		s.logger.Warn("Update: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	// Валидируем обновления
	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// Применяем обновления по ключам
	if req.TotalDesks != nil {
		if err := s.settingsRepo.Upsert(ctx, domain.SettingTotalDesks, strconv.Itoa(*req.TotalDesks)); err != nil {
			s.logger.Error("Update: failed to upsert %s: %v", domain.SettingTotalDesks, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	if req.HourlySlots != nil {
		if err := s.settingsRepo.Upsert(ctx, domain.SettingHourlySlots, models.JoinCSV(*req.HourlySlots)); err != nil {
			s.logger.Error("Update: failed to upsert %s: %v", domain.SettingHourlySlots, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	if req.BookingDurations != nil {
		if err := s.settingsRepo.Upsert(ctx, domain.SettingBookingDurations, models.JoinCSV(*req.BookingDurations)); err != nil {
			s.logger.Error("Update: failed to upsert %s: %v", domain.SettingBookingDurations, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated site settings by user=%d", req.UserID)

	// Возвращаем актуальную конфигурацию
	return s.GetSitePlan(ctx)
}

// validateUpdate валидирует параметры обновления настроек
func (s *Service) validateUpdate(req *models.UpdateSettingsRequest) error {
	if req.TotalDesks == nil && req.HourlySlots == nil && req.BookingDurations == nil {
		return fmt.Errorf("%w: no settings to update", ErrInvalidInput)
	}

	if req.TotalDesks != nil {
		if *req.TotalDesks < domain.MinTotalDesks || *req.TotalDesks > domain.MaxTotalDesks {
			return fmt.Errorf("%w: totalDesks must be between %d and %d",
				ErrInvalidInput, domain.MinTotalDesks, domain.MaxTotalDesks)
		}
	}

	if req.HourlySlots != nil {
		if models.JoinCSV(*req.HourlySlots) == "" {
			return fmt.Errorf("%w: hourlySlots must contain at least one slot", ErrInvalidInput)
		}
	}

	if req.BookingDurations != nil {
		if models.JoinCSV(*req.BookingDurations) == "" {
			return fmt.Errorf("%w: bookingDurations must contain at least one duration", ErrInvalidInput)
		}
	}

	return nil
}
