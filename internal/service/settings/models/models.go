package models

import (
	"strings"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек сайта
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	UserID           int64     `json:"userId"`
	IsAdmin          bool      `json:"-"`
	TotalDesks       *int      `json:"totalDesks,omitempty"`
	HourlySlots      *[]string `json:"hourlySlots,omitempty"`
	BookingDurations *[]string `json:"bookingDurations,omitempty"`
}

// Response модели

// SitePlanResponse ответ с актуальной конфигурацией сайта
type SitePlanResponse struct {
	TotalDesks       int      `json:"totalDesks"`
	HourlySlots      []string `json:"hourlySlots"`
	BookingDurations []string `json:"bookingDurations"`
}

// FromDomainSitePlan конвертирует domain модель в DTO
func FromDomainSitePlan(plan *domain.SitePlan) *SitePlanResponse {
	if plan == nil {
		return nil
	}
	return &SitePlanResponse{
		TotalDesks:       plan.TotalDesks,
		HourlySlots:      plan.HourlySlots,
		BookingDurations: plan.BookingDurations,
	}
}

// JoinCSV сериализует список значений в формат хранения настроек
func JoinCSV(values []string) string {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	return strings.Join(trimmed, ", ")
}
