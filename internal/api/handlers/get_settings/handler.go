package get_settings

import (
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSitePlan(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to get site settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Site settings retrieved: desks=%d, slots=%d",
		result.TotalDesks, len(result.HourlySlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
