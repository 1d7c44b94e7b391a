package get_workspace_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams = "некорректные параметры фильтрации"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workspaces/{workspaceType}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workspaceType := vars["workspaceType"]

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /workspaces/{type}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	// Формируем запрос к сервису (с парсингом дат)
	serviceReq, err := ToServiceRequest(
		userID,
		middleware.IsAdmin(r.Context()),
		workspaceType,
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("status"),
		query.Get("includeInactive") == "true",
	)
	if err != nil {
		h.logger.Warn("GET /workspaces/{type}/bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем бронирования рабочего пространства
	result, err := h.service.GetWorkspaceBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /workspaces/{type}/bookings - Access denied: workspace=%s, user_id=%d",
				workspaceType, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /workspaces/{type}/bookings - Invalid params: workspace=%s, error=%v",
				workspaceType, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /workspaces/{type}/bookings - Failed to get bookings: workspace=%s, error=%v",
				workspaceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workspaces/{type}/bookings - Bookings retrieved successfully: workspace=%s, count=%d",
		workspaceType, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
