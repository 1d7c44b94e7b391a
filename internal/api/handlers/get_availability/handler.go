package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/CWS-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate     = "дата обязательна"
	msgMissingDuration = "длительность обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workspaces/{workspaceType}/availability
// Query params: date (required, YYYY-MM-DD), duration (required, например "2 hours")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workspaceType := vars["workspaceType"]

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /workspaces/{type}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем duration из query параметров
	duration := r.URL.Query().Get("duration")
	if duration == "" {
		h.logger.Warn("GET /workspaces/{type}/availability - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(workspaceType, dateStr, duration)
	if err != nil {
		h.logger.Warn("GET /workspaces/{type}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /workspaces/{type}/availability - Invalid input: workspace=%s, error=%v",
				workspaceType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /workspaces/{type}/availability - Failed to get availability: workspace=%s, error=%v",
				workspaceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /workspaces/{type}/availability - Availability retrieved: workspace=%s, date=%s, slots=%d",
		workspaceType, dateStr, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
