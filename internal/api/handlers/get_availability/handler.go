package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	getAvailability "github.com/MaximeC37/BikerBox-sub000/internal/usecase/get_availability"
)

const (
	msgMissingWindow  = "параметры start и end обязательны"
	msgInvalidTime    = "некорректный формат времени, ожидается RFC3339"
	msgInvalidLocker  = "некорректный ID ячейки"
	msgLockerNotFound = "ячейка не найдена"
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

// Handle GET /api/v1/lockers/{lockerId}/availability?start=...&end=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lockerID := mux.Vars(r)["lockerId"]

	query := r.URL.Query()
	start, end := query.Get("start"), query.Get("end")
	if start == "" || end == "" {
		handlers.RespondBadRequest(w, msgMissingWindow)
		return
	}

	window, err := handlers.ParseWindow(start, end)
	if err != nil {
		h.logger.Warn("GET /lockers/{id}/availability - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		LockerID: lockerID,
		Window:   window,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidLocker)

		case errors.Is(err, getAvailability.ErrLockerNotFound):
			h.logger.Warn("GET /lockers/{id}/availability - Locker not found: locker_id=%s", lockerID)
			handlers.RespondNotFound(w, msgLockerNotFound)

		default:
			h.logger.Error("GET /lockers/{id}/availability - Failed to get availability: locker_id=%s, error=%v",
				lockerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
