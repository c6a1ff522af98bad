package get_locker

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/lockers"
)

const (
	msgInvalidLockerID = "некорректный ID ячейки"
	msgNotFound        = "ячейка не найдена"
)

type Handler struct {
	service LockerService
	logger  Logger
}

func NewHandler(service LockerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lockers/{lockerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lockerID := mux.Vars(r)["lockerId"]

	result, err := h.service.Get(r.Context(), lockerID)
	if err != nil {
		switch {
		case errors.Is(err, lockers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidLockerID)

		case errors.Is(err, lockers.ErrLockerNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /lockers/{id} - Failed to get locker: locker_id=%s, error=%v", lockerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromLocker(result))
}
