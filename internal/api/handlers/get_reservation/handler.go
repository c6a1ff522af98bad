package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/api/middleware"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/ledger"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	ledger ReservationLedger
	logger Logger
}

func NewHandler(reservationLedger ReservationLedger, logger Logger) *Handler {
	return &Handler{
		ledger: reservationLedger,
		logger: logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	reservationID := mux.Vars(r)["reservationId"]

	result, err := h.ledger.GetByID(r.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		case errors.Is(err, ledger.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ledger.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservation(result))
}
