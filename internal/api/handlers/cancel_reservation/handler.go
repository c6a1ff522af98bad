package cancel_reservation

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
	msgTransientConflict    = "ячейка сейчас занята другой операцией, повторите попытку"
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

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	reservationID := mux.Vars(r)["reservationId"]

	err := h.ledger.Cancel(r.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		case errors.Is(err, ledger.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ledger.ErrForbidden):
			h.logger.Warn("DELETE /reservations/{id} - Access denied: reservation_id=%s, user_id=%s",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, ledger.ErrTransientConflict):
			h.logger.Warn("DELETE /reservations/{id} - Transient conflict: reservation_id=%s", reservationID)
			w.Header().Set("Retry-After", "1")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTransientConflict)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to cancel reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled successfully: reservation_id=%s, user_id=%s",
		reservationID, userID)
	w.WriteHeader(http.StatusNoContent)
}
