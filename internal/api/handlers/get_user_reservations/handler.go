package get_user_reservations

import (
	"net/http"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/api/middleware"
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

// Handle GET /api/v1/users/me/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.ledger.ListForRequester(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/me/reservations - Failed to get reservations: user_id=%s, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*handlers.ReservationResponse, 0, len(result))
	for _, reservation := range result {
		response = append(response, handlers.FromReservation(reservation))
	}

	h.logger.Info("GET /users/me/reservations - Reservations retrieved successfully: user_id=%s, count=%d",
		userID, len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
