package create_reservation

import (
	"errors"
	"net/http"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/api/middleware"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "запрос не прошел валидацию"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidWindow      = "окно бронирования должно заканчиваться после начала"
	msgInvalidInput       = "некорректные данные бронирования"
	msgLockerNotFound     = "ячейка не найдена"
	msgCapacityExhausted  = "нет свободных ячеек выбранного размера на это время"
	msgTransientConflict  = "ячейка сейчас бронируется другими пользователями, повторите попытку"
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

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		var verrs handlers.ValidationErrors
		if errors.As(err, &verrs) {
			handlers.RespondValidationError(w, msgValidationFailed, verrs)
			return
		}
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	ledgerReq, err := req.ToLedgerRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.ledger.Create(r.Context(), ledgerReq)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidWindow):
			h.logger.Warn("POST /reservations - Invalid window: user_id=%s, locker_id=%s", userID, req.LockerID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, ledger.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, ledger.ErrLockerNotFound):
			h.logger.Warn("POST /reservations - Locker not found: locker_id=%s", req.LockerID)
			handlers.RespondNotFound(w, msgLockerNotFound)

		case errors.Is(err, ledger.ErrCapacityExhausted):
			h.logger.Warn("POST /reservations - Capacity exhausted: user_id=%s, locker_id=%s, size=%s",
				userID, req.LockerID, req.Size)
			handlers.RespondConflict(w, msgCapacityExhausted)

		case errors.Is(err, ledger.ErrTransientConflict):
			h.logger.Warn("POST /reservations - Transient conflict: user_id=%s, locker_id=%s", userID, req.LockerID)
			w.Header().Set("Retry-After", "1")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTransientConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, locker_id=%s, error=%v",
				userID, req.LockerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, user_id=%s, locker_id=%s",
		result.ID, userID, result.LockerID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromReservation(result))
}
