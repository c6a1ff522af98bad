package get_lockers

import (
	"errors"
	"net/http"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/lockers"
)

const (
	msgInvalidSize = "размер должен быть одним из SMALL, MEDIUM, LARGE"
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

// Handle GET /api/v1/lockers?size=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var sizePtr *domain.LockerSize
	if size := r.URL.Query().Get("size"); size != "" {
		s := domain.LockerSize(size)
		sizePtr = &s
	}

	result, err := h.service.List(r.Context(), sizePtr)
	if err != nil {
		if errors.Is(err, lockers.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidSize)
			return
		}
		h.logger.Error("GET /lockers - Failed to list lockers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*handlers.LockerResponse, 0, len(result))
	for _, l := range result {
		response = append(response, handlers.FromLocker(l))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
