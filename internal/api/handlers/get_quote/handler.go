package get_quote

import (
	"errors"
	"net/http"
	"time"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/pricing"
)

const (
	msgValidationFailed = "запрос не прошел валидацию"
	msgInvalidTime      = "некорректный формат времени, ожидается RFC3339"
	msgInvalidWindow    = "окно должно заканчиваться после начала"
)

type Handler struct {
	pricer PriceCalculator
	logger Logger
}

func NewHandler(pricer PriceCalculator, logger Logger) *Handler {
	return &Handler{
		pricer: pricer,
		logger: logger,
	}
}

// Handle GET /api/v1/quote?size=...&start=...&end=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := QuoteRequest{
		Size:  query.Get("size"),
		Start: query.Get("start"),
		End:   query.Get("end"),
	}

	if err := handlers.Validate(&req); err != nil {
		var verrs handlers.ValidationErrors
		if errors.As(err, &verrs) {
			handlers.RespondValidationError(w, msgValidationFailed, verrs)
			return
		}
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	window, err := handlers.ParseWindow(req.Start, req.End)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	if !window.IsValid() {
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	size := domain.LockerSize(req.Size)
	days := pricing.BillableDays(window)

	handlers.RespondJSON(w, http.StatusOK, &QuoteResponse{
		Size:            size.String(),
		Start:           window.Start.Format(time.RFC3339),
		End:             window.End.Format(time.RFC3339),
		BillableDays:    days,
		BasePricePerDay: h.pricer.BasePricePerDay(size),
		DiscountRate:    pricing.DiscountRate(days),
		Price:           h.pricer.CalculatePrice(size, window),
	})
}
