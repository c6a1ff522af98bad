package get_quote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximeC37/BikerBox-sub000/internal/service/pricing"
	"github.com/MaximeC37/BikerBox-sub000/pkg/logger"
)

func quote(url string) *httptest.ResponseRecorder {
	h := NewHandler(pricing.NewCalculator(nil), logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Quote(t *testing.T) {
	rec := quote("/api/v1/quote?size=LARGE&start=2025-07-01T00:00:00Z&end=2025-07-31T00:00:00Z")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.BillableDays)
	assert.Equal(t, 14.0, resp.BasePricePerDay)
	assert.Equal(t, 0.3, resp.DiscountRate)
	assert.Equal(t, 294.0, resp.Price)
}

func TestHandle_BadRequests(t *testing.T) {
	urls := []string{
		"/api/v1/quote?start=2025-07-01T00:00:00Z&end=2025-07-02T00:00:00Z",
		"/api/v1/quote?size=HUGE&start=2025-07-01T00:00:00Z&end=2025-07-02T00:00:00Z",
		"/api/v1/quote?size=SMALL&start=2025-07-01&end=2025-07-02",
		"/api/v1/quote?size=SMALL&start=2025-07-02T00:00:00Z&end=2025-07-01T00:00:00Z",
	}
	for _, url := range urls {
		assert.Equal(t, http.StatusBadRequest, quote(url).Code, url)
	}
}
