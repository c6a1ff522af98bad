package get_availability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/infra/storage/memory"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/pricing"
	getAvailability "github.com/MaximeC37/BikerBox-sub000/internal/usecase/get_availability"
	"github.com/MaximeC37/BikerBox-sub000/pkg/logger"
)

func newRouter() *mux.Router {
	catalog := memory.NewLockerCatalog(&domain.Locker{
		ID:       "paris-nord",
		Name:     "Gare du Nord",
		Capacity: map[domain.LockerSize]int{domain.SizeSmall: 2, domain.SizeMedium: 1},
	})
	uc := getAvailability.NewUseCase(catalog, memory.NewReservationStore(), pricing.NewCalculator(nil), logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/lockers/{lockerId}/availability", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)
	return r
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := get(newRouter(), "/lockers/paris-nord/availability?start=2025-07-01T10:00:00Z&end=2025-07-08T10:00:00Z")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "paris-nord", resp.Locker.ID)
	require.Len(t, resp.Sizes, 2)
	assert.Equal(t, SizeAvailability{Size: "SMALL", Total: 2, Remaining: 2, Available: true, Price: 33.6}, resp.Sizes[0])
	assert.Equal(t, SizeAvailability{Size: "MEDIUM", Total: 1, Remaining: 1, Available: true, Price: 56}, resp.Sizes[1])
}

func TestHandle_Errors(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusBadRequest, get(r, "/lockers/paris-nord/availability").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/lockers/paris-nord/availability?start=now&end=later").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/lockers/lyon/availability?start=2025-07-01T10:00:00Z&end=2025-07-02T10:00:00Z").Code)
}
