package get_locker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/infra/storage/memory"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/lockers"
	"github.com/MaximeC37/BikerBox-sub000/pkg/logger"
)

func TestHandle(t *testing.T) {
	catalog := memory.NewLockerCatalog(&domain.Locker{
		ID:          "paris-nord",
		Name:        "Gare du Nord",
		Coordinates: domain.Coordinates{Latitude: 48.8809, Longitude: 2.3553},
		Capacity:    map[domain.LockerSize]int{domain.SizeSmall: 4, domain.SizeLarge: 1},
	})
	r := mux.NewRouter()
	r.HandleFunc("/lockers/{lockerId}", NewHandler(lockers.NewService(catalog, logger.NewNop()), logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lockers/paris-nord", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.LockerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Gare du Nord", resp.Name)
	assert.Equal(t, 48.8809, resp.Latitude)
	assert.Equal(t, map[string]int{"SMALL": 4, "LARGE": 1}, resp.Capacity)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lockers/nice", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
