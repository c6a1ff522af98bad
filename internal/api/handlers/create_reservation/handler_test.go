package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/api/middleware"
	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/ledger"
	"github.com/MaximeC37/BikerBox-sub000/pkg/logger"
)

type mockLedger struct {
	createFunc func(ctx context.Context, req *ledger.CreateRequest) (*domain.Reservation, error)
}

func (m *mockLedger) Create(ctx context.Context, req *ledger.CreateRequest) (*domain.Reservation, error) {
	return m.createFunc(ctx, req)
}

const validBody = `{"lockerId":"paris-nord","size":"SMALL","start":"2025-07-01T10:00:00Z","end":"2025-07-01T14:00:00Z"}`

func serve(t *testing.T, l ReservationLedger, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(NewHandler(l, logger.NewNop()).Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	l := &mockLedger{createFunc: func(ctx context.Context, req *ledger.CreateRequest) (*domain.Reservation, error) {
		assert.Equal(t, "rider-1", req.RequesterID)
		assert.Equal(t, domain.SizeSmall, req.Size)
		assert.Equal(t, 4*time.Hour, req.Window.Duration())
		return &domain.Reservation{
			ID:          "res-1",
			LockerID:    req.LockerID,
			RequesterID: req.RequesterID,
			Size:        req.Size,
			Window:      req.Window,
			Status:      domain.StatusConfirmed,
			AccessCode:  "B042",
			Price:       6,
			CreatedAt:   start.Add(-time.Hour),
		}, nil
	}}

	rec := serve(t, l, "rider-1", validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handlers.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "B042", resp.AccessCode)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, 6.0, resp.Price)
	assert.Equal(t, "2025-07-01T10:00:00Z", resp.Start)
}

func TestHandle_RequestErrors(t *testing.T) {
	l := &mockLedger{createFunc: func(ctx context.Context, req *ledger.CreateRequest) (*domain.Reservation, error) {
		t.Fatal("ledger must not be called")
		return nil, nil
	}}

	tests := []struct {
		name   string
		userID string
		body   string
		status int
	}{
		{"no user", "", validBody, http.StatusUnauthorized},
		{"malformed json", "rider-1", `{"lockerId":`, http.StatusBadRequest},
		{"unknown size", "rider-1", `{"lockerId":"a","size":"HUGE","start":"2025-07-01T10:00:00Z","end":"2025-07-01T14:00:00Z"}`, http.StatusBadRequest},
		{"missing end", "rider-1", `{"lockerId":"a","size":"SMALL","start":"2025-07-01T10:00:00Z"}`, http.StatusBadRequest},
		{"bad time", "rider-1", `{"lockerId":"a","size":"SMALL","start":"tomorrow","end":"2025-07-01T14:00:00Z"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, l, tt.userID, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_LedgerErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ledger.ErrInvalidWindow, http.StatusBadRequest},
		{fmt.Errorf("%w: requesterID is required", ledger.ErrInvalidInput), http.StatusBadRequest},
		{ledger.ErrLockerNotFound, http.StatusNotFound},
		{ledger.ErrCapacityExhausted, http.StatusConflict},
		{ledger.ErrTransientConflict, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: db down", ledger.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			l := &mockLedger{createFunc: func(ctx context.Context, req *ledger.CreateRequest) (*domain.Reservation, error) {
				return nil, tt.err
			}}
			rec := serve(t, l, "rider-1", validBody)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
