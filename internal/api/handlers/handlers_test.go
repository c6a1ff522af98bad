package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Size  string `json:"size" validate:"required,locker_size"`
	Start string `json:"start" validate:"required"`
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(&sample{Size: "SMALL", Start: "x"}))

	err := Validate(&sample{Size: "HUGE"})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "size", verrs[0].Field)
	assert.Equal(t, "start", verrs[1].Field)
}

func TestDecodeJSON(t *testing.T) {
	var s sample

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"size":"SMALL"}`))
	require.NoError(t, DecodeJSON(req, &s))
	assert.Equal(t, "SMALL", s.Size)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(req, &s))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &s), ErrEmptyBody)
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("2025-07-01T10:00:00+02:00", "2025-07-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w.Duration().Hours())

	_, err = ParseWindow("2025-07-01", "2025-07-01T12:00:00Z")
	assert.Error(t, err)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "занято")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"занято"}`, rec.Body.String())
}
