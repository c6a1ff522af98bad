package identity

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accessCodePattern = regexp.MustCompile(`^[A-Z][0-9]{3}$`)

func TestNewAccessCode_Format(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 500; i++ {
		code := g.NewAccessCode()
		assert.Regexp(t, accessCodePattern, code)
	}
}

func TestNewReservationID_Unique(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		id := g.NewReservationID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
