package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, InvalidID("game", "x").Status)
	assert.Equal(t, http.StatusNotFound, NotFound("Game", nil).Status)
	assert.Equal(t, http.StatusConflict, Conflict("dup", nil).Status)
	assert.Equal(t, http.StatusTooManyRequests, TooManyRequests("slow down").Status)

	internal := Internal("Failed to list games", fmt.Errorf("connection refused"))
	assert.Equal(t, "Failed to list games: connection refused", internal.Message)
}

func TestIsSeesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("User", nil))
	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "CONFLICT"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
}
