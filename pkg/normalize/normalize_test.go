package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.Equal(t, "john.doe@example.com", Email("  John.DOE@Example.COM  "))
	assert.Equal(t, "", Email("   "))
}
