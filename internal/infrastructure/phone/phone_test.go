package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize("(11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, "+5511987654321", got)

	got, err = Normalize("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Normalize(" 123 ")
	assert.Error(t, err)
	assert.Equal(t, "123", got)
}
