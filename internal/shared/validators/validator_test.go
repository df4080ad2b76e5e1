package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ReportSize int    `mapstructure:"report_size" validate:"min=1"`
	Name       string `validate:"required"`
}

func TestNew_UsesMapstructureNames(t *testing.T) {
	t.Parallel()

	err := New().Struct(&sample{})
	require.Error(t, err)

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, ve, 2)
	assert.Equal(t, "report_size", ve[0].Field())
	assert.Equal(t, "Name", ve[1].Field())
}
