package container

import (
	"testing"

	"github.com/soustack/recipes/internal/infrastructure/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	assert.NotNil(t, c.ValidateRecipesUseCase())
	assert.NotNil(t, c.FormatterFactory())
	assert.NotNil(t, c.RecipeFinder())
	assert.NotNil(t, c.Logger())
	assert.Equal(t, system.DefaultConfig(), c.Config())
	assert.Nil(t, c.strictValidator, "strict checks are off by default")
}

func TestNew_Strict(t *testing.T) {
	cfg := system.DefaultConfig()
	cfg.Strict = true

	c, err := New(Options{Config: cfg})
	require.NoError(t, err)
	assert.NotNil(t, c.strictValidator)
}
