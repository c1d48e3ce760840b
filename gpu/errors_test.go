package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphicsAPIError(t *testing.T) {
	assert.EqualError(t, &GraphicsAPIError{Code: CodeInvalidOperation}, "graphics api error INVALID_OPERATION (0x0502)")
	assert.EqualError(t, &GraphicsAPIError{Code: 0x9999}, "graphics api error UNKNOWN (0x9999)")
}

func TestShaderStageString(t *testing.T) {
	assert.Equal(t, "vertex", VertexStage.String())
	assert.Equal(t, "fragment", FragmentStage.String())
}
