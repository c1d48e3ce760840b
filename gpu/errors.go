package gpu

import "fmt"

// Error codes mirror the OpenGL glGetError values.
const (
	CodeInvalidEnum                 uint32 = 0x0500
	CodeInvalidValue                uint32 = 0x0501
	CodeInvalidOperation            uint32 = 0x0502
	CodeOutOfMemory                 uint32 = 0x0505
	CodeInvalidFramebufferOperation uint32 = 0x0506
)

// GraphicsAPIError wraps an error code reported by the graphics API.
type GraphicsAPIError struct {
	Code uint32
}

func (e *GraphicsAPIError) Error() string {
	return fmt.Sprintf("graphics api error %s (0x%04x)", codeName(e.Code), e.Code)
}

func codeName(code uint32) string {
	switch code {
	case CodeInvalidEnum:
		return "INVALID_ENUM"
	case CodeInvalidValue:
		return "INVALID_VALUE"
	case CodeInvalidOperation:
		return "INVALID_OPERATION"
	case CodeOutOfMemory:
		return "OUT_OF_MEMORY"
	case CodeInvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "UNKNOWN"
	}
}
