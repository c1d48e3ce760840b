package gridworld

import (
	"fmt"
	"strings"
)

// ApplicationMode selects the vertex stage the world is rendered with.
type ApplicationMode int

const (
	ModeTransform ApplicationMode = iota
	ModeRotate
	ModeScale
)

const FragmentShaderFile = "fragment.frag"

func (m ApplicationMode) String() string {
	switch m {
	case ModeTransform:
		return "transform"
	case ModeRotate:
		return "rotate"
	case ModeScale:
		return "scale"
	default:
		return fmt.Sprintf("ApplicationMode(%d)", int(m))
	}
}

// VertexShaderFile names the vertex stage source used in this mode.
func (m ApplicationMode) VertexShaderFile() string {
	switch m {
	case ModeRotate:
		return "rotate.vert"
	case ModeScale:
		return "scale.vert"
	default:
		return "translate.vert"
	}
}

func ParseApplicationMode(s string) (ApplicationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "transform", "translate":
		return ModeTransform, nil
	case "rotate":
		return ModeRotate, nil
	case "scale":
		return ModeScale, nil
	}
	return ModeTransform, fmt.Errorf("unknown application mode %q", s)
}
