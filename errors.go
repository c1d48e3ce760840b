package gridworld

import (
	"errors"
	"fmt"

	"github.com/gekko3d/gridworld/gpu"
)

var ErrAssetReleased = errors.New("asset buffers already released")

// InvalidProgramError is returned when an asset is drawn with a program that
// is not a successfully linked program.
type InvalidProgramError struct {
	Program gpu.Program
	Asset   AssetType
}

func (e *InvalidProgramError) Error() string {
	return fmt.Sprintf("cannot draw %s: program %d is not a linked program", e.Asset, e.Program)
}

type ShaderCompileError struct {
	Stage gpu.ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// UniformNotFoundError means the linked program does not expose a name the
// renderer writes to every frame.
type UniformNotFoundError struct {
	Name      string
	Attribute bool
}

func (e *UniformNotFoundError) Error() string {
	kind := "uniform"
	if e.Attribute {
		kind = "attribute"
	}
	return fmt.Sprintf("program has no active %s %q", kind, e.Name)
}
