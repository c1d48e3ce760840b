// Package shaders embeds the default GLSL sources. The vertex stage is chosen
// by application mode; every mode shares the fragment stage.
package shaders

import (
	"embed"
)

//go:embed *.vert *.frag
var FS embed.FS
