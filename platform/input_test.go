package platform

import (
	"testing"

	"github.com/gekko3d/gridworld"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func held(keys ...glfw.Key) func(glfw.Key) bool {
	return func(k glfw.Key) bool {
		for _, h := range keys {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestDirectionFromKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []glfw.Key
		want gridworld.InputDirection
	}{
		{"none", nil, gridworld.NoDirection},
		{"w", []glfw.Key{glfw.KeyW}, gridworld.DirectionUp},
		{"arrow up", []glfw.Key{glfw.KeyUp}, gridworld.DirectionUp},
		{"s", []glfw.Key{glfw.KeyS}, gridworld.DirectionDown},
		{"arrow left", []glfw.Key{glfw.KeyLeft}, gridworld.DirectionLeft},
		{"d", []glfw.Key{glfw.KeyD}, gridworld.DirectionRight},
		{"up beats right", []glfw.Key{glfw.KeyD, glfw.KeyW}, gridworld.DirectionUp},
		{"unbound key", []glfw.Key{glfw.KeyQ}, gridworld.NoDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, directionFromKeys(held(tt.keys...)))
		})
	}
}
