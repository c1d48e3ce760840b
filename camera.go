package gridworld

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// InputDirection is the discrete movement command handed in once per frame.
// Up and Down move along z, Left and Right strafe along x.
type InputDirection int

const (
	NoDirection InputDirection = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d InputDirection) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

const CameraStep float32 = 0.1

var worldUp = mgl32.Vec3{0, 1, 0}

type Camera struct {
	position        mgl32.Vec3
	horizontalAngle float32
	verticalAngle   float32
}

func NewCamera() *Camera {
	return &Camera{
		position: mgl32.Vec3{-3.0, 1.5, 0.0},
	}
}

func NewCameraAt(position mgl32.Vec3) *Camera {
	return &Camera{position: position}
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Angles returns the horizontal and vertical angle in radians.
func (c *Camera) Angles() (horizontal, vertical float32) {
	return c.horizontalAngle, c.verticalAngle
}

func (c *Camera) SetAngles(horizontal, vertical float32) {
	c.horizontalAngle = horizontal
	c.verticalAngle = vertical
}

// Forward is the unit look direction derived from the current angles.
func (c *Camera) Forward() mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Cos(c.verticalAngle) * math32.Sin(c.horizontalAngle),
		math32.Sin(c.verticalAngle),
		math32.Cos(c.verticalAngle) * math32.Cos(c.horizontalAngle),
	}
}

func (c *Camera) Target() mgl32.Vec3 {
	return c.position.Add(c.Forward())
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.Target(), worldUp)
}

// UpdateCameraPosition moves the eye one step in direction and returns the
// new view matrix. The mouse coordinates are accepted for look-around but do
// not change the angles yet.
func (c *Camera) UpdateCameraPosition(direction InputDirection, mouseX, mouseY int) mgl32.Mat4 {
	switch direction {
	case DirectionUp:
		c.position[2] += CameraStep
	case DirectionDown:
		c.position[2] -= CameraStep
	case DirectionLeft:
		c.position[0] += CameraStep
	case DirectionRight:
		c.position[0] -= CameraStep
	}

	return c.ViewMatrix()
}
