// Package camera holds the viewpoints the culler queries with: a yaw/pitch
// perspective camera driven by a free-look controller, and a directional
// light whose orthographic shadow volume is culled like a second view.
package camera

import (
	stdmath "math"

	"cull-engine/frustum"
	"cull-engine/math"
)

// Pitch is clamped to this many radians either side of the horizon.
const MaxPitch = 1.5

// Projection describes a perspective projection. FOV is the vertical field
// of view in radians.
type Projection struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultProjection returns a 90 degree projection with a 0.1..1000 depth
// range.
func DefaultProjection() Projection {
	return Projection{
		FOV:    stdmath.Pi / 2,
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    1000,
	}
}

func (p Projection) Matrix() math.Mat4 {
	return math.Mat4Perspective(p.FOV, p.Aspect, p.Near, p.Far)
}

// Camera is a perspective camera oriented by yaw around Up and pitch above
// the horizon. At zero yaw and pitch it looks down +Z.
type Camera struct {
	Position   math.Vec3
	Yaw        float32
	Pitch      float32
	Up         math.Vec3
	Projection Projection
}

func NewCamera(position math.Vec3, projection Projection) *Camera {
	return &Camera{
		Position:   position,
		Up:         math.Vec3Up,
		Projection: projection,
	}
}

// UpdateAspectRatio sets the aspect from a framebuffer size. Zero heights
// are ignored.
func (c *Camera) UpdateAspectRatio(width, height int) {
	if height > 0 {
		c.Projection.Aspect = float32(width) / float32(height)
	}
}

// Rotate adds to yaw and pitch, clamping pitch to MaxPitch.
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch = min(max(c.Pitch+deltaPitch, -MaxPitch), MaxPitch)
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math.Vec3 {
	sinYaw, cosYaw := stdmath.Sincos(float64(c.Yaw))
	sinPitch, cosPitch := stdmath.Sincos(float64(c.Pitch))
	return math.Vec3{
		X: float32(cosPitch * sinYaw),
		Y: float32(sinPitch),
		Z: float32(cosPitch * cosYaw),
	}
}

// Right returns the horizontal unit vector to the right of the view
// direction.
func (c *Camera) Right() math.Vec3 {
	sinYaw, cosYaw := stdmath.Sincos(float64(c.Yaw))
	return math.Vec3{X: float32(-cosYaw), Z: float32(sinYaw)}
}

// LocalUp returns the camera's own up vector, tilted with pitch.
func (c *Camera) LocalUp() math.Vec3 {
	return c.Right().Cross(c.Forward()).Normalize()
}

// Target returns the point one unit in front of the camera.
func (c *Camera) Target() math.Vec3 {
	return c.Position.Add(c.Forward())
}

func (c *Camera) View() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Target(), c.Up)
}

func (c *Camera) Proj() math.Mat4 {
	return c.Projection.Matrix()
}

// ViewProjection returns view * projection; points transform as v * VP.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.View().Mul(c.Proj())
}

func (c *Camera) Frustum() frustum.Frustum {
	return frustum.FromViewProjection(c.ViewProjection())
}
