package camera

import (
	stdmath "math"

	"cull-engine/frustum"
	"cull-engine/math"
)

// DirectionalLight is a light at infinity shining along Direction. Its
// shadow volume is an orthographic box of half-size Extent centred on a
// focus point, usually the viewer's position.
type DirectionalLight struct {
	Direction math.Vec3 `yaml:"direction"`
	Extent    float32   `yaml:"extent"`
}

// ViewProjection returns the light's orthographic view * projection around
// focus. The eye sits Extent back along Direction and the depth range
// covers 2*Extent either side of the focus. ok is false for a zero
// direction.
func (l DirectionalLight) ViewProjection(focus math.Vec3) (vp math.Mat4, ok bool) {
	dir := l.Direction.Normalize()
	if dir.LengthSqr() < 0.001 {
		return math.Mat4Identity(), false
	}

	eye := focus.Sub(dir.Mul(l.Extent))

	up := math.Vec3Up
	if stdmath.Abs(float64(dir.Dot(math.Vec3Up))) > 0.999 {
		up = math.Vec3Front
	}

	view := math.Mat4LookAt(eye, eye.Add(dir), up)
	proj := math.Mat4Orthographic(
		-l.Extent, l.Extent, -l.Extent, l.Extent,
		-l.Extent, l.Extent*3,
	)
	return view.Mul(proj), true
}

// Frustum returns the shadow volume around focus.
func (l DirectionalLight) Frustum(focus math.Vec3) (frustum.Frustum, bool) {
	vp, ok := l.ViewProjection(focus)
	if !ok {
		return frustum.Frustum{}, false
	}
	return frustum.FromViewProjection(vp), true
}
