package frustum

import "cull-engine/math"

// Plane is the half-space Normal·p + D >= 0. Normal points into the
// frustum and has unit length once normalized.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// NewPlane builds a normalized plane from raw coefficients a·x + b·y + c·z + d.
// A zero-length normal yields the zero plane, which contains every point.
func NewPlane(a, b, c, d float32) Plane {
	l := math.Vec3{X: a, Y: b, Z: c}.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: math.Vec3{X: a / l, Y: b / l, Z: c / l}, D: d / l}
}

func planeFromVec4(v math.Vec4) Plane {
	return NewPlane(v.X, v.Y, v.Z, v.W)
}

// DistanceTo returns the signed distance from pt to the plane. Positive is
// inside.
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Normalized rescales the plane so Normal has unit length.
func (p Plane) Normalized() Plane {
	return NewPlane(p.Normal.X, p.Normal.Y, p.Normal.Z, p.D)
}

// Classification is the result of testing a box against a single plane.
type Classification int

const (
	// Outside means the whole box is on the negative side of the plane.
	Outside Classification = iota
	// IntersectingOrInside means at least part of the box is on the
	// positive side.
	IntersectingOrInside
)

func (c Classification) String() string {
	if c == Outside {
		return "outside"
	}
	return "intersecting-or-inside"
}

// ClassifyAABB tests box against plane using only its positive vertex: if
// the corner furthest along the normal is behind the plane, every corner is.
func ClassifyAABB(box AABB, plane Plane) Classification {
	if plane.DistanceTo(box.PositiveVertex(plane.Normal)) < 0 {
		return Outside
	}
	return IntersectingOrInside
}
