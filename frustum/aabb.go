package frustum

import "cull-engine/math"

// AABB is an axis-aligned bounding box. Min must be <= Max component-wise.
type AABB struct {
	Min, Max math.Vec3
}

// NewAABB returns the box spanned by two corners given in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// Valid reports whether Min <= Max on every axis. Zero-size boxes are valid.
func (box AABB) Valid() bool {
	return box.Min.LessOrEqual(box.Max)
}

func (box AABB) Center() math.Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}

func (box AABB) Size() math.Vec3 {
	return box.Max.Sub(box.Min)
}

// ContainsXZ reports whether p lies inside the closed XZ footprint of the
// box. Y is ignored.
func (box AABB) ContainsXZ(p math.Vec3) bool {
	return p.X >= box.Min.X && p.X <= box.Max.X &&
		p.Z >= box.Min.Z && p.Z <= box.Max.Z
}

// PositiveVertex returns the corner furthest along n.
func (box AABB) PositiveVertex(n math.Vec3) math.Vec3 {
	p := box.Max
	if n.X < 0 {
		p.X = box.Min.X
	}
	if n.Y < 0 {
		p.Y = box.Min.Y
	}
	if n.Z < 0 {
		p.Z = box.Min.Z
	}
	return p
}
