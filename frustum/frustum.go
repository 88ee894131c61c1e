package frustum

import "cull-engine/math"

// Plane indices within Frustum.Planes.
const (
	Left = iota
	Right
	Bottom
	Top
	Near
	Far
)

var planeNames = [6]string{"left", "right", "bottom", "top", "near", "far"}

// PlaneName returns the lower-case name of plane index i.
func PlaneName(i int) string {
	return planeNames[i]
}

// Frustum holds the six clip planes of a view volume, normals pointing
// inwards.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FromViewProjection extracts the six normalized frustum planes from a
// view-projection matrix (Gribb/Hartmann).
//
// math.Mat4 uses row vectors (clip = v * vp), so clip component j is the dot
// product of the homogeneous point with column j. The plane rows of the
// usual column-vector formulation are therefore the columns of vp.
func FromViewProjection(vp math.Mat4) Frustum {
	c0, c1, c2, c3 := vp.Column(0), vp.Column(1), vp.Column(2), vp.Column(3)

	var f Frustum
	f.Planes[Left] = planeFromVec4(c3.Add(c0))
	f.Planes[Right] = planeFromVec4(c3.Sub(c0))
	f.Planes[Bottom] = planeFromVec4(c3.Add(c1))
	f.Planes[Top] = planeFromVec4(c3.Sub(c1))
	f.Planes[Near] = planeFromVec4(c3.Add(c2))
	f.Planes[Far] = planeFromVec4(c3.Sub(c2))
	return f
}

// FromMatrices composes view and proj (view first) and extracts the planes.
func FromMatrices(view, proj math.Mat4) Frustum {
	return FromViewProjection(view.Mul(proj))
}

// FromPlanes builds a frustum from arbitrary planes, normalizing each.
func FromPlanes(planes [6]Plane) Frustum {
	var f Frustum
	for i, p := range planes {
		f.Planes[i] = p.Normalized()
	}
	return f
}

// IntersectsAABB returns false only if box is completely outside one of the
// planes. A box near a frustum corner that is not fully behind any single
// plane is kept: the test may report false positives but never false
// negatives.
func (f *Frustum) IntersectsAABB(box AABB) bool {
	for i := range f.Planes {
		if ClassifyAABB(box, f.Planes[i]) == Outside {
			return false
		}
	}
	return true
}

// CullingPlane returns the index of the first plane box is outside of, or
// -1 if the box is kept.
func (f *Frustum) CullingPlane(box AABB) int {
	for i := range f.Planes {
		if ClassifyAABB(box, f.Planes[i]) == Outside {
			return i
		}
	}
	return -1
}

// ContainsPoint reports whether p is on the inner side of every plane.
func (f *Frustum) ContainsPoint(p math.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceTo(p) < 0 {
			return false
		}
	}
	return true
}
