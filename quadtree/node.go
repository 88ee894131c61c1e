package quadtree

import (
	"cull-engine/frustum"
	"cull-engine/math"
)

// Quadrant order of an internal node's children. West is low X, north is
// low Z.
const (
	NorthWest = iota
	NorthEast
	SouthWest
	SouthEast
)

var quadrantNames = [4]string{"NW", "NE", "SW", "SE"}

// QuadrantName returns the short compass name of quadrant q.
func QuadrantName(q int) string {
	return quadrantNames[q]
}

// Node is one quadrant of space at a given subdivision level. It is either
// a *Leaf or an *Internal; no other implementations exist.
type Node interface {
	// Bounds returns the node's box. Its XZ footprint is a quadrant of the
	// parent's, its Y extent is the tree's.
	Bounds() frustum.AABB

	// Level returns the number of subdivisions below the node; 0 for leaves.
	Level() int

	node()
}

// Leaf is a node at maximum depth. It stores the indices of every object
// whose position lies inside its closed XZ footprint.
type Leaf struct {
	bounds  frustum.AABB
	objects []int
}

func (l *Leaf) Bounds() frustum.AABB { return l.bounds }
func (l *Leaf) Level() int           { return 0 }
func (*Leaf) node()                  {}

// Objects returns the leaf's object indices in insertion order. The slice is
// owned by the leaf and must not be modified.
func (l *Leaf) Objects() []int { return l.objects }

// Internal is a node with exactly four children.
type Internal struct {
	bounds   frustum.AABB
	level    int
	children [4]Node
}

func (n *Internal) Bounds() frustum.AABB { return n.bounds }
func (n *Internal) Level() int           { return n.level }
func (*Internal) node()                  {}

// Child returns the child in quadrant q (NorthWest..SouthEast).
func (n *Internal) Child(q int) Node { return n.children[q] }

// Children returns the four children in quadrant order.
func (n *Internal) Children() [4]Node { return n.children }

func newNode(bounds frustum.AABB, level int) Node {
	if level == 0 {
		return &Leaf{bounds: bounds}
	}

	n := &Internal{bounds: bounds, level: level}
	for q, b := range splitXZ(bounds) {
		n.children[q] = newNode(b, level-1)
	}
	return n
}

// splitXZ bisects b along X and Z at its midpoint. The Y extent is kept.
func splitXZ(b frustum.AABB) [4]frustum.AABB {
	mid := b.Center()
	return [4]frustum.AABB{
		NorthWest: {
			Min: math.Vec3{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
			Max: math.Vec3{X: mid.X, Y: b.Max.Y, Z: mid.Z},
		},
		NorthEast: {
			Min: math.Vec3{X: mid.X, Y: b.Min.Y, Z: b.Min.Z},
			Max: math.Vec3{X: b.Max.X, Y: b.Max.Y, Z: mid.Z},
		},
		SouthWest: {
			Min: math.Vec3{X: b.Min.X, Y: b.Min.Y, Z: mid.Z},
			Max: math.Vec3{X: mid.X, Y: b.Max.Y, Z: b.Max.Z},
		},
		SouthEast: {
			Min: math.Vec3{X: mid.X, Y: b.Min.Y, Z: mid.Z},
			Max: math.Vec3{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		},
	}
}

// insert appends index to every leaf under n whose footprint contains p.
// A point on a split line descends into all children it touches.
func insert(n Node, index int, p math.Vec3) {
	switch n := n.(type) {
	case *Leaf:
		n.objects = append(n.objects, index)
	case *Internal:
		for _, c := range n.children {
			if c.Bounds().ContainsXZ(p) {
				insert(c, index, p)
			}
		}
	}
}

func setVerticalExtent(n Node, minY, maxY float32) {
	switch n := n.(type) {
	case *Leaf:
		n.bounds.Min.Y, n.bounds.Max.Y = minY, maxY
	case *Internal:
		n.bounds.Min.Y, n.bounds.Max.Y = minY, maxY
		for _, c := range n.children {
			setVerticalExtent(c, minY, maxY)
		}
	}
}
