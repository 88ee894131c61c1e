// Package overlay builds debug line geometry for the culling view: quadtree
// leaf outlines coloured by the last query and markers for visible objects.
package overlay

import (
	"cull-engine/frustum"
	"cull-engine/math"
	"cull-engine/quadtree"
	"cull-engine/scene"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorKept    = Color{0.2, 0.9, 0.3, 1}
	ColorCulled  = Color{0.35, 0.35, 0.35, 1}
	ColorVisible = Color{1, 0.8, 0.1, 1}
	ColorBounds  = Color{0.8, 0.15, 0.15, 1}
)

// Vertex is laid out for direct upload: position at offset 0, colour at
// offset 12.
type Vertex struct {
	Position math.Vec3
	Color    Color
}

// Batch is a list of line segments, two vertices each.
type Batch struct {
	Vertices []Vertex
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.Vertices = b.Vertices[:0]
}

// Lines returns the number of segments in the batch.
func (b *Batch) Lines() int {
	return len(b.Vertices) / 2
}

func (b *Batch) Line(from, to math.Vec3, c Color) {
	b.Vertices = append(b.Vertices,
		Vertex{Position: from, Color: c},
		Vertex{Position: to, Color: c},
	)
}

// Rect outlines the XZ footprint of box at height y.
func (b *Batch) Rect(box frustum.AABB, y float32, c Color) {
	p0 := math.Vec3{X: box.Min.X, Y: y, Z: box.Min.Z}
	p1 := math.Vec3{X: box.Max.X, Y: y, Z: box.Min.Z}
	p2 := math.Vec3{X: box.Max.X, Y: y, Z: box.Max.Z}
	p3 := math.Vec3{X: box.Min.X, Y: y, Z: box.Max.Z}

	b.Line(p0, p1, c)
	b.Line(p1, p2, c)
	b.Line(p2, p3, c)
	b.Line(p3, p0, c)
}

// Marker draws a three-axis cross of the given half-size centred on p.
func (b *Batch) Marker(p math.Vec3, size float32, c Color) {
	for _, axis := range [3]math.Vec3{math.Vec3Right, math.Vec3Up, math.Vec3Front} {
		d := axis.Mul(size)
		b.Line(p.Sub(d), p.Add(d), c)
	}
}

// Leaves outlines every leaf of tree on its floor, in ColorKept when the
// leaf survives f and ColorCulled otherwise. It returns the number of kept
// leaves.
func (b *Batch) Leaves(tree *quadtree.Tree, f *frustum.Frustum) int {
	var kept int
	for _, l := range tree.Leaves() {
		box := l.Bounds()
		c := ColorCulled
		if f.IntersectsAABB(box) {
			c = ColorKept
			kept++
		}
		b.Rect(box, box.Min.Y, c)
	}
	b.Rect(tree.Bounds(), tree.Bounds().Min.Y, ColorBounds)
	return kept
}

// Objects marks every registry object listed in visible. Unknown indices
// are skipped.
func (b *Batch) Objects(r *scene.Registry, visible []int, size float32) {
	for _, i := range visible {
		if o, ok := r.Get(i); ok {
			b.Marker(o.Position, size, ColorVisible)
		}
	}
}
