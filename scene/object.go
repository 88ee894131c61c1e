// Package scene holds the objects a quadtree is populated with and loads
// them from glTF files, JSON snapshots or a generated lattice.
package scene

import (
	"fmt"

	"cull-engine/frustum"
	"cull-engine/math"
	"cull-engine/quadtree"
)

// ErrTypeLoad is the type of errors returned when a scene source cannot be
// read or decoded.
const ErrTypeLoad = "scene_load"

// Object is a cullable point in the world. Index is the value culling
// queries report.
type Object struct {
	Index    int       `json:"index"`
	Name     string    `json:"name,omitempty"`
	Position math.Vec3 `json:"position"`
}

// Registry is an append-only list of objects where each object's index is
// its position in the list.
type Registry struct {
	objects []Object
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends an object and returns it with its assigned index.
func (r *Registry) Add(name string, position math.Vec3) Object {
	o := Object{
		Index:    len(r.objects),
		Name:     name,
		Position: position,
	}
	r.objects = append(r.objects, o)
	return o
}

func (r *Registry) Len() int {
	return len(r.objects)
}

// Objects returns the registry's objects. The slice must not be modified.
func (r *Registry) Objects() []Object {
	return r.objects
}

// Get returns the object with the given index.
func (r *Registry) Get(index int) (Object, bool) {
	if index < 0 || index >= len(r.objects) {
		return Object{}, false
	}
	return r.objects[index], true
}

// Items returns the objects as quadtree items.
func (r *Registry) Items() []quadtree.Item {
	items := make([]quadtree.Item, len(r.objects))
	for i, o := range r.objects {
		items[i] = quadtree.Item{Index: o.Index, Position: o.Position}
	}
	return items
}

// Bounds returns the smallest box enclosing every object, and false when
// the registry is empty.
func (r *Registry) Bounds() (frustum.AABB, bool) {
	if len(r.objects) == 0 {
		return frustum.AABB{}, false
	}

	box := frustum.AABB{Min: r.objects[0].Position, Max: r.objects[0].Position}
	for _, o := range r.objects[1:] {
		box.Min = box.Min.Min(o.Position)
		box.Max = box.Max.Max(o.Position)
	}
	return box, true
}

// Scatter adds columns*rows objects at the cell centres of a lattice
// spanning the XZ footprint of bounds, at height bounds.Min.Y. Objects are
// added row by row, west to east.
func (r *Registry) Scatter(bounds frustum.AABB, columns, rows int) {
	if columns <= 0 || rows <= 0 {
		return
	}

	size := bounds.Size()
	cellX := size.X / float32(columns)
	cellZ := size.Z / float32(rows)

	for row := range rows {
		for col := range columns {
			r.Add(fmt.Sprintf("grid_%d_%d", col, row), math.Vec3{
				X: bounds.Min.X + (float32(col)+0.5)*cellX,
				Y: bounds.Min.Y,
				Z: bounds.Min.Z + (float32(row)+0.5)*cellZ,
			})
		}
	}
}
