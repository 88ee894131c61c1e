// Package quadtree implements a static quadtree over the XZ ground plane used
// to cull objects against a view frustum.
//
// A tree is built once to a fixed depth, populated with (index, position)
// pairs, and is read-only afterwards. Any number of goroutines may query a
// populated tree concurrently as long as each passes its own result buffer.
package quadtree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"cull-engine/frustum"
	"cull-engine/math"
)

// MaxDepth is the deepest tree Build accepts. A tree of depth d has 4^d
// leaves.
const MaxDepth = 12

// Error types returned by this package.
const (
	ErrTypeInvalidDepth  = "quadtree_invalid_depth"
	ErrTypeInvalidBounds = "quadtree_invalid_bounds"
	ErrTypeOutOfBounds   = "quadtree_out_of_bounds"
)

// Item is an object known at build time.
type Item struct {
	Index    int
	Position math.Vec3
}

// Tree is a static quadtree. The zero value is not usable; call Build or
// Populate.
type Tree struct {
	root     Node
	maxLevel int
	assigned int
}

// Build subdivides bounds maxLevel times. Depth 0 yields a single leaf and
// zero-area bounds yield a tree of zero-area nodes; both are valid.
func Build(bounds frustum.AABB, maxLevel int) (*Tree, error) {
	if maxLevel < 0 || maxLevel > MaxDepth {
		return nil, errors.New("quadtree depth out of range").
			WithType(ErrTypeInvalidDepth).
			WithTag("depth", maxLevel).
			WithTag("max_depth", MaxDepth)
	}
	if !bounds.Valid() {
		return nil, errors.New("quadtree bounds min is greater than max").
			WithType(ErrTypeInvalidBounds).
			WithTag("min", bounds.Min).
			WithTag("max", bounds.Max)
	}

	return &Tree{
		root:     newNode(bounds, maxLevel),
		maxLevel: maxLevel,
	}, nil
}

// Populate builds a tree and inserts every item. Items outside bounds are
// skipped and their indices returned, in input order, as unassigned.
func Populate(bounds frustum.AABB, maxLevel int, items []Item) (*Tree, []int, error) {
	for _, it := range items {
		if bounds.ContainsXZ(it.Position) {
			bounds.Min.Y = min(bounds.Min.Y, it.Position.Y)
			bounds.Max.Y = max(bounds.Max.Y, it.Position.Y)
		}
	}

	t, err := Build(bounds, maxLevel)
	if err != nil {
		return nil, nil, err
	}

	unassigned := t.InsertAll(items)

	logs.WithTag("depth", maxLevel).
		WithTag("leaves", t.Stats().Leaves).
		WithTag("assigned", t.assigned).
		WithTag("unassigned", len(unassigned)).
		Info("quadtree populated")

	return t, unassigned, nil
}

// Insert assigns the object to every leaf whose closed XZ footprint contains
// position. It returns an ErrTypeOutOfBounds error, and inserts nothing, when
// position is outside the root. Insert must not be called once the tree is
// being queried.
//
// The vertical extent of every node grows to include position.Y so that the
// box test stays conservative for objects above or below the ground plane.
func (t *Tree) Insert(index int, position math.Vec3) error {
	root := t.root.Bounds()
	if !root.ContainsXZ(position) {
		return errors.New("object is outside the quadtree bounds").
			WithType(ErrTypeOutOfBounds).
			WithTag("index", index).
			WithTag("position", position).
			WithTag("min", root.Min).
			WithTag("max", root.Max)
	}

	if position.Y < root.Min.Y || position.Y > root.Max.Y {
		setVerticalExtent(t.root, min(root.Min.Y, position.Y), max(root.Max.Y, position.Y))
	}

	insert(t.root, index, position)
	t.assigned++
	return nil
}

// InsertAll inserts every item and returns the indices of those outside the
// root bounds. Each of them is logged as a warning.
func (t *Tree) InsertAll(items []Item) []int {
	var unassigned []int
	for _, it := range items {
		if err := t.Insert(it.Index, it.Position); err != nil {
			logs.Warn(err)
			unassigned = append(unassigned, it.Index)
		}
	}
	return unassigned
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.root
}

// Bounds returns the root bounds.
func (t *Tree) Bounds() frustum.AABB {
	return t.root.Bounds()
}

// Depth returns the number of subdivisions the tree was built with.
func (t *Tree) Depth() int {
	return t.maxLevel
}

// Walk visits nodes depth-first in quadrant order. Returning false from fn
// skips the node's children.
func (t *Tree) Walk(fn func(Node) bool) {
	walk(t.root, fn)
}

func walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	if in, ok := n.(*Internal); ok {
		for _, c := range in.children {
			walk(c, fn)
		}
	}
}

// Leaves returns every leaf in traversal order.
func (t *Tree) Leaves() []*Leaf {
	leaves := make([]*Leaf, 0, leafCount(t.maxLevel))
	t.Walk(func(n Node) bool {
		if l, ok := n.(*Leaf); ok {
			leaves = append(leaves, l)
		}
		return true
	})
	return leaves
}

func leafCount(depth int) int {
	return 1 << (2 * depth)
}

// Stats describes the shape and occupancy of a tree.
type Stats struct {
	Nodes          int
	Leaves         int
	Assigned       int // objects accepted by Insert
	Entries        int // sum of leaf list lengths; exceeds Assigned for boundary objects
	MaxLeafObjects int
}

func (t *Tree) Stats() Stats {
	s := Stats{Assigned: t.assigned}
	t.Walk(func(n Node) bool {
		s.Nodes++
		if l, ok := n.(*Leaf); ok {
			s.Leaves++
			s.Entries += len(l.objects)
			s.MaxLeafObjects = max(s.MaxLeafObjects, len(l.objects))
		}
		return true
	})
	return s
}
