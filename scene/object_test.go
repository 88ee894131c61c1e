package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cull-engine/frustum"
	"cull-engine/math"
	"cull-engine/quadtree"
)

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()

	a := r.Add("a", math.NewVec3(1, 2, 3))
	b := r.Add("b", math.NewVec3(-4, 0, 9))

	require.Equal(t, 0, a.Index)
	require.Equal(t, 1, b.Index)
	require.Equal(t, 2, r.Len())
	require.Equal(t, []Object{a, b}, r.Objects())

	got, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, b, got)

	_, ok = r.Get(2)
	require.False(t, ok)
	_, ok = r.Get(-1)
	require.False(t, ok)

	require.Equal(t, []quadtree.Item{
		{Index: 0, Position: math.NewVec3(1, 2, 3)},
		{Index: 1, Position: math.NewVec3(-4, 0, 9)},
	}, r.Items())
}

func TestRegistryBounds(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Bounds()
	require.False(t, ok)

	r.Add("", math.NewVec3(1, 2, 3))
	r.Add("", math.NewVec3(-4, 0, 9))
	r.Add("", math.NewVec3(0, 7, -1))

	box, ok := r.Bounds()
	require.True(t, ok)
	require.Equal(t, frustum.AABB{
		Min: math.NewVec3(-4, 0, -1),
		Max: math.NewVec3(1, 7, 9),
	}, box)
}

func TestRegistryScatter(t *testing.T) {
	r := NewRegistry()
	r.Scatter(frustum.AABB{Min: math.NewVec3(0, 1, 0), Max: math.NewVec3(40, 1, 20)}, 4, 2)

	require.Equal(t, 8, r.Len())

	first, _ := r.Get(0)
	require.Equal(t, "grid_0_0", first.Name)
	require.Equal(t, math.NewVec3(5, 1, 5), first.Position)

	last, _ := r.Get(7)
	require.Equal(t, "grid_3_1", last.Name)
	require.Equal(t, math.NewVec3(35, 1, 15), last.Position)

	r.Scatter(frustum.AABB{}, 0, 3)
	require.Equal(t, 8, r.Len())
}

func TestScatterPopulatesQuadtree(t *testing.T) {
	bounds := frustum.AABB{Min: math.NewVec3(-50, 0, -50), Max: math.NewVec3(50, 0, 50)}

	r := NewRegistry()
	r.Scatter(bounds, 10, 10)

	tree, unassigned, err := quadtree.Populate(bounds, 3, r.Items())
	require.NoError(t, err)
	require.Empty(t, unassigned)

	// Cell centres never fall on a split line.
	s := tree.Stats()
	require.Equal(t, 100, s.Assigned)
	require.Equal(t, 100, s.Entries)
}
