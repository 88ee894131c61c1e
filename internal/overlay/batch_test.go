package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cull-engine/frustum"
	"cull-engine/math"
	"cull-engine/quadtree"
	"cull-engine/scene"
)

func TestBatchRect(t *testing.T) {
	var b Batch
	b.Rect(frustum.AABB{Min: math.NewVec3(0, 3, 0), Max: math.NewVec3(4, 9, 2)}, 1, ColorKept)

	require.Equal(t, 4, b.Lines())
	for i, v := range b.Vertices {
		require.Equal(t, float32(1), v.Position.Y, "vertex %d", i)
		require.Equal(t, ColorKept, v.Color)
	}

	// Consecutive segments share endpoints and the outline closes.
	for i := 1; i < len(b.Vertices)-1; i += 2 {
		require.Equal(t, b.Vertices[i].Position, b.Vertices[i+1].Position)
	}
	require.Equal(t, b.Vertices[0].Position, b.Vertices[len(b.Vertices)-1].Position)

	b.Reset()
	require.Zero(t, b.Lines())
}

func TestBatchMarker(t *testing.T) {
	var b Batch
	b.Marker(math.NewVec3(1, 2, 3), 0.5, ColorVisible)

	require.Equal(t, 3, b.Lines())
	require.Equal(t, math.NewVec3(0.5, 2, 3), b.Vertices[0].Position)
	require.Equal(t, math.NewVec3(1.5, 2, 3), b.Vertices[1].Position)
	require.Equal(t, math.NewVec3(1, 2, 3.5), b.Vertices[5].Position)
}

func TestBatchLeaves(t *testing.T) {
	tree, err := quadtree.Build(frustum.AABB{Min: math.NewVec3(-10, 0, -10), Max: math.NewVec3(10, 0, 10)}, 1)
	require.NoError(t, err)

	view := math.Mat4LookAt(math.NewVec3(5, 50, -5), math.NewVec3(5, 0, -5), math.Vec3Back)
	proj := math.Mat4Orthographic(-4, 4, -4, 4, 1, 100)
	f := frustum.FromMatrices(view, proj)

	var b Batch
	kept := b.Leaves(tree, &f)

	require.Equal(t, 1, kept)
	require.Equal(t, 5*4, b.Lines())

	var keptLines, boundsLines int
	for i := 0; i < len(b.Vertices); i += 2 {
		switch b.Vertices[i].Color {
		case ColorKept:
			keptLines++
		case ColorBounds:
			boundsLines++
		}
	}
	require.Equal(t, 4, keptLines)
	require.Equal(t, 4, boundsLines)
}

func TestBatchObjects(t *testing.T) {
	r := scene.NewRegistry()
	r.Add("a", math.NewVec3(1, 0, 1))
	r.Add("b", math.NewVec3(2, 0, 2))

	var b Batch
	b.Objects(r, []int{1, 1, 7}, 0.25)

	require.Equal(t, 6, b.Lines())
	require.Equal(t, math.NewVec3(1.75, 0, 2), b.Vertices[0].Position)
}
