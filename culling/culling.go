// Package culling runs per-frame visibility queries against a populated
// quadtree for one or more named views.
package culling

import (
	"context"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"golang.org/x/sync/errgroup"

	"cull-engine/frustum"
	"cull-engine/math"
	"cull-engine/quadtree"
)

// View is a named viewpoint, such as the main camera or a shadow-casting
// light.
type View struct {
	Name           string
	ViewProjection math.Mat4
}

// Frame is the result of culling one view.
type Frame struct {
	View     string
	Frustum  frustum.Frustum
	Visible  []int
	Stats    quadtree.QueryStats
	Duration time.Duration
}

// Culler queries one tree. Frame reuses an internal buffer and must not be
// called concurrently; Visible and VisibleViews may be.
type Culler struct {
	tree *quadtree.Tree
	buf  []int
}

func New(tree *quadtree.Tree) *Culler {
	return &Culler{tree: tree}
}

// Build populates a tree with items and returns a culler for it together
// with the indices of items outside bounds.
func Build(bounds frustum.AABB, depth int, items []quadtree.Item) (*Culler, []int, error) {
	tree, unassigned, err := quadtree.Populate(bounds, depth, items)
	if err != nil {
		return nil, nil, err
	}

	instrumentUnassigned(len(unassigned))
	return New(tree), unassigned, nil
}

func (c *Culler) Tree() *quadtree.Tree {
	return c.tree
}

// Frame culls the tree against vp. The returned Visible slice is only valid
// until the next call to Frame.
func (c *Culler) Frame(name string, vp math.Mat4) Frame {
	f := cull(c.tree, c.buf[:0], name, vp)
	c.buf = f.Visible
	return f
}

// Visible returns the indices visible from vp in a newly allocated slice.
func (c *Culler) Visible(vp math.Mat4) []int {
	f := frustum.FromViewProjection(vp)
	return c.tree.QueryVisible(&f)
}

// VisibleViews culls every view concurrently and returns the frames in view
// order. It stops early and returns the context error when ctx is done.
func (c *Culler) VisibleViews(ctx context.Context, views []View) ([]Frame, error) {
	frames := make([]Frame, len(views))

	g, ctx := errgroup.WithContext(ctx)
	for i, v := range views {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames[i] = cull(c.tree, nil, v.Name, v.ViewProjection)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

func cull(tree *quadtree.Tree, dst []int, name string, vp math.Mat4) Frame {
	start := time.Now()

	f := Frame{
		View:    name,
		Frustum: frustum.FromViewProjection(vp),
	}
	f.Visible, f.Stats = tree.AppendVisible(dst, &f.Frustum)
	f.Duration = time.Since(start)

	instrumentFrame(f)
	logs.WithTag("view", name).
		WithTag("visible", len(f.Visible)).
		WithTag("visited", f.Stats.Visited).
		WithTag("culled", f.Stats.Culled).
		WithTag("leaves", f.Stats.Leaves).
		WithTag("duration", f.Duration).
		Debug("view culled")
	return f
}

// Dedup returns indices with repeats removed, keeping the first occurrence
// of each. Objects on quadtree split lines are reported once per leaf.
func Dedup(indices []int) []int {
	if len(indices) == 0 {
		return indices
	}

	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out
}
