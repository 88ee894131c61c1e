package quadtree

import "cull-engine/frustum"

// QueryStats counts the work done by one visibility query.
type QueryStats struct {
	Visited int // nodes box-tested
	Culled  int // nodes rejected together with their subtree
	Leaves  int // leaves kept
}

// QueryVisible returns the indices stored in every leaf whose box is not
// entirely outside f, in quadrant traversal order. Objects on split lines
// may appear more than once. The result is conservative: it may contain
// objects outside f, never omits one inside it. f must not be nil.
func (t *Tree) QueryVisible(f *frustum.Frustum) []int {
	visible, _ := t.AppendVisible(nil, f)
	return visible
}

// AppendVisible is QueryVisible appending to dst, which lets per-frame
// callers reuse one buffer. Concurrent callers must use distinct buffers.
func (t *Tree) AppendVisible(dst []int, f *frustum.Frustum) ([]int, QueryStats) {
	var stats QueryStats
	dst = appendVisible(dst, t.root, f, &stats)
	return dst, stats
}

func appendVisible(dst []int, n Node, f *frustum.Frustum, stats *QueryStats) []int {
	stats.Visited++
	if !f.IntersectsAABB(n.Bounds()) {
		stats.Culled++
		return dst
	}

	switch n := n.(type) {
	case *Leaf:
		stats.Leaves++
		dst = append(dst, n.objects...)
	case *Internal:
		for _, c := range n.children {
			dst = appendVisible(dst, c, f, stats)
		}
	}
	return dst
}
