package scene

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/qmuntal/gltf"

	"cull-engine/math"
)

// LoadGLTF opens a .gltf or .glb file and adds one object per node that
// carries a mesh, positioned at the node's world-space origin. Nodes are
// visited depth-first from the default scene's roots, or from every
// parentless node when the file has no default scene.
func (r *Registry) LoadGLTF(path string) error {
	doc, err := gltf.Open(path)
	if err != nil {
		return errors.New("opening gltf failed").
			WithType(ErrTypeLoad).
			WithTag("path", path).
			Wrap(err)
	}

	before := r.Len()
	visited := make([]bool, len(doc.Nodes))

	var visit func(i int, parent math.Mat4)
	visit = func(i int, parent math.Mat4) {
		if i < 0 || i >= len(doc.Nodes) || visited[i] {
			return
		}
		visited[i] = true

		gn := doc.Nodes[i]
		world := localMatrix(gn).Mul(parent)

		if gn.Mesh != nil {
			r.Add(nodeName(doc, i), world.MulPoint(math.Vec3Zero))
		}
		for _, c := range gn.Children {
			visit(c, world)
		}
	}

	for _, root := range gltfRoots(doc) {
		visit(root, math.Mat4Identity())
	}

	logs.WithTag("path", path).
		WithTag("nodes", len(doc.Nodes)).
		WithTag("objects", r.Len()-before).
		Info("gltf scene loaded")
	return nil
}

func gltfRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}

	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c >= 0 && c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}

	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// localMatrix returns the node's transform relative to its parent. An
// explicit matrix takes precedence over TRS properties.
func localMatrix(gn *gltf.Node) math.Mat4 {
	if m := gn.MatrixOrDefault(); m != gltf.DefaultMatrix {
		var cm [16]float32
		for i, v := range m {
			cm[i] = float32(v)
		}
		return math.Mat4FromColumnMajor(cm)
	}

	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()
	return math.Mat4TRS(
		math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])},
		math.Quaternion{X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3])},
		math.Vec3{X: float32(s[0]), Y: float32(s[1]), Z: float32(s[2])},
	)
}

func nodeName(doc *gltf.Document, i int) string {
	gn := doc.Nodes[i]
	switch {
	case gn.Name != "":
		return gn.Name
	case *gn.Mesh < len(doc.Meshes) && doc.Meshes[*gn.Mesh].Name != "":
		return doc.Meshes[*gn.Mesh].Name
	default:
		return fmt.Sprintf("node_%d", i)
	}
}
