package config

import (
	stdmath "math"
	"os"
	"path/filepath"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"

	"cull-engine/math"
)

func writeSettings(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `
world:
  min: {x: -50, y: 0, z: -50}
  max: {x: 50, y: 20, z: 50}
quadtree:
  depth: 6
scene:
  source: city.glb
`)

	s, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, math.NewVec3(-50, 0, -50), s.World.Min)
	require.Equal(t, math.NewVec3(50, 20, 50), s.World.Max)
	require.Equal(t, 6, s.Quadtree.Depth)
	require.Equal(t, "city.glb", s.Scene.Source)

	d := Default()
	require.Equal(t, d.Camera, s.Camera)
	require.Equal(t, d.Light, s.Light)
	require.Equal(t, d.Scene.Columns, s.Scene.Columns)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed",
			content: "quadtree: [depth",
		},
		{
			name:    "inverted world",
			content: "world: {min: {x: 10}, max: {x: -10}}",
		},
		{
			name:    "negative depth",
			content: "quadtree: {depth: -1}",
		},
		{
			name:    "too deep",
			content: "quadtree: {depth: 13}",
		},
		{
			name:    "flat fov",
			content: "camera: {fov_degrees: 180}",
		},
		{
			name:    "far before near",
			content: "camera: {near: 10, far: 5}",
		},
		{
			name:    "no light extent",
			content: "light: {extent: 0}",
		},
		{
			name:    "empty source",
			content: `scene: {source: ""}`,
		},
		{
			name:    "empty grid",
			content: "scene: {source: grid, columns: 0}",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, test.content))
			require.Error(t, err)
			require.Equal(t, ErrTypeInvalid, errors.Type(err))
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Equal(t, ErrTypeInvalid, errors.Type(err))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s := Default()
	s.Quadtree.Depth = 7
	s.Scene.Source = "snapshot.json"
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, s, loaded)
}

func TestCameraProjection(t *testing.T) {
	p := Default().Camera.Projection(2)

	require.InDelta(t, stdmath.Pi/2, p.FOV, 1e-6)
	require.Equal(t, float32(2), p.Aspect)
	require.Equal(t, float32(0.1), p.Near)
	require.Equal(t, float32(1000), p.Far)
}
