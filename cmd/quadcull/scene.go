package main

import (
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"cull-engine/config"
	"cull-engine/scene"
)

// loadScene returns the objects named by the settings' scene source.
func loadScene(s config.Settings) (*scene.Registry, error) {
	source := s.Scene.Source

	if source == config.SourceGrid {
		r := scene.NewRegistry()
		r.Scatter(s.World.Bounds(), s.Scene.Columns, s.Scene.Rows)
		return r, nil
	}

	switch ext := strings.ToLower(filepath.Ext(source)); ext {
	case ".gltf", ".glb":
		r := scene.NewRegistry()
		if err := r.LoadGLTF(source); err != nil {
			return nil, err
		}
		return r, nil

	case ".json":
		return scene.LoadJSON(source)

	default:
		return nil, errors.New("unsupported scene source").
			WithType(config.ErrTypeInvalid).
			WithTag("source", source).
			WithTag("extension", ext)
	}
}
