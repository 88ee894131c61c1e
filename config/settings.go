// Package config loads the YAML settings file describing the world, the
// quadtree, the viewpoints and the scene source.
package config

import (
	stdmath "math"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"gopkg.in/yaml.v3"

	"cull-engine/camera"
	"cull-engine/frustum"
	"cull-engine/math"
	"cull-engine/quadtree"
)

// ErrTypeInvalid is the type of errors returned for unreadable or invalid
// settings.
const ErrTypeInvalid = "config_invalid"

// SourceGrid selects the generated lattice scene.
const SourceGrid = "grid"

type Settings struct {
	World    World                   `yaml:"world"`
	Quadtree Quadtree                `yaml:"quadtree"`
	Camera   Camera                  `yaml:"camera"`
	Light    camera.DirectionalLight `yaml:"light"`
	Scene    Scene                   `yaml:"scene"`
}

// World is the region the quadtree covers.
type World struct {
	Min math.Vec3 `yaml:"min"`
	Max math.Vec3 `yaml:"max"`
}

func (w World) Bounds() frustum.AABB {
	return frustum.AABB{Min: w.Min, Max: w.Max}
}

type Quadtree struct {
	Depth int `yaml:"depth"`
}

type Camera struct {
	Position   math.Vec3 `yaml:"position"`
	FOVDegrees float32   `yaml:"fov_degrees"`
	Near       float32   `yaml:"near"`
	Far        float32   `yaml:"far"`
}

// Projection returns the camera projection for the given aspect ratio.
func (c Camera) Projection(aspect float32) camera.Projection {
	return camera.Projection{
		FOV:    c.FOVDegrees * stdmath.Pi / 180,
		Aspect: aspect,
		Near:   c.Near,
		Far:    c.Far,
	}
}

// Scene selects where objects come from: SourceGrid, or a path to a .gltf,
// .glb or .json file.
type Scene struct {
	Source  string `yaml:"source"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
}

func Default() Settings {
	return Settings{
		World: World{
			Min: math.NewVec3(0, 0, 0),
			Max: math.NewVec3(200, 10, 200),
		},
		Quadtree: Quadtree{
			Depth: 4,
		},
		Camera: Camera{
			Position:   camera.StartPosition,
			FOVDegrees: 90,
			Near:       0.1,
			Far:        1000,
		},
		Light: camera.DirectionalLight{
			Direction: math.NewVec3(-0.4, -1, -0.3),
			Extent:    60,
		},
		Scene: Scene{
			Source:  SourceGrid,
			Columns: 40,
			Rows:    40,
		},
	}
}

// Load reads settings from a YAML file. Keys missing from the file keep
// their Default values. The result is validated.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.New("reading settings failed").
			WithType(ErrTypeInvalid).
			WithTag("path", path).
			Wrap(err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.New("decoding settings failed").
			WithType(ErrTypeInvalid).
			WithTag("path", path).
			Wrap(err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes the settings to path as YAML.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.New("encoding settings failed").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("writing settings failed").
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}

func (s Settings) Validate() error {
	switch {
	case !s.World.Bounds().Valid():
		return errors.New("world min is greater than max").
			WithType(ErrTypeInvalid).
			WithTag("min", s.World.Min).
			WithTag("max", s.World.Max)

	case s.Quadtree.Depth < 0 || s.Quadtree.Depth > quadtree.MaxDepth:
		return errors.New("quadtree depth out of range").
			WithType(ErrTypeInvalid).
			WithTag("depth", s.Quadtree.Depth).
			WithTag("max_depth", quadtree.MaxDepth)

	case s.Camera.FOVDegrees <= 0 || s.Camera.FOVDegrees >= 180:
		return errors.New("camera fov must be between 0 and 180 degrees").
			WithType(ErrTypeInvalid).
			WithTag("fov_degrees", s.Camera.FOVDegrees)

	case s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near:
		return errors.New("camera depth range must satisfy 0 < near < far").
			WithType(ErrTypeInvalid).
			WithTag("near", s.Camera.Near).
			WithTag("far", s.Camera.Far)

	case s.Light.Extent <= 0:
		return errors.New("light extent must be positive").
			WithType(ErrTypeInvalid).
			WithTag("extent", s.Light.Extent)

	case s.Scene.Source == "":
		return errors.New("scene source is empty").
			WithType(ErrTypeInvalid)

	case s.Scene.Source == SourceGrid && (s.Scene.Columns <= 0 || s.Scene.Rows <= 0):
		return errors.New("grid scene needs positive columns and rows").
			WithType(ErrTypeInvalid).
			WithTag("columns", s.Scene.Columns).
			WithTag("rows", s.Scene.Rows)
	}
	return nil
}
