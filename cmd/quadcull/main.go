package main

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/encoding/json"

	"cull-engine/config"
	"cull-engine/culling"
	"cull-engine/scene"
)

var (
	// The quadcull version number. Set at build.
	version = "v0.1.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "quadcull_info",
		Help:        "Quadcull information.",
		ConstLabels: prometheus.Labels{"version": version},
	})
)

var _ = reflect.TypeOf(options{})

type options struct {
	Settings  string `cli:""        env:"QUADCULL_SETTINGS"   help:"YAML settings file. Built-in defaults are used when empty."`
	Scene     string `cli:""        env:"QUADCULL_SCENE"      help:"Scene source overriding the settings file: grid, or a .gltf, .glb or .json path."`
	SaveScene string `cli:""        env:"QUADCULL_SAVE_SCENE" help:"Write the loaded objects to this JSON snapshot."`
	Headless  bool   `cli:""        env:"QUADCULL_HEADLESS"   help:"Cull an orbiting camera without opening a window."`
	Frames    int    `cli:""        env:"QUADCULL_FRAMES"     help:"Number of frames to cull in headless mode."`
	AdminAddr string `cli:""        env:"QUADCULL_ADMIN_ADDR" help:"Admin listening address serving metrics. Disabled when empty."`
	LogLevel  string `cli:""        env:"QUADCULL_LOG_LEVEL"  help:"Log level (debug|info|warning|error)."`
	LogIndent bool   `cli:""        env:"QUADCULL_LOG_INDENT" help:"Indent logs."`
	Version   bool   `cli:""        env:"-"                   help:"Show version."`
	Help      bool   `cli:""        env:"-"                   help:"Show help."`
}

func main() {
	opts := options{
		Frames:   360,
		LogLevel: logs.InfoLevel.String(),
	}

	infoGauge.Set(1)

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Builds a quadtree over a scene and culls it against camera and light frustums.").
		Options(&opts)
	cli.Load()

	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(opts.LogLevel))
	logs.Encoder = json.Marshal
	if opts.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	settings, err := loadSettings(opts)
	if err != nil {
		logs.Fatal(err)
	}

	registry, err := loadScene(settings)
	if err != nil {
		logs.Fatal(err)
	}

	if opts.SaveScene != "" {
		if err := scene.SaveJSON(registry, opts.SaveScene); err != nil {
			logs.Fatal(err)
		}
		logs.WithTag("path", opts.SaveScene).Info("scene snapshot saved")
	}

	culler, unassigned, err := culling.Build(settings.World.Bounds(), settings.Quadtree.Depth, registry.Items())
	if err != nil {
		logs.Fatal(errors.New("building quadtree failed").Wrap(err))
	}

	stats := culler.Tree().Stats()
	logs.WithTag("version", version).
		WithTag("source", settings.Scene.Source).
		WithTag("objects", registry.Len()).
		WithTag("unassigned", len(unassigned)).
		WithTag("depth", settings.Quadtree.Depth).
		WithTag("leaves", stats.Leaves).
		WithTag("entries", stats.Entries).
		WithTag("max_leaf_objects", stats.MaxLeafObjects).
		Info("starting quadcull")

	if opts.AdminAddr != "" {
		go serveAdmin(ctx, opts.AdminAddr)
	}

	if opts.Headless {
		err = runHeadless(ctx, culler, settings, opts.Frames)
	} else {
		err = runWindow(ctx, culler, registry, settings)
	}
	if err != nil && err != context.Canceled {
		logs.Fatal(err)
	}
}

func loadSettings(opts options) (config.Settings, error) {
	s := config.Default()
	if opts.Settings != "" {
		var err error
		if s, err = config.Load(opts.Settings); err != nil {
			return config.Settings{}, err
		}
	}

	if opts.Scene != "" {
		s.Scene.Source = opts.Scene
		if err := s.Validate(); err != nil {
			return config.Settings{}, err
		}
	}
	return s, nil
}
