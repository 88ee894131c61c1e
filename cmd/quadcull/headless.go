package main

import (
	"context"
	stdmath "math"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"

	"cull-engine/camera"
	"cull-engine/config"
	"cull-engine/culling"
	"cull-engine/math"
)

const (
	mainView  = "camera"
	lightView = "light"
)

// orbit places c on a circle around the world centre at the given angle,
// looking inwards and slightly down.
func orbit(c *camera.Camera, s config.Settings, angle float64) {
	bounds := s.World.Bounds()
	center := bounds.Center()
	size := bounds.Size()
	radius := max(size.X, size.Z) / 2

	sin, cos := stdmath.Sincos(angle)
	c.Position = math.Vec3{
		X: center.X + float32(sin)*radius,
		Y: s.Camera.Position.Y,
		Z: center.Z + float32(cos)*radius,
	}
	c.Yaw = float32(angle + stdmath.Pi)
	c.Pitch = -0.2
}

// views returns the camera view and, when the light has a direction, the
// light's shadow view around the camera.
func views(c *camera.Camera, light camera.DirectionalLight) []culling.View {
	vs := []culling.View{{Name: mainView, ViewProjection: c.ViewProjection()}}
	if vp, ok := light.ViewProjection(c.Position); ok {
		vs = append(vs, culling.View{Name: lightView, ViewProjection: vp})
	}
	return vs
}

// runHeadless culls frames views of a camera orbiting the world once and
// logs a summary per view.
func runHeadless(ctx context.Context, culler *culling.Culler, s config.Settings, frames int) error {
	c := camera.NewCamera(s.Camera.Position, s.Camera.Projection(16.0/9.0))

	type summary struct {
		visible  int
		culled   int
		duration time.Duration
	}
	summaries := make(map[string]*summary)

	for i := range frames {
		orbit(c, s, 2*stdmath.Pi*float64(i)/float64(frames))

		result, err := culler.VisibleViews(ctx, views(c, s.Light))
		if err != nil {
			return err
		}

		for _, f := range result {
			sum, ok := summaries[f.View]
			if !ok {
				sum = &summary{}
				summaries[f.View] = sum
			}
			sum.visible += len(culling.Dedup(f.Visible))
			sum.culled += f.Stats.Culled
			sum.duration += f.Duration
		}
	}

	if frames <= 0 {
		return nil
	}
	for view, sum := range summaries {
		logs.WithTag("view", view).
			WithTag("frames", frames).
			WithTag("avg_visible", sum.visible/frames).
			WithTag("avg_culled_nodes", sum.culled/frames).
			WithTag("avg_duration", sum.duration/time.Duration(frames)).
			Info("headless run finished")
	}
	return nil
}
