package main

import (
	"context"
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"cull-engine/camera"
	"cull-engine/config"
	"cull-engine/core"
	"cull-engine/culling"
	"cull-engine/internal/opengl"
	"cull-engine/internal/overlay"
	"cull-engine/scene"
	"cull-engine/timing"
)

var (
	skyColor   = overlay.Color{R: 0.08, G: 0.09, B: 0.12, A: 1}
	markerSize = float32(0.4)
)

var keys = camera.KeyMap{
	Forward:    core.KeyW,
	Back:       core.KeyS,
	Left:       core.KeyA,
	Right:      core.KeyD,
	Up:         core.KeySpace,
	Down:       core.KeyC,
	Fast:       core.KeyLeftShift,
	Normal:     core.KeyLeftControl,
	Reset:      core.KeyQ,
	LookButton: core.MouseButtonRight,
}

// runWindow opens a window and, every frame, moves the camera from input,
// culls the camera and light views and draws the quadtree leaves and
// visible objects. L switches the overlay between the two views.
func runWindow(ctx context.Context, culler *culling.Culler, registry *scene.Registry, s config.Settings) error {
	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewLineRenderer()
	if err != nil {
		return errors.New("creating renderer failed").Wrap(err)
	}
	defer renderer.Destroy()

	width, height := window.GetFramebufferSize()
	cam := camera.NewCamera(s.Camera.Position, s.Camera.Projection(1))
	cam.UpdateAspectRatio(width, height)

	freeLook := camera.NewFreeLook(keys)
	freeLook.Start = s.Camera.Position

	timer := timing.NewFrameTimer()
	timer.Start()

	var (
		batch       overlay.Batch
		showLight   bool
		lightKeyWas bool
	)

	logs.WithTag("move", "W A S D, Space / C").
		WithTag("look", "right mouse drag").
		WithTag("speed", "Shift fast, Ctrl normal").
		WithTag("reset", "Q").
		WithTag("overlay", "L toggles camera / light").
		Info("window opened")

	for !window.ShouldClose() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		lDown := window.IsKeyPressed(core.KeyL)
		if lDown && !lightKeyWas {
			showLight = !showLight
		}
		lightKeyWas = lDown

		dt := timer.Tick()
		freeLook.Update(window, cam, dt)

		width, height = window.GetFramebufferSize()
		cam.UpdateAspectRatio(width, height)
		renderer.SetViewport(width, height)

		frames, err := culler.VisibleViews(ctx, views(cam, s.Light))
		if err != nil {
			return err
		}

		shown := frames[0]
		if showLight && len(frames) > 1 {
			shown = frames[1]
		}

		batch.Reset()
		batch.Leaves(culler.Tree(), &shown.Frustum)
		batch.Objects(registry, culling.Dedup(shown.Visible), markerSize)

		renderer.Clear(skyColor)
		renderer.Draw(&batch, cam.ViewProjection())
		window.SwapBuffers()

		if timer.Frames()%60 == 0 {
			window.SetTitle(fmt.Sprintf("Quadtree Culling | FPS: %d | %s visible: %d | (%.1f, %.1f, %.1f)",
				timer.FPS(), shown.View, len(culling.Dedup(shown.Visible)),
				cam.Position.X, cam.Position.Y, cam.Position.Z))
		}
	}

	logs.WithTag("frames", timer.Frames()).
		WithTag("elapsed", timer.Elapsed()).
		Info("window closed")
	return nil
}
