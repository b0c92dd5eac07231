// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render runs the frame loop of the still life over
// a [Window] and a [Device].
package render

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/stilllife/camera"
	"cogentcore.org/stilllife/input"
	"cogentcore.org/stilllife/phong"
	"cogentcore.org/stilllife/scene"
	"cogentcore.org/stilllife/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is the window the frames are shown in.
type Window interface {
	// ShouldClose returns whether the window has been asked to close.
	ShouldClose() bool

	// SetShouldClose sets the close flag.
	SetShouldClose(v bool)

	// Poll processes window events and returns the input
	// gathered since the last call.
	Poll() input.Event

	// SwapBuffers shows the frame that was drawn.
	SwapBuffers()

	// FramebufferSize returns the framebuffer size in pixels.
	FramebufferSize() image.Point
}

// Device draws objects.
type Device interface {
	SetLights(lt *phong.Lights)
	SetMaterial(mat *phong.Material)
	Clear()
	SetViewport(size image.Point)
	SetCamera(view, projection mgl32.Mat4, pos mgl32.Vec3)
	SetTexture(unit int, img *image.RGBA)
	Draw(obj *scene.Object, model mgl32.Mat4)
	Release()
}

// Renderer draws the objects every frame until the window closes.
type Renderer struct {
	Window Window
	Device Device
	Camera *camera.Camera

	// Objects are drawn in order every frame.
	Objects []scene.Object

	Lights   phong.Lights
	Material phong.Material

	// State is the lifecycle state.
	State States

	// Delta is the time between the last two frames.
	Delta time.Duration

	// Frames is the number of frames drawn.
	Frames int

	// Size is the current framebuffer size.
	Size image.Point

	// Reloads, if set, delivers texture images to upload
	// before the next frame is drawn.
	Reloads <-chan texture.Update

	// input from the last poll, applied in the next frame
	pending input.Event

	last time.Time
}

// New returns a new renderer in the [Initializing] state, using
// [scene.DefaultMaterial] as the base material.
func New(win Window, dev Device, cam *camera.Camera, objects []scene.Object, lights phong.Lights) *Renderer {
	return &Renderer{
		Window:   win,
		Device:   dev,
		Camera:   cam,
		Objects:  objects,
		Lights:   lights,
		Material: scene.DefaultMaterial(),
	}
}

// Init sets the material and the viewport and moves to [Running].
func (rn *Renderer) Init() error {
	if rn.State != Initializing {
		return fmt.Errorf("render: Init called in state %v", rn.State)
	}
	rn.Device.SetMaterial(&rn.Material)
	rn.Size = rn.Window.FramebufferSize()
	rn.Device.SetViewport(rn.Size)
	rn.last = time.Now()
	rn.State = Running
	slog.Debug("renderer running", "objects", len(rn.Objects), "size", rn.Size)
	return nil
}

// Aspect returns the framebuffer aspect ratio, or 1 for an empty framebuffer.
func (rn *Renderer) Aspect() float32 {
	if rn.Size.X <= 0 || rn.Size.Y <= 0 {
		return 1
	}
	return float32(rn.Size.X) / float32(rn.Size.Y)
}

// Frame draws one frame. The view is taken before the pending input
// is applied, so movement shows from the next frame on, while the
// projection and the camera position for the highlights are current.
func (rn *Renderer) Frame() {
	if rn.State != Running {
		return
	}
	now := time.Now()
	rn.Delta = now.Sub(rn.last)
	rn.last = now

	rn.reloadTextures()
	dev := rn.Device
	dev.SetLights(&rn.Lights)
	dev.Clear()
	view := rn.Camera.View()
	rn.applyInput()
	dev.SetCamera(view, rn.Camera.Projection(rn.Aspect()), rn.Camera.Pos)
	rn.drawObjects()
	rn.Window.SwapBuffers()
	rn.Frames++
	rn.pending = rn.Window.Poll()

	if rn.Window.ShouldClose() {
		rn.State = ShuttingDown
	}
}

// applyInput applies the input from the last poll.
func (rn *Renderer) applyInput() {
	ev := &rn.pending
	if ev.IsZero() {
		return
	}
	if ev.Close {
		rn.Window.SetShouldClose(true)
	}
	if ev.Resize != (image.Point{}) {
		rn.Size = ev.Resize
		rn.Device.SetViewport(rn.Size)
	}
	rn.Camera.Update(ev)
	*ev = input.Event{}
}

// reloadTextures uploads the reloaded images that are ready, without waiting.
func (rn *Renderer) reloadTextures() {
	for rn.Reloads != nil {
		select {
		case up, ok := <-rn.Reloads:
			if !ok {
				rn.Reloads = nil
				return
			}
			rn.Device.SetTexture(up.Unit, up.Image)
		default:
			return
		}
	}
}

func (rn *Renderer) drawObjects() {
	for i := range rn.Objects {
		ob := &rn.Objects[i]
		rn.Device.Draw(ob, ob.Transform.Model())
	}
}

// Run initializes the renderer if needed, draws frames until the
// window closes and then shuts down.
func (rn *Renderer) Run() error {
	if rn.State == Initializing {
		if err := rn.Init(); err != nil {
			return err
		}
	}
	for rn.State == Running {
		if rn.Window.ShouldClose() {
			rn.State = ShuttingDown
			break
		}
		rn.Frame()
	}
	rn.Shutdown()
	return nil
}

// Shutdown releases the device and moves to [Stopped].
// It does nothing once stopped.
func (rn *Renderer) Shutdown() {
	if rn.State == Stopped {
		return
	}
	rn.State = ShuttingDown
	rn.Device.Release()
	rn.State = Stopped
	slog.Info("renderer stopped", "frames", rn.Frames)
}
