// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"testing"

	"cogentcore.org/stilllife/camera"
	"cogentcore.org/stilllife/input"
	"cogentcore.org/stilllife/phong"
	"cogentcore.org/stilllife/scene"
	"cogentcore.org/stilllife/texture"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	close  bool
	size   image.Point
	events []input.Event
	polls  int
	swaps  int
}

func (w *fakeWindow) ShouldClose() bool { return w.close }
func (w *fakeWindow) SetShouldClose(v bool) { w.close = v }
func (w *fakeWindow) SwapBuffers() { w.swaps++ }
func (w *fakeWindow) FramebufferSize() image.Point { return w.size }

func (w *fakeWindow) Poll() input.Event {
	w.polls++
	if len(w.events) == 0 {
		return input.Event{}
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev
}

type drawCall struct {
	name  string
	model mgl32.Mat4
}

type fakeDevice struct {
	calls     []string
	draws     []drawCall
	viewports []image.Point
	views     []mgl32.Mat4
	camPos    []mgl32.Vec3
	textures  []int
	released  int
}

func (d *fakeDevice) SetLights(lt *phong.Lights) { d.calls = append(d.calls, "lights") }
func (d *fakeDevice) SetMaterial(mat *phong.Material) { d.calls = append(d.calls, "material") }
func (d *fakeDevice) Clear() { d.calls = append(d.calls, "clear") }
func (d *fakeDevice) Release() { d.released++ }

func (d *fakeDevice) SetViewport(size image.Point) {
	d.calls = append(d.calls, "viewport")
	d.viewports = append(d.viewports, size)
}

func (d *fakeDevice) SetCamera(view, projection mgl32.Mat4, pos mgl32.Vec3) {
	d.calls = append(d.calls, "camera")
	d.views = append(d.views, view)
	d.camPos = append(d.camPos, pos)
}

func (d *fakeDevice) SetTexture(unit int, img *image.RGBA) {
	d.calls = append(d.calls, "texture")
	d.textures = append(d.textures, unit)
}

func (d *fakeDevice) Draw(obj *scene.Object, model mgl32.Mat4) {
	d.calls = append(d.calls, "draw")
	d.draws = append(d.draws, drawCall{obj.Name, model})
}

func newTest(events ...input.Event) (*Renderer, *fakeWindow, *fakeDevice) {
	win := &fakeWindow{size: image.Pt(800, 600), events: events}
	dev := &fakeDevice{}
	rn := New(win, dev, camera.Defaults(), scene.StillLife(), scene.DefaultLights())
	return rn, win, dev
}

func TestInit(t *testing.T) {
	rn, _, dev := newTest()
	assert.Equal(t, Initializing, rn.State)
	require.NoError(t, rn.Init())
	assert.Equal(t, Running, rn.State)
	assert.Equal(t, []string{"material", "viewport"}, dev.calls)
	assert.Equal(t, float32(800)/600, rn.Aspect())
	assert.Error(t, rn.Init())
}

func TestFrameOrder(t *testing.T) {
	rn, win, dev := newTest()
	require.NoError(t, rn.Init())
	dev.calls = nil
	rn.Frame()

	n := len(rn.Objects)
	require.Len(t, dev.calls, 3+n)
	assert.Equal(t, []string{"lights", "clear", "camera"}, dev.calls[:3])
	for _, c := range dev.calls[3:] {
		assert.Equal(t, "draw", c)
	}
	require.Len(t, dev.draws, n)
	for i, dc := range dev.draws {
		ob := rn.Objects[i]
		assert.Equal(t, ob.Name, dc.name)
		tr := ob.Transform
		assert.Equal(t, tr.Translation.Mul4(tr.Rotation.Mul4(tr.Scale)), dc.model, ob.Name)
	}
	assert.Equal(t, 1, win.swaps)
	assert.Equal(t, 1, win.polls)
	assert.Equal(t, 1, rn.Frames)
}

func TestInputNextFrame(t *testing.T) {
	rn, _, dev := newTest(input.Event{Held: input.Forward, Scroll: 99})
	require.NoError(t, rn.Init())
	start := rn.Camera.View()

	rn.Frame()
	assert.Equal(t, start, dev.views[0])
	assert.Equal(t, mgl32.Vec3{0, 2, 9}, dev.camPos[0])

	// the polled movement is applied in the second frame, after the view is built
	rn.Frame()
	assert.Equal(t, start, dev.views[1])
	assert.InDelta(t, 1, rn.Camera.Speed, 1e-5)
	assert.InDelta(t, 8, dev.camPos[1][2], 1e-5)

	rn.Frame()
	assert.NotEqual(t, start, dev.views[2])
}

func TestResize(t *testing.T) {
	rn, _, dev := newTest(input.Event{Resize: image.Pt(400, 400)})
	require.NoError(t, rn.Init())
	rn.Frame()
	rn.Frame()
	assert.Equal(t, []image.Point{{800, 600}, {400, 400}}, dev.viewports)
	assert.Equal(t, float32(1), rn.Aspect())
}

func TestEscapeCloses(t *testing.T) {
	rn, win, dev := newTest(input.Event{}, input.Event{Close: true})
	require.NoError(t, rn.Run())
	assert.True(t, win.close)
	assert.Equal(t, Stopped, rn.State)
	assert.Equal(t, 3, rn.Frames)
	assert.Equal(t, 1, dev.released)

	rn.Shutdown()
	assert.Equal(t, 1, dev.released)
}

func TestWindowClosed(t *testing.T) {
	rn, win, dev := newTest()
	win.close = true
	require.NoError(t, rn.Run())
	assert.Equal(t, 0, rn.Frames)
	assert.Equal(t, Stopped, rn.State)
	assert.Equal(t, 1, dev.released)
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "ShuttingDown", ShuttingDown.String())
	assert.Equal(t, "States(7)", States(7).String())
}

func TestReloads(t *testing.T) {
	rn, _, dev := newTest()
	reloads := make(chan texture.Update, 4)
	rn.Reloads = reloads
	require.NoError(t, rn.Init())
	dev.calls = nil

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	reloads <- texture.Update{Unit: scene.CDTexture, Image: img}
	reloads <- texture.Update{Unit: scene.TabletopTexture, Image: img}
	rn.Frame()
	assert.Equal(t, []int{scene.CDTexture, scene.TabletopTexture}, dev.textures)
	assert.Equal(t, []string{"texture", "texture", "lights"}, dev.calls[:3])

	// nothing pending does not block
	rn.Frame()
	assert.Len(t, dev.textures, 2)

	close(reloads)
	rn.Frame()
	assert.Nil(t, rn.Reloads)
	assert.Equal(t, 3, rn.Frames)
}
