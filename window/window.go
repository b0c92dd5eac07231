// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package window opens the GLFW window with its OpenGL context and
// gathers the user input into [input.Event] values.
// Everything here must be called on the main thread.
package window

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/stilllife/config"
	"cogentcore.org/stilllife/input"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// moveKeys maps the held movement keys to moves.
var moveKeys = []struct {
	key  glfw.Key
	move input.Moves
}{
	{glfw.KeyW, input.Forward},
	{glfw.KeyS, input.Backward},
	{glfw.KeyA, input.Left},
	{glfw.KeyD, input.Right},
	{glfw.KeyQ, input.Down},
	{glfw.KeyE, input.Up},
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	glw *glfw.Window

	// input gathered by the callbacks since the last Poll
	pending input.Event

	mouse input.MouseTracker
}

// New initializes GLFW, opens a window with the given configuration,
// makes its OpenGL context current and loads the OpenGL functions.
// The cursor is captured for looking around.
func New(cfg *config.Window) (*Window, error) {
	if err := glfwCall(glfw.Init); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var glw *glfw.Window
	err := glfwCall(func() (err error) {
		glw, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
		return err
	})
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: failed to create GLFW window: %w", err)
	}
	glw.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("window: OpenGL init: %w", err)
	}
	glfw.SwapInterval(cfg.SwapInterval)
	slog.Info("OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	w := &Window{glw: glw}
	glw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	glw.SetCursorPosCallback(w.cursorPos)
	glw.SetScrollCallback(w.scroll)
	glw.SetKeyCallback(w.key)
	glw.SetFramebufferSizeCallback(w.framebufferSize)
	return w, nil
}

// glfwCall calls f, turning the panic GLFW raises for an unexpected
// error (such as no display being available) into an error.
func glfwCall(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return f()
}

func (w *Window) cursorPos(_ *glfw.Window, x, y float64) {
	dx, dy := w.mouse.Delta(float32(x), float32(y))
	w.pending.Merge(input.Event{LookX: dx, LookY: dy, Moved: true})
}

func (w *Window) scroll(_ *glfw.Window, _, dy float64) {
	w.pending.Merge(input.Event{Scroll: float32(dy)})
}

func (w *Window) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyP:
		w.pending.Merge(input.Event{ToggleProjection: 1})
	case glfw.KeyEscape:
		w.pending.Merge(input.Event{Close: true})
	}
}

func (w *Window) framebufferSize(_ *glfw.Window, width, height int) {
	w.pending.Merge(input.Event{Resize: image.Pt(width, height)})
}

// Poll processes pending window events and returns the input
// gathered since the last call, with the currently held movement keys.
func (w *Window) Poll() input.Event {
	glfw.PollEvents()
	ev := w.pending
	w.pending = input.Event{}
	for _, mk := range moveKeys {
		ev.Held.Set(mk.move, w.glw.GetKey(mk.key) == glfw.Press)
	}
	if w.glw.GetKey(glfw.KeyEscape) == glfw.Press {
		ev.Close = true
	}
	return ev
}

// ShouldClose returns whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SetShouldClose sets the close flag.
func (w *Window) SetShouldClose(v bool) {
	w.glw.SetShouldClose(v)
}

// SwapBuffers shows the frame that was drawn.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Pt(width, height)
}

// Terminate destroys the window and shuts down GLFW.
func (w *Window) Terminate() {
	w.glw.Destroy()
	glfw.Terminate()
}
