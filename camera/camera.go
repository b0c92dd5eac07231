// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the fly-through camera: a position and a
// look direction given by yaw and pitch angles, moved by held keys,
// turned by the pointer and sped up or down by scrolling.
package camera

import (
	"log/slog"

	"cogentcore.org/stilllife/config"
	"cogentcore.org/stilllife/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the largest absolute pitch in degrees, short of
// straight up or down so that the view never flips.
const MaxPitch = 89

// MinSpeed is the lowest movement speed, whatever the configuration says.
const MinSpeed = 0.01

// Camera is a fly-through camera.
type Camera struct {

	// Pos is the position in world coordinates.
	Pos mgl32.Vec3

	// Front is the unit look direction.
	Front mgl32.Vec3

	// Up is the world up direction, which is fixed.
	Up mgl32.Vec3

	// Yaw is the horizontal look angle in degrees.
	Yaw float32

	// Pitch is the vertical look angle in degrees, within +/- [MaxPitch].
	Pitch float32

	// Speed is the distance moved per frame for each held key.
	Speed float32

	// MinSpeed is the lower bound on Speed.
	MinSpeed float32

	// ScrollStep is the change in Speed per unit of scroll.
	ScrollStep float32

	// Sensitivity is the degrees turned per unit of pointer motion.
	Sensitivity float32

	// FOV is the vertical field of view of the perspective projection in degrees.
	FOV float32

	// Near and Far are the clipping plane distances.
	Near, Far float32

	// OrthoSize is the half extent of the orthographic view volume.
	OrthoSize float32

	// Ortho is whether to use the orthographic projection.
	Ortho bool
}

// New returns a new camera configured from cfg.
func New(cfg *config.Camera) *Camera {
	cm := &Camera{
		Pos:         mgl32.Vec3(cfg.Position),
		Up:          mgl32.Vec3{0, 1, 0},
		Yaw:         cfg.Yaw,
		Pitch:       clampPitch(cfg.Pitch),
		Speed:       cfg.Speed,
		MinSpeed:    max(cfg.MinSpeed, MinSpeed),
		ScrollStep:  cfg.ScrollStep,
		Sensitivity: cfg.Sensitivity,
		FOV:         cfg.FOV,
		Near:        cfg.Near,
		Far:         cfg.Far,
		OrthoSize:   cfg.OrthoSize,
		Ortho:       cfg.Ortho,
	}
	if cm.Speed < cm.MinSpeed {
		cm.Speed = cm.MinSpeed
	}
	cm.Front = Direction(cm.Yaw, cm.Pitch)
	return cm
}

// Defaults returns a new camera with the default configuration:
// at (0, 2, 9) looking down the -z axis.
func Defaults() *Camera {
	return New(&config.Defaults().Camera)
}

// Direction returns the unit look direction for the given
// yaw and pitch in degrees. Components within rounding error of
// zero are exactly zero, so yaw -90 and pitch 0 give (0, 0, -1).
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y := mgl32.DegToRad(yaw)
	p := mgl32.DegToRad(pitch)
	d := mgl32.Vec3{
		math32.Cos(y) * math32.Cos(p),
		math32.Sin(p),
		math32.Sin(y) * math32.Cos(p),
	}.Normalize()
	for i, v := range d {
		if math32.Abs(v) < 1e-6 {
			d[i] = 0
		}
	}
	return d
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -MaxPitch, MaxPitch)
}

// Move moves the camera by Speed along each of the held directions:
// forward and backward along Front, left and right perpendicular to
// Front and Up, and down and up along Up.
func (cm *Camera) Move(m input.Moves) {
	right := cm.Front.Cross(cm.Up).Normalize()
	if m.Has(input.Forward) {
		cm.Pos = cm.Pos.Add(cm.Front.Mul(cm.Speed))
	}
	if m.Has(input.Backward) {
		cm.Pos = cm.Pos.Sub(cm.Front.Mul(cm.Speed))
	}
	if m.Has(input.Left) {
		cm.Pos = cm.Pos.Sub(right.Mul(cm.Speed))
	}
	if m.Has(input.Right) {
		cm.Pos = cm.Pos.Add(right.Mul(cm.Speed))
	}
	if m.Has(input.Down) {
		cm.Pos = cm.Pos.Sub(cm.Up.Mul(cm.Speed))
	}
	if m.Has(input.Up) {
		cm.Pos = cm.Pos.Add(cm.Up.Mul(cm.Speed))
	}
}

// Look turns the camera by the given pointer deltas, with dy
// positive for upward motion. Pitch is clamped to +/- [MaxPitch].
func (cm *Camera) Look(dx, dy float32) {
	cm.Yaw += dx * cm.Sensitivity
	cm.Pitch = clampPitch(cm.Pitch + dy*cm.Sensitivity)
	cm.Front = Direction(cm.Yaw, cm.Pitch)
}

// AdjustSpeed changes the speed by the given scroll offset.
// The speed never drops below MinSpeed.
func (cm *Camera) AdjustSpeed(dy float32) {
	cm.Speed = math32.Abs(cm.Speed + dy*cm.ScrollStep)
	if cm.Speed <= cm.MinSpeed {
		cm.Speed = cm.MinSpeed
	}
	slog.Debug("camera speed", "speed", cm.Speed)
}

// ToggleProjection switches between the perspective
// and orthographic projections.
func (cm *Camera) ToggleProjection() {
	cm.Ortho = !cm.Ortho
}

// View returns the view matrix looking from Pos along Front.
func (cm *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(cm.Pos, cm.Pos.Add(cm.Front), cm.Up)
}

// Projection returns the current projection matrix
// for the given width / height aspect ratio.
func (cm *Camera) Projection(aspect float32) mgl32.Mat4 {
	if cm.Ortho {
		s := cm.OrthoSize
		return mgl32.Ortho(-s, s, -s, s, cm.Near, cm.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(cm.FOV), aspect, cm.Near, cm.Far)
}

// Update applies one frame of input: projection toggles, then
// turning, then scrolling, then movement for the held keys.
// Look and scroll are only applied when present, so that a
// frame without pointer motion leaves Front unchanged.
func (cm *Camera) Update(ev *input.Event) {
	if ev.ToggleProjection%2 != 0 {
		cm.ToggleProjection()
	}
	if ev.Moved || ev.LookX != 0 || ev.LookY != 0 {
		cm.Look(ev.LookX, ev.LookY)
	}
	if ev.Scroll != 0 {
		cm.AdjustSpeed(ev.Scroll)
	}
	cm.Move(ev.Held)
}
