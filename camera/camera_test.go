// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"math/rand"
	"strings"
	"testing"

	"cogentcore.org/stilllife/config"
	"cogentcore.org/stilllife/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3, msgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-5, msgs...)
	}
}

func assertMat4(t *testing.T, want, got mgl32.Mat4, msgs ...any) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), msgs...)
}

func TestDefaults(t *testing.T) {
	cm := Defaults()
	assertVec3(t, mgl32.Vec3{0, 2, 9}, cm.Pos)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cm.Front)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cm.Up)
	assert.Equal(t, float32(-90), cm.Yaw)
	assert.Equal(t, float32(0), cm.Pitch)
	assert.Equal(t, float32(0.01), cm.Speed)
	assert.False(t, cm.Ortho)
}

func TestPitchClamp(t *testing.T) {
	cm := Defaults()
	cm.Look(0, 10000)
	assert.Equal(t, float32(MaxPitch), cm.Pitch)
	assertVec3(t, Direction(cm.Yaw, MaxPitch), cm.Front)
	cm.Look(0, -50000)
	assert.Equal(t, float32(-MaxPitch), cm.Pitch)

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		cm.Look(rnd.Float32()*400-200, rnd.Float32()*4000-2000)
		assert.LessOrEqual(t, cm.Pitch, float32(MaxPitch))
		assert.GreaterOrEqual(t, cm.Pitch, float32(-MaxPitch))
		assert.InDelta(t, 1, cm.Front.Len(), 1e-5)
	}
}

func TestLook(t *testing.T) {
	cm := Defaults()
	// 900 units at 0.1 sensitivity is a quarter turn to the right
	cm.Look(900, 0)
	assert.InDelta(t, 0, cm.Yaw, 1e-4)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, cm.Front)

	cm.Look(0, 300)
	assert.InDelta(t, 30, cm.Pitch, 1e-4)
	assert.Greater(t, cm.Front.Y(), float32(0))
}

func TestSpeedFloor(t *testing.T) {
	cm := Defaults()
	cm.AdjustSpeed(-3)
	assert.InDelta(t, 0.02, cm.Speed, 1e-6, "speed is the absolute value")
	cm.AdjustSpeed(-2)
	assert.Equal(t, float32(0.01), cm.Speed)
	cm.AdjustSpeed(5)
	assert.InDelta(t, 0.06, cm.Speed, 1e-6)

	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		cm.AdjustSpeed(rnd.Float32()*20 - 10)
		assert.GreaterOrEqual(t, cm.Speed, float32(0.01))
	}
}

func TestConfigMinSpeed(t *testing.T) {
	cfg := config.Defaults()
	require.NoError(t, config.Read(cfg, strings.NewReader("[camera]\nmin_speed = 0\nspeed = 0\n"), config.TOML))
	cm := New(&cfg.Camera)
	assert.Equal(t, float32(MinSpeed), cm.MinSpeed)
	assert.Equal(t, float32(MinSpeed), cm.Speed)
	cm.AdjustSpeed(-1)
	assert.GreaterOrEqual(t, cm.Speed, float32(MinSpeed))

	cfg.Camera.MinSpeed = 0.5
	assert.Equal(t, float32(0.5), New(&cfg.Camera).MinSpeed)
}

func TestMove(t *testing.T) {
	cm := Defaults()
	cm.Speed = 1
	cm.Move(input.Forward)
	assertVec3(t, mgl32.Vec3{0, 2, 8}, cm.Pos)
	cm.Move(input.Backward)
	assertVec3(t, mgl32.Vec3{0, 2, 9}, cm.Pos)
	cm.Move(input.Right)
	assertVec3(t, mgl32.Vec3{1, 2, 9}, cm.Pos)
	cm.Move(input.Left | input.Up)
	assertVec3(t, mgl32.Vec3{0, 3, 9}, cm.Pos)
	cm.Move(input.Down)
	assertVec3(t, mgl32.Vec3{0, 2, 9}, cm.Pos)
	cm.Move(input.Forward | input.Backward)
	assertVec3(t, mgl32.Vec3{0, 2, 9}, cm.Pos)
}

func TestProjectionToggle(t *testing.T) {
	cm := Defaults()
	aspect := float32(800) / 600
	persp := cm.Projection(aspect)
	assertMat4(t, mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100), persp)

	cm.ToggleProjection()
	assert.True(t, cm.Ortho)
	assertMat4(t, mgl32.Ortho(-5, 5, -5, 5, 0.1, 100), cm.Projection(aspect))

	cm.ToggleProjection()
	assert.Equal(t, persp, cm.Projection(aspect))
}

func TestView(t *testing.T) {
	cm := Defaults()
	v := cm.View()
	assertMat4(t, mgl32.LookAtV(cm.Pos, cm.Pos.Add(cm.Front), cm.Up), v)
	// the camera position maps to the view origin
	o := v.Mul4x1(cm.Pos.Vec4(1))
	assertVec3(t, mgl32.Vec3{}, o.Vec3())
}

func TestUpdate(t *testing.T) {
	cm := Defaults()
	front := cm.Front
	cm.Update(&input.Event{})
	assert.Equal(t, front, cm.Front, "no pointer motion leaves the look direction")
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cm.Front)
	assertVec3(t, mgl32.Vec3{0, 2, 9}, cm.Pos)

	cm.Update(&input.Event{ToggleProjection: 2})
	assert.False(t, cm.Ortho)
	cm.Update(&input.Event{ToggleProjection: 3})
	assert.True(t, cm.Ortho)

	cm.Update(&input.Event{Scroll: 1, Held: input.Forward})
	assert.InDelta(t, 0.02, cm.Speed, 1e-6)
	assertVec3(t, mgl32.Vec3{0, 2, 8.98}, cm.Pos)

	cm.Update(&input.Event{LookY: 50, Moved: true})
	assert.InDelta(t, 5, cm.Pitch, 1e-5)
}
