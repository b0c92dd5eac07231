// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strings"
	"testing"

	"cogentcore.org/stilllife/mesh"
	"cogentcore.org/stilllife/phong"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMat4(t *testing.T, want, got mgl32.Mat4, msgs ...any) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), msgs...)
}

func TestModelOrder(t *testing.T) {
	tr := Transform{
		Translation: Translate(1, 2, 3),
		Rotation:    RotateDeg(90, ZAxis),
		Scale:       Scale3(2, 1, 1),
	}
	// scale x by 2, rotate x onto y, then translate
	p := tr.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1, p[0], 1e-6)
	assert.InDelta(t, 4, p[1], 1e-6)
	assert.InDelta(t, 3, p[2], 1e-6)

	id := Identity()
	assert.Equal(t, mgl32.Ident4(), id.Model())
}

func TestRotate(t *testing.T) {
	assertMat4(t, RotateRad(mgl32.DegToRad(30), YAxis), RotateDeg(30, YAxis))
	// the axis is normalized
	assertMat4(t, RotateDeg(30, YAxis), RotateDeg(30, YAxis.Mul(4)))
}

func TestStillLifeCounts(t *testing.T) {
	objs := StillLife()
	require.Len(t, objs, 1+12+12+12+12+1+2+24+1)

	count := map[mesh.ID]int{}
	for _, ob := range objs {
		count[ob.Mesh]++
	}
	assert.Equal(t, 48, count[mesh.CylinderWallMesh])
	assert.Equal(t, 24, count[mesh.FlatCylinderMesh])
	assert.Equal(t, 1, count[mesh.PlaneMesh])
	assert.Equal(t, 3, count[mesh.CubeMesh])
	assert.Equal(t, 1, count[mesh.PrismMesh])

	assert.Equal(t, "tabletop", objs[0].Name)
	assert.Equal(t, "speaker", objs[len(objs)-1].Name)
}

func TestStillLifeModels(t *testing.T) {
	for _, ob := range StillLife() {
		tr := ob.Transform
		want := tr.Translation.Mul4(tr.Rotation.Mul4(tr.Scale))
		assertMat4(t, want, ob.Transform.Model(), ob.Name)
		assert.GreaterOrEqual(t, ob.Texture, 0, ob.Name)
		assert.Less(t, ob.Texture, NTextures, ob.Name)
		assert.Greater(t, ob.Shininess, float32(0), ob.Name)
	}
}

func TestStillLifeMaterials(t *testing.T) {
	want := map[string]struct {
		tex       int
		shininess float32
	}{
		"tabletop":     {TabletopTexture, 999},
		"battery one":  {BatteryTexture, 12},
		"terminal one": {TerminalTexture, 2},
		"battery two":  {BatteryTexture, 12},
		"terminal two": {TerminalTexture, 2},
		"charger":      {ChargerTexture, 2},
		"prong one":    {ProngTexture, 1},
		"prong two":    {ProngTexture, 1},
		"cd":           {CDTexture, 1},
		"speaker":      {SpeakerTexture, 1},
	}
	for _, ob := range StillLife() {
		part := strings.TrimRight(ob.Name, " 0123456789")
		w, ok := want[part]
		require.True(t, ok, ob.Name)
		assert.Equal(t, w.tex, ob.Texture, ob.Name)
		assert.Equal(t, w.shininess, ob.Shininess, ob.Name)
	}
}

func TestWedgeRotations(t *testing.T) {
	objs := StillLife()
	b1 := objs[1:13]
	base := RotateRad(75, YAxis)
	for i, ob := range b1 {
		assertMat4(t, base.Mul4(RotateDeg(float32(30*i), ZAxis)), ob.Transform.Rotation, ob.Name)
		assert.Equal(t, b1[0].Transform.Translation, ob.Transform.Translation)
	}
	// terminal one sits at the battery end
	t1 := objs[13]
	assertMat4(t, Translate(-0.48, 0, 1.15).Mul4(Translate(-1.5, 0, -0.5)).Mul4(Translate(-1, 0.2, 2)), t1.Transform.Translation)

	cd := objs[len(objs)-25 : len(objs)-1]
	for i, ob := range cd {
		assert.Equal(t, mesh.FlatCylinderMesh, ob.Mesh)
		assertMat4(t, RotateDeg(90, XAxis).Mul4(RotateDeg(float32(15*i), ZAxis)), ob.Transform.Rotation, ob.Name)
	}
}

func TestChargerPlacement(t *testing.T) {
	var charger Object
	for _, ob := range StillLife() {
		if ob.Name == "charger" {
			charger = ob
		}
	}
	// the charger origin ends up at (3.7, 0.39, 0.5)
	p := charger.Transform.Model().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 3.7, p[0], 1e-6)
	assert.InDelta(t, 0.39, p[1], 1e-6)
	assert.InDelta(t, 0.5, p[2], 1e-6)
	assertMat4(t, Scale3(0.375, 0.375, 0.75), charger.Transform.Scale)
}

func TestTextures(t *testing.T) {
	tx := Textures()
	require.Len(t, tx, NTextures)
	for i, ts := range tx {
		assert.Equal(t, i, ts.Unit)
	}
	assert.Equal(t, "tabletop.jpg", tx[TabletopTexture].File)
	assert.Equal(t, Repeat, tx[TabletopTexture].Wrap)
	assert.Equal(t, Nearest, tx[BatteryTexture].Filter)
	assert.Equal(t, Nearest, tx[ProngTexture].Filter)
	assert.Equal(t, Linear, tx[CDTexture].Filter)
	assert.Equal(t, ClampToEdge, tx[SpeakerTexture].Wrap)
}

func TestDefaultLights(t *testing.T) {
	lt := DefaultLights()
	key, fill := &lt.Dir[0], &lt.Dir[1]
	assert.Equal(t, mgl32.Vec3{-5.2, -1, -0.3}, key.Direction)
	assert.Equal(t, mgl32.Vec3{5.2, -1, 0.3}, fill.Direction)
	assert.Equal(t, mgl32.Vec3{}, fill.Ambient)
	assert.Equal(t, mgl32.Vec3{3, 3, 3}, lt.PointPos[0])

	// a normal facing the key light gets full diffuse
	n := key.Direction.Mul(-1)
	assert.InDelta(t, 1.0, phong.Diffuse(n, key.Direction), 1e-6)

	mat := DefaultMaterial()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, mat.Diffuse)
	assert.Equal(t, float32(999), mat.Shininess)
}
