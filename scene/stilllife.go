// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the still life: a table of every mesh
// instance to draw with its transform, texture and shininess, plus
// the textures and lights. It is plain data with no GPU dependency.
package scene

import (
	"fmt"

	"cogentcore.org/stilllife/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// Object is one mesh instance drawn each frame.
type Object struct {

	// Name identifies the part of the scene the instance belongs to.
	Name string

	// Mesh is the mesh to draw.
	Mesh mesh.ID

	// Transform places the mesh in the world.
	Transform Transform

	// Texture is the texture unit sampled for the surface color.
	Texture int

	// Shininess is the material specular exponent.
	Shininess float32
}

// Shininess of each kind of surface.
const (
	TableShininess    = 999
	BatteryShininess  = 12
	TerminalShininess = 2
	ChargerShininess  = 2
	ProngShininess    = 1
	CDShininess       = 1
	SpeakerShininess  = 1
)

// wedges returns n instances of the given wedge mesh rotated
// step degrees apart about the z axis, after the base rotation.
func wedges(name string, id mesh.ID, n int, step float32, tr, base, sc mgl32.Mat4, tex int, shininess float32) []Object {
	objs := make([]Object, n)
	for i := 0; i < n; i++ {
		objs[i] = Object{
			Name: fmt.Sprintf("%s %d", name, i),
			Mesh: id,
			Transform: Transform{
				Translation: tr,
				Rotation:    base.Mul4(RotateDeg(float32(i)*step, ZAxis)),
				Scale:       sc,
			},
			Texture:   tex,
			Shininess: shininess,
		}
	}
	return objs
}

// StillLife returns every object in the scene in draw order: the
// tabletop, the two batteries each followed by its terminal, the
// charger body and its two prongs, the CD and the speaker.
func StillLife() []Object {
	var objs []Object
	objs = append(objs, Object{
		Name:      "tabletop",
		Mesh:      mesh.PlaneMesh,
		Transform: Identity(),
		Texture:   TabletopTexture,
		Shininess: TableShininess,
	})

	// batteries
	both := Translate(-1.5, 0, -0.5)
	cellScale := Scale3(0.2, 0.2, 1.3)
	termScale := Scale3(0.1, 0.1, 0.09)

	// the battery one yaw of 75 is in radians
	b1 := both.Mul4(Translate(-1, 0.2, 2))
	b1Rot := RotateRad(75, YAxis)
	objs = append(objs, wedges("battery one", mesh.CylinderWallMesh, mesh.CylinderSections, 30, b1, b1Rot, cellScale, BatteryTexture, BatteryShininess)...)
	t1 := Translate(-0.48, 0, 1.15).Mul4(b1)
	objs = append(objs, wedges("terminal one", mesh.CylinderWallMesh, mesh.CylinderSections, 30, t1, b1Rot, termScale, TerminalTexture, TerminalShininess)...)

	b2 := both.Mul4(Translate(-0.3, 0.18, 2.5))
	b2Rot := RotateDeg(-23, ZAxis).Mul4(RotateDeg(270, YAxis))
	objs = append(objs, wedges("battery two", mesh.CylinderWallMesh, mesh.CylinderSections, 30, b2, b2Rot, cellScale, BatteryTexture, BatteryShininess)...)
	t2 := b2.Mul4(Translate(-1.15, 0.48, 0))
	objs = append(objs, wedges("terminal two", mesh.CylinderWallMesh, mesh.CylinderSections, 30, t2, b2Rot, termScale, TerminalTexture, TerminalShininess)...)

	// charger, with the box halved in x and y to span a unit cube
	charger := Translate(3.7, 0, 0.5)
	unit := Scale3(0.5, 0.5, 1)
	// the charger yaw of 12 is in radians
	chargerRot := RotateRad(12, YAxis)
	prongScale := unit.Mul4(Scale3(0.05, 0.5, 0.2))
	objs = append(objs,
		Object{
			Name: "charger",
			Mesh: mesh.CubeMesh,
			Transform: Transform{
				Translation: charger.Mul4(Translate(0, 0.39, 0)),
				Rotation:    chargerRot,
				Scale:       unit.Mul4(Scale3(0.75, 0.75, 0.75)),
			},
			Texture:   ChargerTexture,
			Shininess: ChargerShininess,
		},
		Object{
			Name: "prong one",
			Mesh: mesh.CubeMesh,
			Transform: Transform{
				Translation: charger.Mul4(Translate(0, 1, 0.38)),
				Rotation:    chargerRot,
				Scale:       prongScale,
			},
			Texture:   ProngTexture,
			Shininess: ProngShininess,
		},
		Object{
			Name: "prong two",
			Mesh: mesh.CubeMesh,
			Transform: Transform{
				Translation: charger.Mul4(Translate(-0.33, 1, 0.16)),
				Rotation:    chargerRot,
				Scale:       prongScale,
			},
			Texture:   ProngTexture,
			Shininess: ProngShininess,
		},
	)

	// CD lying flat just above the table
	objs = append(objs, wedges("cd", mesh.FlatCylinderMesh, mesh.FlatCylinderSections, 15,
		Translate(2, 0.002, 1), RotateDeg(90, XAxis), Scale3(2, 2, 0.01), CDTexture, CDShininess)...)

	objs = append(objs, Object{
		Name: "speaker",
		Mesh: mesh.PrismMesh,
		Transform: Transform{
			Translation: Translate(-0.5, 1, -1.5),
			Rotation:    RotateDeg(10, YAxis),
			Scale:       unit.Mul4(Scale3(6.5, 2, 2)),
		},
		Texture:   SpeakerTexture,
		Shininess: SpeakerShininess,
	})
	return objs
}
