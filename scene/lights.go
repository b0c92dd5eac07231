// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/stilllife/phong"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultLights returns the sunset lighting: a white key light
// from the right with a dimmed highlight, and an orange fill light
// from the left with no ambient term of its own.
func DefaultLights() phong.Lights {
	half := mgl32.Vec3{0.5, 0.5, 0.5}
	one := mgl32.Vec3{1, 1, 1}
	sunset := mgl32.Vec3{1, 0.5, 0.25}
	return phong.Lights{
		Dir: [phong.NLights]phong.DirLight{
			{
				Direction:    mgl32.Vec3{-5.2, -1, -0.3},
				Ambient:      half,
				Diffuse:      half,
				Specular:     one,
				DiffuseTint:  one,
				SpecularTint: half,
			},
			{
				Direction:    mgl32.Vec3{5.2, -1, 0.3},
				Diffuse:      half,
				Specular:     one,
				DiffuseTint:  sunset,
				SpecularTint: sunset,
			},
		},
		PointPos: [phong.NLights]mgl32.Vec3{{3, 3, 3}, {-3, 3, -3}},
	}
}

// DefaultMaterial returns the material shared by every object,
// before the per-object shininess is applied.
func DefaultMaterial() phong.Material {
	return phong.White(TableShininess)
}
