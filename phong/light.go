// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import "github.com/go-gl/mathgl/mgl32"

// NLights is the number of directional lights.
const NLights = 2

// DirLight is a directional light: it shines along
// Direction with no positional falloff.
type DirLight struct {

	// Direction is the direction the light travels in world coordinates.
	Direction mgl32.Vec3

	// Ambient is the ambient color contributed regardless of orientation.
	Ambient mgl32.Vec3

	// Diffuse is the diffuse color, before the tint.
	Diffuse mgl32.Vec3

	// Specular is the specular color, before the tint.
	Specular mgl32.Vec3

	// DiffuseTint scales Diffuse per channel.
	DiffuseTint mgl32.Vec3

	// SpecularTint scales Specular per channel.
	SpecularTint mgl32.Vec3
}

// TintedDiffuse returns Diffuse scaled by DiffuseTint.
func (dl *DirLight) TintedDiffuse() mgl32.Vec3 {
	return mulElem(dl.Diffuse, dl.DiffuseTint)
}

// TintedSpecular returns Specular scaled by SpecularTint.
func (dl *DirLight) TintedSpecular() mgl32.Vec3 {
	return mulElem(dl.Specular, dl.SpecularTint)
}

// Lights are the lights of the scene.
type Lights struct {

	// Dir are the directional lights: the key light then the fill light.
	Dir [NLights]DirLight

	// PointPos are point light positions. They are uploaded
	// with the other light uniforms but no light uses them.
	PointPos [NLights]mgl32.Vec3
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
