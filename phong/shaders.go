// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phong provides the two-light Phong lighting model used to
// shade the scene: lights, materials, the GLSL shader sources, and
// [Shade], a CPU version of the fragment shader.
package phong

import (
	_ "embed"
	"fmt"
)

//go:embed shaders/phong.vert
var VertexShader string

//go:embed shaders/phong.frag
var FragmentShader string

// Uniform names used by the shaders.
const (
	ModelUniform      = "model"
	ViewUniform       = "view"
	ProjectionUniform = "projection"
	CameraPosUniform  = "cameraPos"
	TextureUniform    = "tex"

	MaterialAmbientUniform   = "material.ambient"
	MaterialDiffuseUniform   = "material.diffuse"
	MaterialSpecularUniform  = "material.specular"
	MaterialShininessUniform = "material.shininess"
)

// LightUniform returns the uniform name of the given
// field of directional light i, such as "lights[1].diffuse".
func LightUniform(i int, field string) string {
	return fmt.Sprintf("lights[%d].%s", i, field)
}

// PointPosUniform returns the uniform name of point light position i.
func PointPosUniform(i int) string {
	return fmt.Sprintf("pointLightPos[%d]", i)
}
