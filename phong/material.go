// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import "github.com/go-gl/mathgl/mgl32"

// Material is the surface response to light. The surface
// color itself comes from the texture.
type Material struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	// Shininess is the specular exponent: higher values give a
	// smaller, more focused highlight.
	Shininess float32
}

// White returns a material that passes all light
// through at full strength, with the given shininess.
func White(shininess float32) Material {
	w := mgl32.Vec3{1, 1, 1}
	return Material{Ambient: w, Diffuse: w, Specular: w, Shininess: shininess}
}
