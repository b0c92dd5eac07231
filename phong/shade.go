// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Diffuse returns the diffuse factor max(N.L, 0) for a surface with
// the given normal lit by a light travelling along dir.
func Diffuse(normal, dir mgl32.Vec3) float32 {
	l := dir.Mul(-1).Normalize()
	return max(normal.Normalize().Dot(l), 0)
}

// Specular returns the specular factor for a surface with the given
// normal, seen along toView (from the surface toward the camera), lit
// by a light travelling along dir.
func Specular(normal, toView, dir mgl32.Vec3, shininess float32) float32 {
	n := normal.Normalize()
	l := dir.Mul(-1).Normalize()
	r := reflect(l.Mul(-1), n)
	return math32.Pow(max(toView.Normalize().Dot(r), 0), shininess)
}

// reflect returns the reflection of the incident vector i
// about the surface normal n.
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

// Shade returns the lit color of a fragment, matching the fragment shader:
// the Phong terms summed over both lights,
// multiplied by the texel color.
func Shade(lt *Lights, mat *Material, normal, fragPos, cameraPos, texel mgl32.Vec3) mgl32.Vec3 {
	toView := cameraPos.Sub(fragPos)
	var ambient, diffuse, specular mgl32.Vec3
	for i := range lt.Dir {
		dl := &lt.Dir[i]
		ambient = ambient.Add(mulElem(dl.Ambient, mat.Ambient))
		d := Diffuse(normal, dl.Direction)
		diffuse = diffuse.Add(mulElem(mat.Diffuse.Mul(d), dl.TintedDiffuse()))
		s := Specular(normal, toView, dl.Direction, mat.Shininess)
		specular = specular.Add(mulElem(mat.Specular.Mul(s), dl.TintedSpecular()))
	}
	return mulElem(ambient.Add(diffuse).Add(specular), texel)
}
