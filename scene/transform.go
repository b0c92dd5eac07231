// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/go-gl/mathgl/mgl32"

// Axes used by the scene rotations.
var (
	XAxis = mgl32.Vec3{1, 0, 0}
	YAxis = mgl32.Vec3{0, 1, 0}
	ZAxis = mgl32.Vec3{0, 0, 1}
)

// Transform is the placement of one drawn mesh as separate
// translation, rotation and scale matrices.
type Transform struct {
	Translation mgl32.Mat4
	Rotation    mgl32.Mat4
	Scale       mgl32.Mat4
}

// Identity returns a transform that leaves the mesh in place.
func Identity() Transform {
	return Transform{Translation: mgl32.Ident4(), Rotation: mgl32.Ident4(), Scale: mgl32.Ident4()}
}

// Model returns the model matrix Translation * Rotation * Scale,
// so that the mesh is scaled first, then rotated, then translated.
func (tr *Transform) Model() mgl32.Mat4 {
	return tr.Translation.Mul4(tr.Rotation).Mul4(tr.Scale)
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z)
}

// RotateDeg returns a rotation of deg degrees about axis.
func RotateDeg(deg float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize())
}

// RotateRad returns a rotation of rad radians about axis.
func RotateRad(rad float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(rad, axis.Normalize())
}

// Scale3 returns a scale matrix.
func Scale3(x, y, z float32) mgl32.Mat4 {
	return mgl32.Scale3D(x, y, z)
}
