// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/chewxy/math32"
)

type v3 = [3]float32
type v2 = [2]float32

// wedgeCorners returns the x and y of the upper wedge corner for a
// cylinder of the given number of sections. The lower corner is (x, -y).
func wedgeCorners(sections int) (x, y float32) {
	half := 360 / float32(sections) / 2
	rad := half * math32.Pi / 180
	return math32.Cos(rad), math32.Sin(rad)
}

// cylinderWedge returns one wedge of a unit-radius cylinder running
// from z=0 to z=1: the two cap triangles and the outer wall quad,
// using the given texture coordinates for each of the 10 vertices.
func cylinderWedge(sections int, uvs [10]v2) *Data {
	x, y := wedgeCorners(sections)
	back := v3{0, 0, -1}
	front := v3{0, 0, 1}
	out := v3{1, 0, 0}

	md := &Data{}
	md.add(v3{0, 0, 0}, uvs[0], back)
	md.add(v3{x, y, 0}, uvs[1], back)
	md.add(v3{x, -y, 0}, uvs[2], back)

	md.add(v3{0, 0, 1}, uvs[3], front)
	md.add(v3{x, y, 1}, uvs[4], front)
	md.add(v3{x, -y, 1}, uvs[5], front)

	md.add(v3{x, y, 1}, uvs[6], out)
	md.add(v3{x, -y, 1}, uvs[7], out)
	md.add(v3{x, y, 0}, uvs[8], out)
	md.add(v3{x, -y, 0}, uvs[9], out)

	md.Indices = []uint16{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
		9, 8, 7,
	}
	return md
}

// CylinderWall returns one wedge of a cylinder with the given number
// of sections, textured for the battery and terminal labels.
// Drawing it sections times, rotated 360/sections degrees apart about z,
// gives a closed cylinder.
func CylinderWall(sections int) *Data {
	return cylinderWedge(sections, [10]v2{
		{0, 0}, {1, 0.1}, {0.1, 0.1},
		{-1.5, -1.5}, {0.9, 0.9}, {0, 0.9},
		{0.9, 0.9}, {0, 0.9}, {1, 0.1}, {0.1, 0.1},
	})
}

// FlatCylinderWall returns one wedge of a cylinder with the given number
// of sections, with the caps textured so that the full disc shows the CD label.
func FlatCylinderWall(sections int) *Data {
	return cylinderWedge(sections, [10]v2{
		{0.5, 0}, {0, 1}, {1, 1},
		{0, 0}, {1, 1}, {0.5, 1},
		{0, 0}, {0, 0}, {0, 0}, {0, 0},
	})
}

// Plane returns a square in the y=0 plane spanning -scale to scale
// in x and z, facing +y.
func Plane(scale float32) *Data {
	up := v3{0, 1, 0}
	md := &Data{}
	md.add(v3{-scale, 0, scale}, v2{0, 1}, up)
	md.add(v3{scale, 0, scale}, v2{1, 1}, up)
	md.add(v3{scale, 0, -scale}, v2{1, 0}, up)
	md.add(v3{-scale, 0, -scale}, v2{0, 0}, up)
	md.Indices = []uint16{
		0, 1, 2,
		0, 3, 2,
	}
	return md
}

// boxFaces are the corners of each face of the box spanning
// x, y in [-1, 1] and z in [0, 1], with the face normals.
var boxFaces = [6]struct {
	corners [4]v3
	normal  v3
}{
	{[4]v3{{-1, 1, 0}, {1, 1, 0}, {1, -1, 0}, {-1, -1, 0}}, v3{0, 0, -1}},
	{[4]v3{{-1, 1, 1}, {1, 1, 1}, {1, -1, 1}, {-1, -1, 1}}, v3{0, 0, 1}},
	{[4]v3{{-1, 1, 0}, {1, 1, 0}, {1, 1, 1}, {-1, 1, 1}}, v3{0, 1, 0}},
	{[4]v3{{1, 1, 1}, {1, -1, 1}, {1, -1, 0}, {1, 1, 0}}, v3{1, 0, 0}},
	{[4]v3{{-1, -1, 0}, {1, -1, 0}, {1, -1, 1}, {-1, -1, 1}}, v3{0, -1, 0}},
	{[4]v3{{-1, 1, 1}, {-1, -1, 1}, {-1, -1, 0}, {-1, 1, 0}}, v3{-1, 0, 0}},
}

// boxIndices are the triangles of the box faces.
var boxIndices = []uint16{
	0, 1, 2, 0, 2, 3,
	4, 5, 6, 4, 6, 7,
	8, 9, 10, 8, 11, 10,
	12, 13, 14, 12, 15, 14,
	16, 17, 18, 16, 19, 18,
	20, 21, 22, 20, 23, 22,
}

// box returns the box with the given texture coordinates per face corner.
func box(uvs [6][4]v2) *Data {
	md := &Data{}
	for fi, f := range boxFaces {
		for ci, c := range f.corners {
			md.add(c, uvs[fi][ci], f.normal)
		}
	}
	md.Indices = append([]uint16(nil), boxIndices...)
	return md
}

// Prism returns the speaker box. The long faces map
// to v in [0.5, 1] of the texture, the top face to v in [0, 0.5], and
// the two ends to the left half of v in [0.5, 1].
func Prism() *Data {
	face := [4]v2{{0, 0.5}, {1, 0.5}, {1, 1}, {0, 1}}
	end := [4]v2{{0.5, 0.5}, {0.5, 1}, {0, 1}, {0, 0.5}}
	return box([6][4]v2{
		face,
		face,
		{{0, 0}, {1, 0}, {1, 0.5}, {0, 0.5}},
		end,
		face,
		end,
	})
}

// Cube returns the charger box. Every face maps to the u in [0, 0.5],
// v in [0.5, 1] quarter of the texture except the top, which maps to
// v in [0, 0.5].
func Cube() *Data {
	side := [4]v2{{0, 1}, {0.5, 1}, {0.5, 0.5}, {0, 0.5}}
	return box([6][4]v2{
		side,
		side,
		{{0, 0}, {0.5, 0}, {0.5, 0.5}, {0, 0.5}},
		side,
		side,
		side,
	})
}
