// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Number of float32 values in each vertex attribute.
const (
	PositionSize = 3
	ColorSize    = 4
	TexCoordSize = 2
	NormalSize   = 3

	// FloatsPerVertex is the number of float32 values in one vertex.
	FloatsPerVertex = PositionSize + ColorSize + TexCoordSize + NormalSize

	// Stride is the size of one vertex in bytes.
	Stride = FloatsPerVertex * 4
)

// Attribute describes one interleaved vertex attribute.
type Attribute struct {

	// Name is the shader input name.
	Name string

	// Location is the shader input location.
	Location uint32

	// Size is the number of float32 components.
	Size int32

	// Offset is the byte offset from the start of the vertex.
	Offset int
}

// Layout is the vertex layout shared by every mesh:
// position, color, texture coordinate and normal, in that order.
var Layout = []Attribute{
	{Name: "aPos", Location: 0, Size: PositionSize, Offset: 0},
	{Name: "aColor", Location: 1, Size: ColorSize, Offset: PositionSize * 4},
	{Name: "aTexCoord", Location: 2, Size: TexCoordSize, Offset: (PositionSize + ColorSize) * 4},
	{Name: "aNormal", Location: 3, Size: NormalSize, Offset: (PositionSize + ColorSize + TexCoordSize) * 4},
}
