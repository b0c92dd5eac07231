// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the vertex layout and the literal
// vertex and index data for each shape in the still life.
package mesh

import (
	"fmt"

	"cogentcore.org/stilllife/base/errors"
	"github.com/chewxy/math32"
)

// Data holds the interleaved vertex values and triangle
// indices of one mesh, laid out according to [Layout].
type Data struct {

	// Vertices are the interleaved vertex values,
	// [FloatsPerVertex] per vertex.
	Vertices []float32

	// Indices are the vertex indices of each triangle.
	Indices []uint16
}

// NumVertices returns the number of vertices.
func (md *Data) NumVertices() int {
	return len(md.Vertices) / FloatsPerVertex
}

// NumIndices returns the number of indices.
func (md *Data) NumIndices() int {
	return len(md.Indices)
}

// Vertex is one unpacked vertex of a mesh.
type Vertex struct {
	Pos      [3]float32
	Color    [4]float32
	TexCoord [2]float32
	Normal   [3]float32
}

// Vertex returns the vertex at index i.
func (md *Data) Vertex(i int) Vertex {
	v := md.Vertices[i*FloatsPerVertex:]
	return Vertex{
		Pos:      [3]float32{v[0], v[1], v[2]},
		Color:    [4]float32{v[3], v[4], v[5], v[6]},
		TexCoord: [2]float32{v[7], v[8]},
		Normal:   [3]float32{v[9], v[10], v[11]},
	}
}

// add appends a vertex with a white color.
func (md *Data) add(pos [3]float32, uv [2]float32, norm [3]float32) {
	md.Vertices = append(md.Vertices,
		pos[0], pos[1], pos[2],
		1, 1, 1, 1,
		uv[0], uv[1],
		norm[0], norm[1], norm[2])
}

// Validate returns an error if the vertex array is not a whole
// number of vertices, if any normal is not of unit length or if
// any index is out of range.
func (md *Data) Validate() error {
	if len(md.Vertices)%FloatsPerVertex != 0 {
		return fmt.Errorf("mesh: %d vertex values is not a multiple of %d", len(md.Vertices), FloatsPerVertex)
	}
	if len(md.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a multiple of 3", len(md.Indices))
	}
	n := md.NumVertices()
	for i := 0; i < n; i++ {
		nm := md.Vertex(i).Normal
		if l := math32.Sqrt(nm[0]*nm[0] + nm[1]*nm[1] + nm[2]*nm[2]); math32.Abs(l-1) > 1e-4 {
			return fmt.Errorf("mesh: vertex %d normal %v is not unit length", i, nm)
		}
	}
	for i, ix := range md.Indices {
		if int(ix) >= n {
			return fmt.Errorf("mesh: index %d at %d is out of range for %d vertices", ix, i, n)
		}
	}
	return nil
}

// ID identifies one of the meshes used by the scene.
type ID int32

const (
	// CylinderWallMesh is one wedge of a battery or terminal.
	CylinderWallMesh ID = iota

	// FlatCylinderMesh is one wedge of the CD.
	FlatCylinderMesh

	// PlaneMesh is the tabletop.
	PlaneMesh

	// PrismMesh is the speaker.
	PrismMesh

	// CubeMesh is the charger body and prongs.
	CubeMesh

	// IDsN is the number of mesh IDs.
	IDsN
)

var idNames = [...]string{"CylinderWall", "FlatCylinder", "Plane", "Prism", "Cube"}

func (id ID) String() string {
	if id < 0 || id >= IDsN {
		return fmt.Sprintf("ID(%d)", int32(id))
	}
	return idNames[id]
}

// Scene shape parameters.
const (
	CylinderSections     = 12
	FlatCylinderSections = 24
	PlaneScale           = 5
)

// Build returns the data for the given mesh, with the shape
// parameters used by the scene.
func Build(id ID) *Data {
	switch id {
	case CylinderWallMesh:
		return CylinderWall(CylinderSections)
	case FlatCylinderMesh:
		return FlatCylinderWall(FlatCylinderSections)
	case PlaneMesh:
		return Plane(PlaneScale)
	case PrismMesh:
		return Prism()
	case CubeMesh:
		return Cube()
	}
	errors.Log(fmt.Errorf("mesh.Build: unknown mesh %v", id))
	return nil
}

// BuildAll returns the data for every mesh, indexed by [ID].
func BuildAll() []*Data {
	all := make([]*Data, IDsN)
	for id := ID(0); id < IDsN; id++ {
		all[id] = Build(id)
	}
	return all
}
