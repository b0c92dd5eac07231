// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/stilllife/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is mesh data uploaded to GPU buffers: a vertex array with
// one vertex buffer laid out by [mesh.Layout] and one index buffer.
type Mesh struct {
	vao, vbo, ebo uint32

	// NIndices is the number of indices drawn.
	NIndices int32
}

// NewMesh uploads the given mesh data.
func NewMesh(md *mesh.Data) (*Mesh, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	ms := &Mesh{NIndices: int32(md.NumIndices())}
	gl.GenVertexArrays(1, &ms.vao)
	gl.BindVertexArray(ms.vao)

	gl.GenBuffers(1, &ms.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, ms.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(md.Vertices)*4, gl.Ptr(md.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &ms.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ms.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(md.Indices)*2, gl.Ptr(md.Indices), gl.STATIC_DRAW)

	for _, at := range mesh.Layout {
		gl.VertexAttribPointerWithOffset(at.Location, at.Size, gl.FLOAT, false, mesh.Stride, uintptr(at.Offset))
		gl.EnableVertexAttribArray(at.Location)
	}
	gl.BindVertexArray(0)
	if err := glError("upload mesh"); err != nil {
		ms.Release()
		return nil, err
	}
	return ms, nil
}

// Draw draws the mesh triangles with the current program.
func (ms *Mesh) Draw() {
	gl.BindVertexArray(ms.vao)
	gl.DrawElements(gl.TRIANGLES, ms.NIndices, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// Release deletes the buffers and the vertex array.
func (ms *Mesh) Release() {
	if ms.vao == 0 {
		return
	}
	gl.DeleteBuffers(1, &ms.vbo)
	gl.DeleteBuffers(1, &ms.ebo)
	gl.DeleteVertexArrays(1, &ms.vao)
	ms.vao, ms.vbo, ms.ebo = 0, 0, 0
}

// glError returns an error if OpenGL has recorded one.
func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gpu: %s: OpenGL error 0x%x", op, code)
	}
	return nil
}
