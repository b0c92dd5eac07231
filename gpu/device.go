// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu holds the OpenGL resources of the still life: the
// Phong shader program, the uploaded meshes and the textures.
// Everything here must run on the thread that owns the GL context.
package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/stilllife/mesh"
	"cogentcore.org/stilllife/phong"
	"cogentcore.org/stilllife/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Device draws scene objects with the Phong program.
type Device struct {

	// Program is the Phong shader program.
	Program *Program

	// Meshes are the uploaded meshes, indexed by [mesh.ID].
	Meshes []*Mesh

	// Textures are the textures, indexed by unit.
	Textures []*Texture

	// ClearColor is the background color.
	ClearColor mgl32.Vec4
}

// NewDevice compiles the shaders, uploads every mesh and creates
// the textures from imgs, which is indexed like specs and may hold
// nil for images that failed to load.
func NewDevice(specs []scene.TextureSpec, imgs []*image.RGBA) (*Device, error) {
	prog, err := NewProgram(phong.VertexShader, phong.FragmentShader)
	if err != nil {
		return nil, err
	}
	dv := &Device{Program: prog, ClearColor: mgl32.Vec4{0, 0, 0, 1}}
	for id, md := range mesh.BuildAll() {
		ms, err := NewMesh(md)
		if err != nil {
			dv.Release()
			return nil, fmt.Errorf("mesh %v: %w", mesh.ID(id), err)
		}
		dv.Meshes = append(dv.Meshes, ms)
	}
	for i, ts := range specs {
		var img *image.RGBA
		if i < len(imgs) {
			img = imgs[i]
		}
		dv.Textures = append(dv.Textures, NewTexture(ts, img))
	}
	gl.Enable(gl.DEPTH_TEST)
	prog.Use()
	slog.Info("gpu device ready", "meshes", len(dv.Meshes), "textures", len(dv.Textures))
	return dv, nil
}

// SetLights uploads the light uniforms, with the tints
// folded into the diffuse and specular colors.
func (dv *Device) SetLights(lt *phong.Lights) {
	pr := dv.Program
	pr.Use()
	for i := range lt.Dir {
		dl := &lt.Dir[i]
		pr.SetVec3(phong.LightUniform(i, "direction"), dl.Direction)
		pr.SetVec3(phong.LightUniform(i, "ambient"), dl.Ambient)
		pr.SetVec3(phong.LightUniform(i, "diffuse"), dl.TintedDiffuse())
		pr.SetVec3(phong.LightUniform(i, "specular"), dl.TintedSpecular())
		pr.SetVec3(phong.PointPosUniform(i), lt.PointPos[i])
	}
}

// SetMaterial uploads the material uniforms.
func (dv *Device) SetMaterial(mat *phong.Material) {
	pr := dv.Program
	pr.SetVec3(phong.MaterialAmbientUniform, mat.Ambient)
	pr.SetVec3(phong.MaterialDiffuseUniform, mat.Diffuse)
	pr.SetVec3(phong.MaterialSpecularUniform, mat.Specular)
	pr.SetFloat(phong.MaterialShininessUniform, mat.Shininess)
}

// Clear clears the color and depth buffers.
func (dv *Device) Clear() {
	c := dv.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetViewport sets the viewport to the given framebuffer size.
func (dv *Device) SetViewport(size image.Point) {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// SetCamera uploads the view and projection matrices and the
// camera position used for the specular highlights.
func (dv *Device) SetCamera(view, projection mgl32.Mat4, pos mgl32.Vec3) {
	pr := dv.Program
	pr.SetMat4(phong.ViewUniform, view)
	pr.SetMat4(phong.ProjectionUniform, projection)
	pr.SetVec3(phong.CameraPosUniform, pos)
}

// Draw draws one object with the given model matrix.
func (dv *Device) Draw(obj *scene.Object, model mgl32.Mat4) {
	if int(obj.Mesh) >= len(dv.Meshes) {
		return
	}
	pr := dv.Program
	pr.SetFloat(phong.MaterialShininessUniform, obj.Shininess)
	pr.SetInt(phong.TextureUniform, int32(obj.Texture))
	pr.SetMat4(phong.ModelUniform, model)
	dv.Meshes[obj.Mesh].Draw()
}

// SetTexture replaces the image of the texture on the given unit.
func (dv *Device) SetTexture(unit int, img *image.RGBA) {
	if unit < 0 || unit >= len(dv.Textures) {
		return
	}
	dv.Textures[unit].Upload(img)
	slog.Debug("texture uploaded", "unit", unit, "file", dv.Textures[unit].Spec.File)
}

// Release deletes every GPU resource.
func (dv *Device) Release() {
	for _, ms := range dv.Meshes {
		ms.Release()
	}
	for _, tx := range dv.Textures {
		tx.Release()
	}
	if dv.Program != nil {
		dv.Program.Release()
	}
	dv.Meshes = nil
	dv.Textures = nil
}
