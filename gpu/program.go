// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex and fragment shader program.
type Program struct {

	// ID is the OpenGL program object.
	ID uint32

	// uniform locations by name
	uniforms map[string]int32
}

// NewProgram compiles the given vertex and fragment shader sources and
// links them into a program. The returned error carries the compiler
// or linker log.
func NewProgram(vertSrc, fragSrc string) (*Program, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(id, logLen, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("shader program link failed: %s", strings.TrimRight(log, "\x00"))
	}
	return &Program{ID: id, uniforms: map[string]int32{}}, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// Use makes this the current program.
func (pr *Program) Use() {
	gl.UseProgram(pr.ID)
}

// Location returns the location of the named uniform, which is -1
// if the shader does not use it. Locations are cached.
func (pr *Program) Location(name string) int32 {
	if loc, ok := pr.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(pr.ID, gl.Str(name+"\x00"))
	pr.uniforms[name] = loc
	return loc
}

// SetMat4 sets the named mat4 uniform.
func (pr *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(pr.Location(name), 1, false, &m[0])
}

// SetVec3 sets the named vec3 uniform.
func (pr *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(pr.Location(name), 1, &v[0])
}

// SetFloat sets the named float uniform.
func (pr *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(pr.Location(name), v)
}

// SetInt sets the named int or sampler uniform.
func (pr *Program) SetInt(name string, v int32) {
	gl.Uniform1i(pr.Location(name), v)
}

// Release deletes the program.
func (pr *Program) Release() {
	if pr.ID == 0 {
		return
	}
	gl.DeleteProgram(pr.ID)
	pr.ID = 0
	pr.uniforms = map[string]int32{}
}
