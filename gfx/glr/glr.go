// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glr implements the gfx facade on OpenGL 4.1 core. The caller
// owns window and context creation; an active context must be current
// on the calling thread before New and for every call after it.
package glr

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/model"
	"github.com/gloam3d/gloam/shader"
)

// New initialises the OpenGL bindings and returns a backend.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glr: initialising bindings: %w", err)
	}
	return &Backend{}, nil
}

// Backend implements gfx.Facade on OpenGL.
type Backend struct{}

type vertexBuffer struct {
	vao   uint32
	vbo   uint32
	count int
}

func (b *vertexBuffer) Len() int {
	return b.count
}

func (b *vertexBuffer) Release() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}

type indexBuffer struct {
	ebo   uint32
	count int
}

func (b *indexBuffer) Len() int {
	return b.count
}

func (b *indexBuffer) Release() {
	gl.DeleteBuffers(1, &b.ebo)
}

// Program implements gfx.Program with a uniform location cache.
type Program struct {
	id        uint32
	locations map[string]int32
}

// Release implements gfx.Releasable.
func (p *Program) Release() {
	gl.DeleteProgram(p.id)
}

func (p *Program) location(name string) int32 {
	if location, ok := p.locations[name]; ok {
		return location
	}
	location := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = location
	return location
}

// CreateVertexBuffer implements gfx.Facade. The buffer carries its own
// vertex array with the engine's fixed attribute layout: location 0 is
// the position, location 1 the normal.
func (b *Backend) CreateVertexBuffer(vertices []model.Vertex) (gfx.VertexBuffer, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("glr: empty vertex data")
	}

	buffer := &vertexBuffer{count: len(vertices)}
	stride := int32(unsafe.Sizeof(model.Vertex{}))

	gl.GenVertexArrays(1, &buffer.vao)
	gl.BindVertexArray(buffer.vao)

	gl.GenBuffers(1, &buffer.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(model.Vertex{}.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(model.Vertex{}.Normal))))

	gl.BindVertexArray(0)

	if err := glError("CreateVertexBuffer"); err != nil {
		buffer.Release()
		return nil, err
	}
	return buffer, nil
}

// CreateIndexBuffer implements gfx.Facade.
func (b *Backend) CreateIndexBuffer(indices []uint32) (gfx.IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("glr: empty index data")
	}

	buffer := &indexBuffer{count: len(indices)}
	gl.GenBuffers(1, &buffer.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffer.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if err := glError("CreateIndexBuffer"); err != nil {
		buffer.Release()
		return nil, err
	}
	return buffer, nil
}

// CreateProgram implements gfx.Facade. Attribute locations are bound to
// the engine's fixed vertex layout before linking.
func (b *Backend) CreateProgram(vertexSrc, fragmentSrc string) (gfx.Program, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.BindAttribLocation(id, 0, gl.Str(shader.APosition+"\x00"))
	gl.BindAttribLocation(id, 1, gl.Str(shader.ANormal+"\x00"))
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(id, logLen, nil, &log[0])
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("glr: link: %s", string(log[:logLen]))
	}

	return &Program{id: id, locations: make(map[string]int32)}, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	id := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(id, logLen, nil, &log[0])
		gl.DeleteShader(id)
		return 0, fmt.Errorf("glr: %s shader: %s", name, string(log[:logLen]))
	}
	return id, nil
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glr: %s: gl error 0x%04x", op, code)
	}
	return nil
}
