// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the graphics facade the rendering core draws
// through. Backends (see gfx/glr) implement these interfaces; everything
// above them stays free of any concrete graphics API.
package gfx

import (
	"github.com/gloam3d/gloam/model"
)

// Releasable defines any GPU-occupying item that can be freed.
type Releasable interface {

	// Release releases the GPU memory held by the implementing structure.
	Release()
}

// VertexBuffer is a GPU-resident vertex array.
type VertexBuffer interface {
	Releasable

	// Len returns the number of vertices in the buffer.
	Len() int
}

// IndexBuffer is a GPU-resident index array.
type IndexBuffer interface {
	Releasable

	// Len returns the number of indices in the buffer.
	Len() int
}

// Program is a linked GPU shader program.
type Program interface {
	Releasable
}

// Primitive selects how vertices are assembled into primitives.
type Primitive int

// Supported primitive assembly modes.
const (
	Triangles Primitive = iota
	TriangleStrip
	Lines
)

// IndexSource describes how a draw call walks a vertex buffer. When
// Buffer is nil the vertices are drawn in order, without indices.
type IndexSource struct {
	Buffer    IndexBuffer
	Primitive Primitive
}

// Release releases the index buffer, if any.
func (s IndexSource) Release() {
	if s.Buffer != nil {
		s.Buffer.Release()
	}
}

// CullMode selects which triangle winding is discarded.
type CullMode int

// Face culling modes.
const (
	CullNone CullMode = iota
	CullClockwise
	CullCounterClockwise
)

// DepthTest selects the depth comparison applied before a fragment is
// written.
type DepthTest int

// Depth test modes.
const (
	DepthAlways DepthTest = iota
	DepthLess
	DepthLessOrEqual
)

// DrawParameters is the fixed pipeline state applied to one draw call.
type DrawParameters struct {
	Culling    CullMode
	DepthTest  DepthTest
	DepthWrite bool
}

// Facade describes an active graphics device able to allocate geometry
// buffers and link shader programs. It is supplied by the windowing
// collaborator at startup.
type Facade interface {

	// CreateVertexBuffer uploads vertices into a new GPU buffer.
	CreateVertexBuffer(vertices []model.Vertex) (VertexBuffer, error)

	// CreateIndexBuffer uploads indices into a new GPU buffer.
	CreateIndexBuffer(indices []uint32) (IndexBuffer, error)

	// CreateProgram compiles and links a program from GLSL stage sources.
	CreateProgram(vertexSrc, fragmentSrc string) (Program, error)
}

// Surface is any drawable target a frame can be rendered into.
type Surface interface {

	// Draw issues one draw call with the given geometry, program,
	// uniform set and fixed pipeline state.
	Draw(vertices VertexBuffer, indices IndexSource, program Program, uniforms Uniforms, params DrawParameters) error
}
