// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package object enumerates the fixed catalog of drawable shapes and
// owns their GPU buffer sets.
package object

import (
	"fmt"

	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/shader"
)

// Kind identifies one shape of the catalog. Kind values are dense and
// index directly into the buffer array held by render.Resources.
type Kind int

// The shape catalog. NumKinds is not a shape; it bounds the range.
const (
	Quad Kind = iota
	Cube
	Sphere
	Cylinder
	Cone
	Conduit

	NumKinds
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Quad:
		return "quad"
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Conduit:
		return "conduit"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Buffers owns the GPU geometry of one shape kind: a vertex buffer and
// an index source. Created once during resource construction, immutable
// afterwards.
type Buffers struct {
	Vertices gfx.VertexBuffer
	Indices  gfx.IndexSource
}

// Release frees the GPU buffers.
func (b *Buffers) Release() {
	b.Vertices.Release()
	b.Indices.Release()
}

// CreateBuffers uploads the kind's mesh through the facade. Must be
// called exactly once per kind at startup; buffer allocation failures
// propagate to the caller.
func (k Kind) CreateBuffers(facade gfx.Facade) (*Buffers, error) {
	mesh := k.Mesh()

	vertices, err := facade.CreateVertexBuffer(mesh.Vertices)
	if err != nil {
		return nil, err
	}

	indices := gfx.IndexSource{Primitive: k.primitive()}
	if mesh.Indexed() {
		buffer, err := facade.CreateIndexBuffer(mesh.Indices)
		if err != nil {
			vertices.Release()
			return nil, err
		}
		indices.Buffer = buffer
	}

	return &Buffers{Vertices: vertices, Indices: indices}, nil
}

func (k Kind) primitive() gfx.Primitive {
	if k == Conduit {
		return gfx.TriangleStrip
	}
	return gfx.Triangles
}

// VertexAttributes is the input-vertex layout every catalog mesh
// supplies, in attribute location order.
func VertexAttributes() []shader.VarDef {
	return []shader.VarDef{
		{Name: shader.APosition, Type: shader.Vec3},
		{Name: shader.ANormal, Type: shader.Vec3},
	}
}
