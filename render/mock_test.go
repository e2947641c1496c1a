// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render_test

import (
	"errors"

	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/model"
)

type mockBuffer struct {
	count    int
	released bool
}

func (b *mockBuffer) Len() int { return b.count }
func (b *mockBuffer) Release() { b.released = true }

type mockProgram struct {
	vertexSrc   string
	fragmentSrc string
	released    bool
}

func (p *mockProgram) Release() { p.released = true }

// mockFacade counts creations and can be told to fail at a given call.
type mockFacade struct {
	failVertexAt  int // fail the nth CreateVertexBuffer call, 1-based
	failProgramAt int // fail the nth CreateProgram call, 1-based

	vertexCalls  int
	programCalls int

	buffers  []*mockBuffer
	programs []*mockProgram
}

var errMockGPU = errors.New("mock gpu failure")

func (f *mockFacade) CreateVertexBuffer(vertices []model.Vertex) (gfx.VertexBuffer, error) {
	f.vertexCalls++
	if f.failVertexAt != 0 && f.vertexCalls == f.failVertexAt {
		return nil, errMockGPU
	}
	buffer := &mockBuffer{count: len(vertices)}
	f.buffers = append(f.buffers, buffer)
	return buffer, nil
}

func (f *mockFacade) CreateIndexBuffer(indices []uint32) (gfx.IndexBuffer, error) {
	buffer := &mockBuffer{count: len(indices)}
	f.buffers = append(f.buffers, buffer)
	return buffer, nil
}

func (f *mockFacade) CreateProgram(vertexSrc, fragmentSrc string) (gfx.Program, error) {
	f.programCalls++
	if f.failProgramAt != 0 && f.programCalls == f.failProgramAt {
		return nil, errMockGPU
	}
	program := &mockProgram{vertexSrc: vertexSrc, fragmentSrc: fragmentSrc}
	f.programs = append(f.programs, program)
	return program, nil
}

func (f *mockFacade) leaked() bool {
	for _, buffer := range f.buffers {
		if !buffer.released {
			return true
		}
	}
	for _, program := range f.programs {
		if !program.released {
			return true
		}
	}
	return false
}

// drawCall records everything one Draw received, with the uniform set
// flattened in visitation order.
type drawCall struct {
	vertices gfx.VertexBuffer
	indices  gfx.IndexSource
	program  gfx.Program
	names    []string
	values   map[string]gfx.UniformValue
	params   gfx.DrawParameters
}

// mockSurface records draw calls and can fail from a given call on.
type mockSurface struct {
	failAt int // fail the nth Draw call, 1-based
	calls  []drawCall
}

var errMockDraw = errors.New("mock draw failure")

func (s *mockSurface) Draw(vertices gfx.VertexBuffer, indices gfx.IndexSource, program gfx.Program, uniforms gfx.Uniforms, params gfx.DrawParameters) error {
	if s.failAt != 0 && len(s.calls)+1 == s.failAt {
		return errMockDraw
	}
	call := drawCall{
		vertices: vertices,
		indices:  indices,
		program:  program,
		values:   map[string]gfx.UniformValue{},
		params:   params,
	}
	uniforms.VisitUniforms(func(name string, value gfx.UniformValue) {
		call.names = append(call.names, name)
		call.values[name] = value
	})
	s.calls = append(s.calls, call)
	return nil
}
