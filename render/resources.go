// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/object"
)

// Resources owns the compiled pipeline programs and the GPU buffers of
// every catalog shape. Created once at startup, read-only afterwards;
// it outlives every per-frame render list.
type Resources struct {
	objectBuffers  []*object.Buffers
	program        gfx.Program
	conduitProgram gfx.Program
}

// CreateResources builds buffers for the full kind range and links the
// pipeline programs. The first error aborts construction, releases
// whatever was already created and is returned; no partial Resources
// value is ever handed out.
func CreateResources(facade gfx.Facade) (*Resources, error) {
	res := &Resources{
		objectBuffers: make([]*object.Buffers, 0, object.NumKinds),
	}

	for kind := object.Kind(0); kind < object.NumKinds; kind++ {
		buffers, err := kind.CreateBuffers(facade)
		if err != nil {
			res.Release()
			return nil, &ObjectCreationError{Kind: kind, Err: err}
		}
		res.objectBuffers = append(res.objectBuffers, buffers)
	}

	layout := object.VertexAttributes()

	core := DefaultCore()
	program, err := core.Link(facade, layout)
	if err != nil {
		res.Release()
		return nil, &ProgramCreationError{Pipeline: "default", Err: err}
	}
	res.program = program

	conduitCore := ConduitCore()
	conduitProgram, err := conduitCore.Link(facade, layout)
	if err != nil {
		res.Release()
		return nil, &ProgramCreationError{Pipeline: "conduit", Err: err}
	}
	res.conduitProgram = conduitProgram

	return res, nil
}

// ObjectBuffers resolves a kind to its buffer set. Total over valid
// kinds; an out-of-range kind is a programming error and panics.
func (r *Resources) ObjectBuffers(kind object.Kind) *object.Buffers {
	return r.objectBuffers[kind]
}

// Program returns the default pipeline program.
func (r *Resources) Program() gfx.Program {
	return r.program
}

// ConduitProgram returns the conduit pipeline program.
func (r *Resources) ConduitProgram() gfx.Program {
	return r.conduitProgram
}

// Release frees every buffer and program held.
func (r *Resources) Release() {
	for _, buffers := range r.objectBuffers {
		buffers.Release()
	}
	r.objectBuffers = nil
	if r.program != nil {
		r.program.Release()
		r.program = nil
	}
	if r.conduitProgram != nil {
		r.conduitProgram.Release()
		r.conduitProgram = nil
	}
}
