// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/object"
)

// RenderList accumulates the instances of one frame and draws them in
// insertion order. The zero value is ready to use. By convention the
// list is cleared and refilled every frame; the type does not enforce
// it. Not safe for concurrent use.
type RenderList struct {
	instances []Instance
}

// NewRenderList returns an empty render list.
func NewRenderList() *RenderList {
	return &RenderList{}
}

// Add clones params and appends an instance for the given kind.
func (l *RenderList) Add(kind object.Kind, params InstanceParams) {
	l.AddInstance(Instance{Object: kind, Params: params.CloneParams()})
}

// AddInstance appends a pre-built instance.
func (l *RenderList) AddInstance(instance Instance) {
	l.instances = append(l.instances, instance)
}

// Len returns the number of queued instances.
func (l *RenderList) Len() int {
	return len(l.instances)
}

// Clear drops all queued instances.
func (l *RenderList) Clear() {
	l.instances = l.instances[:0]
}

// Render draws the queued instances through the default pipeline
// program.
func (l *RenderList) Render(resources *Resources, context *Context, target gfx.Surface) error {
	return l.RenderWith(resources.Program(), resources, context, target)
}

// RenderWith draws the queued instances with the given program, in
// insertion order, one draw call per instance. Each call binds the pair
// of context uniforms and the instance's own uniforms, with fixed
// pipeline state: clockwise backface culling, depth test "less", depth
// write on. The first failing draw aborts the rest of the list.
//
// No sorting or batching by object or material is performed.
func (l *RenderList) RenderWith(program gfx.Program, resources *Resources, context *Context, target gfx.Surface) error {
	params := gfx.DrawParameters{
		Culling:    gfx.CullClockwise,
		DepthTest:  gfx.DepthLess,
		DepthWrite: true,
	}

	for i, instance := range l.instances {
		buffers := resources.ObjectBuffers(instance.Object)
		uniforms := gfx.UniformsPair{First: context, Second: instance.Params}

		if err := target.Draw(buffers.Vertices, buffers.Indices, program, uniforms, params); err != nil {
			return &DrawError{Index: i, Object: instance.Object, Err: err}
		}
	}
	return nil
}
