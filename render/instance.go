// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/object"
)

// InstanceParams is the capability every per-instance parameter type
// implements: it produces named uniform bindings and can be copied into
// a render list so the list owns its values. The draw loop is generic
// over this interface; new parameter types need no changes there.
type InstanceParams interface {
	gfx.Uniforms

	// CloneParams returns a copy owned by the caller.
	CloneParams() InstanceParams
}

// Instance is one draw request for a frame: a shape kind paired with
// the parameters to draw it with.
type Instance struct {
	Object object.Kind
	Params InstanceParams
}

// DefaultParams are the instance parameters of the plain object
// pipeline: a model transform and a color.
type DefaultParams struct {
	Transform glm.Mat4
	Color     glm.Vec4
}

// NewDefaultParams returns params with an identity transform and opaque
// white color.
func NewDefaultParams() DefaultParams {
	return DefaultParams{
		Transform: glm.Ident4(),
		Color:     glm.Vec4{1, 1, 1, 1},
	}
}

// VisitUniforms implements gfx.Uniforms.
func (p DefaultParams) VisitUniforms(visit gfx.UniformVisitor) {
	visit("mat_model", gfx.Mat4(p.Transform))
	visit("color", gfx.Vec4(p.Color))
}

// CloneParams implements InstanceParams.
func (p DefaultParams) CloneParams() InstanceParams {
	return p
}
