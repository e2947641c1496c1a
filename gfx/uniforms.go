// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// UniformValue is a value bindable to a named program uniform. The set
// of implementations is closed: Float, Bool, Vec3, Vec4 and Mat4.
type UniformValue interface {
	uniformValue()
}

// Float is a scalar float uniform value.
type Float float32

// Bool is a boolean uniform value.
type Bool bool

// Vec3 is a three component vector uniform value.
type Vec3 glm.Vec3

// Vec4 is a four component vector uniform value.
type Vec4 glm.Vec4

// Mat4 is a 4x4 matrix uniform value, column major.
type Mat4 glm.Mat4

func (Float) uniformValue() {}
func (Bool) uniformValue()  {}
func (Vec3) uniformValue()  {}
func (Vec4) uniformValue()  {}
func (Mat4) uniformValue()  {}

// UniformVisitor receives one named uniform binding per call.
type UniformVisitor func(name string, value UniformValue)

// Uniforms is the capability of producing a set of named uniform
// bindings on demand. Implementations must be pure data extraction:
// no side effects and no graphics calls.
type Uniforms interface {

	// VisitUniforms calls visit once per binding, in a stable order.
	VisitUniforms(visit UniformVisitor)
}

// UniformsPair exposes two uniform producers as one, visiting First's
// bindings and then Second's. Duplicate names are not detected; during
// binding the last write wins, matching the underlying API.
type UniformsPair struct {
	First  Uniforms
	Second Uniforms
}

// VisitUniforms implements Uniforms.
func (p UniformsPair) VisitUniforms(visit UniformVisitor) {
	p.First.VisitUniforms(visit)
	p.Second.VisitUniforms(visit)
}

// NamedUniforms is a literal uniform set, visited in slice order.
// Handy for tests and one-off draws outside the instance pipeline.
type NamedUniforms []NamedUniform

// NamedUniform is one entry of a NamedUniforms set.
type NamedUniform struct {
	Name  string
	Value UniformValue
}

// VisitUniforms implements Uniforms.
func (u NamedUniforms) VisitUniforms(visit UniformVisitor) {
	for _, entry := range u {
		visit(entry.Name, entry.Value)
	}
}
