// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package shader composes GLSL programs out of independently authored
// stage fragments. A fragment declares the inputs it consumes, the
// outputs it produces and the expressions computing them; composition
// stitches vertex and fragment stages into one linkable program and
// rejects interface mismatches before anything reaches the GPU.
package shader

// Type is the GLSL type of a declared variable.
type Type int

// Supported variable types.
const (
	Float Type = iota
	Vec2
	Vec3
	Vec4
	Mat4
	Bool
)

// String returns the GLSL spelling of the type.
func (t Type) String() string {
	switch t {
	case Float:
		return "float"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Mat4:
		return "mat4"
	case Bool:
		return "bool"
	}
	return "unknown"
}

// Qualifier is the interpolation qualifier of a stage output.
type Qualifier int

// Interpolation qualifiers.
const (
	Smooth Qualifier = iota
	Flat
)

// String returns the GLSL spelling of the qualifier.
func (q Qualifier) String() string {
	switch q {
	case Smooth:
		return "smooth"
	case Flat:
		return "flat"
	}
	return "unknown"
}

// VarDef declares a named variable: a uniform, an attribute or a stage
// input.
type VarDef struct {
	Name string
	Type Type
}

// OutDef declares a stage output together with its interpolation
// qualifier. Vertex outputs become varyings consumed by the fragment
// stage under the same name.
type OutDef struct {
	VarDef
	Qualifier Qualifier
}

// Well-known output names shared by every pipeline in the engine. These
// names are the wire contract between composed stage fragments: a
// fragment stage may consume them from any vertex stage declaring them.
const (
	VWorldNormal = "v_world_normal"
	VWorldPos    = "v_world_pos"
	VPosition    = "gl_Position"
	FColor       = "f_color"
)

// Attribute names supplied by the input-vertex layout.
const (
	APosition = "position"
	ANormal   = "normal"
)

// VWorldNormalDef declares the interpolated world-space normal output.
func VWorldNormalDef() OutDef {
	return OutDef{VarDef{VWorldNormal, Vec3}, Smooth}
}

// VWorldPosDef declares the interpolated world-space position output.
func VWorldPosDef() OutDef {
	return OutDef{VarDef{VWorldPos, Vec4}, Smooth}
}

// FColorDef declares the final fragment color output.
func FColorDef() OutDef {
	return OutDef{VarDef{FColor, Vec4}, Smooth}
}

// VertexCore is a composable vertex stage fragment.
type VertexCore struct {

	// Uniforms the stage consumes, declared in order.
	Uniforms []VarDef

	// Attributes the stage reads from the input-vertex layout.
	Attributes []VarDef

	// Defs is shared GLSL text (constants, helper functions) emitted
	// before the stage body.
	Defs string

	// OutDefs declares the stage outputs, in emission order.
	OutDefs []OutDef

	// Body computes local values; it may also assign declared outputs
	// that have no entry in OutExprs.
	Body string

	// OutExprs binds output names to the expressions computing them.
	// Keys must be declared in OutDefs or be gl_ built-ins.
	OutExprs map[string]string
}

// FragmentCore is a composable fragment stage fragment.
type FragmentCore struct {

	// Uniforms the stage consumes, declared in order.
	Uniforms []VarDef

	// InDefs declares the varyings expected from the vertex stage. Each
	// must match a vertex stage output by name, type and qualifier.
	InDefs []OutDef

	// Defs is shared GLSL text emitted before the stage body.
	Defs string

	// OutDefs declares the stage outputs, in emission order.
	OutDefs []OutDef

	// Body computes local values.
	Body string

	// OutExprs binds output names to the expressions computing them.
	OutExprs map[string]string
}

// Core pairs the vertex and fragment stage fragments forming one
// linkable program.
type Core struct {
	Vertex   VertexCore
	Fragment FragmentCore
}
