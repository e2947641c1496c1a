// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/shader"
)

// ConduitParams are the instance parameters of the animated ribbon
// pipeline. Phase offsets the spin; Start and End clip the visible
// span of the ribbon in [0, 1] along its length.
type ConduitParams struct {
	Transform glm.Mat4
	Color     glm.Vec4
	Phase     float32
	Start     float32
	End       float32
}

// NewConduitParams returns params with an identity transform and the
// full span visible.
func NewConduitParams() ConduitParams {
	return ConduitParams{
		Transform: glm.Ident4(),
		Color:     glm.Vec4{1, 1, 1, 1},
		Start:     0,
		End:       1,
	}
}

// VisitUniforms implements gfx.Uniforms.
func (p ConduitParams) VisitUniforms(visit gfx.UniformVisitor) {
	visit("mat_model", gfx.Mat4(p.Transform))
	visit("color", gfx.Vec4(p.Color))
	visit("phase", gfx.Float(p.Phase))
	visit("start", gfx.Float(p.Start))
	visit("end", gfx.Float(p.End))
}

// CloneParams implements InstanceParams.
func (p ConduitParams) CloneParams() InstanceParams {
	return p
}

const vDiscard = "v_discard"

func vDiscardDef() shader.OutDef {
	return shader.OutDef{VarDef: shader.VarDef{Name: vDiscard, Type: shader.Float}, Qualifier: shader.Smooth}
}

// ConduitCore is the shader core of the conduit pipeline: the ribbon
// mesh is rolled into a thin tube spinning around its x axis, and the
// fragment stage discards everything outside the [start, end] window.
func ConduitCore() shader.Core {
	vertex := shader.VertexCore{
		Uniforms: []shader.VarDef{
			{Name: "mat_model", Type: shader.Mat4},
			{Name: "mat_view", Type: shader.Mat4},
			{Name: "mat_projection", Type: shader.Mat4},
			{Name: "t", Type: shader.Float},
			{Name: "phase", Type: shader.Float},
			{Name: "start", Type: shader.Float},
			{Name: "end", Type: shader.Float},
		},
		Attributes: []shader.VarDef{
			{Name: shader.APosition, Type: shader.Vec3},
			{Name: shader.ANormal, Type: shader.Vec3},
		},
		OutDefs: []shader.OutDef{
			shader.VWorldNormalDef(),
			shader.VWorldPosDef(),
			vDiscardDef(),
		},
		Defs: `
			const float PI = 3.141592;
			const float radius = 0.15;
			const float scale = 0.02;
		`,
		Body: `
			float angle = (position.x + 0.5 + t) * 2.0 * PI + phase;
			float rot_s = sin(angle);
			float rot_c = cos(angle);
			mat2 rot_m = mat2(rot_c, -rot_s, rot_s, rot_c);

			vec3 scaled_pos = position;
			scaled_pos.yz *= scale;
			scaled_pos.z += radius;
			scaled_pos.yz = rot_m * scaled_pos.yz;

			vec3 rot_normal = normal;
			rot_normal.yz = rot_m * rot_normal.yz;

			if (0.5 - position.x < start || 0.5 - position.x > end)
				v_discard = 1.0;
			else
				v_discard = 0.0;
		`,
		OutExprs: map[string]string{
			shader.VWorldNormal: "normalize(transpose(inverse(mat3(mat_model))) * rot_normal)",
			shader.VWorldPos:    "mat_model * vec4(scaled_pos, 1.0)",
			shader.VPosition:    "mat_projection * mat_view * v_world_pos",
		},
	}

	fragment := shader.FragmentCore{
		Uniforms: []shader.VarDef{
			{Name: "color", Type: shader.Vec4},
		},
		InDefs: []shader.OutDef{
			vDiscardDef(),
		},
		OutDefs: []shader.OutDef{
			shader.FColorDef(),
		},
		Body: `
			if (v_discard >= 0.5)
				discard;
		`,
		OutExprs: map[string]string{
			shader.FColor: "color",
		},
	}

	return shader.Core{Vertex: vertex, Fragment: fragment}
}
