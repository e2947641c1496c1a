// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"github.com/gloam3d/gloam/shader"
)

// DefaultCore is the shader core of the plain object pipeline: objects
// transformed by mat_model, shaded by one point light with an ambient
// floor.
func DefaultCore() shader.Core {
	vertex := shader.VertexCore{
		Uniforms: []shader.VarDef{
			{Name: "mat_model", Type: shader.Mat4},
			{Name: "mat_view", Type: shader.Mat4},
			{Name: "mat_projection", Type: shader.Mat4},
		},
		Attributes: []shader.VarDef{
			{Name: shader.APosition, Type: shader.Vec3},
			{Name: shader.ANormal, Type: shader.Vec3},
		},
		OutDefs: []shader.OutDef{
			shader.VWorldNormalDef(),
			shader.VWorldPosDef(),
		},
		OutExprs: map[string]string{
			shader.VWorldNormal: "normalize(transpose(inverse(mat3(mat_model))) * normal)",
			shader.VWorldPos:    "mat_model * vec4(position, 1.0)",
			shader.VPosition:    "mat_projection * mat_view * v_world_pos",
		},
	}

	fragment := shader.FragmentCore{
		Uniforms: []shader.VarDef{
			{Name: "color", Type: shader.Vec4},
			{Name: "light_pos", Type: shader.Vec3},
		},
		InDefs: []shader.OutDef{
			shader.VWorldNormalDef(),
			shader.VWorldPosDef(),
		},
		OutDefs: []shader.OutDef{
			shader.FColorDef(),
		},
		Defs: `
			const float ambient = 0.3;
		`,
		Body: `
			vec3 light_dir = normalize(light_pos - v_world_pos.xyz);
			float diffuse = max(dot(normalize(v_world_normal), light_dir), 0.0);
		`,
		OutExprs: map[string]string{
			shader.FColor: "vec4((ambient + diffuse) * color.rgb, color.a)",
		},
	}

	return shader.Core{Vertex: vertex, Fragment: fragment}
}
