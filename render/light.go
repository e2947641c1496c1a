// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/gloam3d/gloam/gfx"
)

// Light is the instance parameter set of light markers. At most one
// light per frame should set IsMain; its position feeds the context's
// light_pos uniform.
type Light struct {
	Position    glm.Vec3
	Attenuation glm.Vec3
	Color       glm.Vec3
	IsMain      bool
}

// VisitUniforms implements gfx.Uniforms.
func (l Light) VisitUniforms(visit gfx.UniformVisitor) {
	visit("light_position", gfx.Vec3(l.Position))
	visit("light_attenuation", gfx.Vec3(l.Attenuation))
	visit("light_color", gfx.Vec3(l.Color))
	visit("light_is_main", gfx.Bool(l.IsMain))
}

// CloneParams implements InstanceParams.
func (l Light) CloneParams() InstanceParams {
	return l
}
