// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/gloam3d/gloam/gfx"
)

// Context is the per-frame state shared by every instance drawn in that
// frame: the camera, the elapsed time and the position of the main
// light. It is owned by the caller and borrowed for one render call.
//
// Context itself satisfies the uniform-producing capability, so the
// draw loop can pair it with any instance's own uniforms.
type Context struct {
	Camera       Camera
	ElapsedTime  float32
	MainLightPos glm.Vec3
}

// VisitUniforms implements gfx.Uniforms.
func (c *Context) VisitUniforms(visit gfx.UniformVisitor) {
	visit("mat_view", gfx.Mat4(c.Camera.View))
	visit("mat_projection", gfx.Mat4(c.Camera.Projection))
	visit("light_pos", gfx.Vec3(c.MainLightPos))
	visit("t", gfx.Float(c.ElapsedTime))
}
