// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gloam3d/gloam/gfx"
)

// Screen is the default framebuffer as a drawable surface.
type Screen struct {
	width  int32
	height int32
}

// NewScreen returns a surface for the default framebuffer with the
// given drawable size.
func (b *Backend) NewScreen(width, height int) *Screen {
	return &Screen{width: int32(width), height: int32(height)}
}

// Resize updates the drawable size after a window resize.
func (s *Screen) Resize(width, height int) {
	s.width = int32(width)
	s.height = int32(height)
}

// Clear resets color and depth of the whole surface.
func (s *Screen) Clear(r, g, b, a float32) {
	gl.Viewport(0, 0, s.width, s.height)
	gl.ClearColor(r, g, b, a)
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw implements gfx.Surface.
func (s *Screen) Draw(vertices gfx.VertexBuffer, indices gfx.IndexSource, program gfx.Program, uniforms gfx.Uniforms, params gfx.DrawParameters) error {
	vb, ok := vertices.(*vertexBuffer)
	if !ok {
		return fmt.Errorf("glr: vertex buffer from a different backend")
	}
	prog, ok := program.(*Program)
	if !ok {
		return fmt.Errorf("glr: program from a different backend")
	}

	gl.UseProgram(prog.id)
	uniforms.VisitUniforms(func(name string, value gfx.UniformValue) {
		bindUniform(prog, name, value)
	})

	applyDrawParameters(params)

	gl.BindVertexArray(vb.vao)
	mode := primitiveMode(indices.Primitive)
	if indices.Buffer != nil {
		ib, ok := indices.Buffer.(*indexBuffer)
		if !ok {
			return fmt.Errorf("glr: index buffer from a different backend")
		}
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.ebo)
		gl.DrawElements(mode, int32(ib.count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mode, 0, int32(vb.count))
	}
	gl.BindVertexArray(0)

	return glError("Draw")
}

func bindUniform(prog *Program, name string, value gfx.UniformValue) {
	location := prog.location(name)
	if location < 0 {
		// Inactive uniform: pipeline-specific extras riding through a
		// shared program land here and are skipped.
		return
	}
	switch v := value.(type) {
	case gfx.Float:
		gl.Uniform1f(location, float32(v))
	case gfx.Bool:
		var i int32
		if v {
			i = 1
		}
		gl.Uniform1i(location, i)
	case gfx.Vec3:
		gl.Uniform3f(location, v[0], v[1], v[2])
	case gfx.Vec4:
		gl.Uniform4f(location, v[0], v[1], v[2], v[3])
	case gfx.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	}
}

func primitiveMode(primitive gfx.Primitive) uint32 {
	switch primitive {
	case gfx.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case gfx.Lines:
		return gl.LINES
	default:
		return gl.TRIANGLES
	}
}

func applyDrawParameters(params gfx.DrawParameters) {
	switch params.Culling {
	case gfx.CullNone:
		gl.Disable(gl.CULL_FACE)
	case gfx.CullClockwise:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.BACK)
	case gfx.CullCounterClockwise:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CW)
		gl.CullFace(gl.BACK)
	}

	switch params.DepthTest {
	case gfx.DepthAlways:
		gl.Disable(gl.DEPTH_TEST)
	case gfx.DepthLess:
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	case gfx.DepthLessOrEqual:
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LEQUAL)
	}

	gl.DepthMask(params.DepthWrite)
}
