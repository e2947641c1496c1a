// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Camera carries the view and projection transforms shared by every
// draw of one frame.
type Camera struct {
	View       glm.Mat4
	Projection glm.Mat4
}

// NewCamera builds a camera from an eye position looking at target,
// with a perspective projection. fovy is in degrees.
func NewCamera(eye, target, up glm.Vec3, fovy, aspect, near, far float32) Camera {
	return Camera{
		View:       glm.LookAtV(eye, target, up),
		Projection: glm.Perspective(glm.DegToRad(fovy), aspect, near, far),
	}
}
