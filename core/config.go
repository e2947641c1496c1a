// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core carries the engine-wide configuration and the frame
// time service.
package core

// Configuration defines a global engine configuration setting.
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// TimeConfiguration is used to configure time services.
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that are put out.
	// To unlimit, set to 0.
	FramesPerSecond int
}

// RendererConfiguration is used to configure the renderer.
type RendererConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32

	// ClearColor names the background color (SVG 1.1 color names).
	ClearColor string

	VSync bool
}
