// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package model holds the CPU-side geometry types shared by the object
// catalog, the graphics facade and the asset importers.
package model

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is the vertex layout every pipeline in the engine consumes:
// an object-space position and an object-space normal.
type Vertex struct {
	Position glm.Vec3
	Normal   glm.Vec3
}

// Mesh is an indexed triangle mesh. Indices may be empty, in which case
// vertices are drawn in order.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Indexed reports whether the mesh carries an explicit index list.
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}
