// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

import (
	"github.com/chewxy/math32"
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/gloam3d/gloam/model"
)

// Tessellation levels for the curved shapes.
const (
	sphereRings     = 16
	sphereSectors   = 24
	cylinderSectors = 24
	coneSectors     = 24
	conduitSegments = 32
)

// Mesh builds the kind's unit mesh: every shape fits the unit cube
// centered on the origin. Front faces wind counter-clockwise.
func (k Kind) Mesh() model.Mesh {
	switch k {
	case Quad:
		return quadMesh()
	case Cube:
		return cubeMesh()
	case Sphere:
		return sphereMesh()
	case Cylinder:
		return cylinderMesh()
	case Cone:
		return coneMesh()
	case Conduit:
		return conduitMesh()
	}
	panic("object: no mesh for " + k.String())
}

func quadMesh() model.Mesh {
	normal := glm.Vec3{0, 0, 1}
	return model.Mesh{
		Vertices: []model.Vertex{
			{Position: glm.Vec3{-0.5, -0.5, 0}, Normal: normal},
			{Position: glm.Vec3{0.5, -0.5, 0}, Normal: normal},
			{Position: glm.Vec3{0.5, 0.5, 0}, Normal: normal},
			{Position: glm.Vec3{-0.5, 0.5, 0}, Normal: normal},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func cubeMesh() model.Mesh {
	faces := []struct {
		normal glm.Vec3
		right  glm.Vec3
		up     glm.Vec3
	}{
		{glm.Vec3{0, 0, 1}, glm.Vec3{1, 0, 0}, glm.Vec3{0, 1, 0}},
		{glm.Vec3{0, 0, -1}, glm.Vec3{-1, 0, 0}, glm.Vec3{0, 1, 0}},
		{glm.Vec3{1, 0, 0}, glm.Vec3{0, 0, -1}, glm.Vec3{0, 1, 0}},
		{glm.Vec3{-1, 0, 0}, glm.Vec3{0, 0, 1}, glm.Vec3{0, 1, 0}},
		{glm.Vec3{0, 1, 0}, glm.Vec3{1, 0, 0}, glm.Vec3{0, 0, -1}},
		{glm.Vec3{0, -1, 0}, glm.Vec3{1, 0, 0}, glm.Vec3{0, 0, 1}},
	}

	var mesh model.Mesh
	for _, face := range faces {
		base := uint32(len(mesh.Vertices))
		center := face.normal.Mul(0.5)
		right := face.right.Mul(0.5)
		up := face.up.Mul(0.5)
		mesh.Vertices = append(mesh.Vertices,
			model.Vertex{Position: center.Sub(right).Sub(up), Normal: face.normal},
			model.Vertex{Position: center.Add(right).Sub(up), Normal: face.normal},
			model.Vertex{Position: center.Add(right).Add(up), Normal: face.normal},
			model.Vertex{Position: center.Sub(right).Add(up), Normal: face.normal},
		)
		mesh.Indices = append(mesh.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return mesh
}

func sphereMesh() model.Mesh {
	var mesh model.Mesh
	for ring := 0; ring <= sphereRings; ring++ {
		phi := math32.Pi * float32(ring) / sphereRings
		y := math32.Cos(phi)
		r := math32.Sin(phi)
		for sector := 0; sector <= sphereSectors; sector++ {
			theta := 2 * math32.Pi * float32(sector) / sphereSectors
			normal := glm.Vec3{r * math32.Cos(theta), y, r * math32.Sin(theta)}
			mesh.Vertices = append(mesh.Vertices, model.Vertex{
				Position: normal.Mul(0.5),
				Normal:   normal,
			})
		}
	}
	for ring := 0; ring < sphereRings; ring++ {
		for sector := 0; sector < sphereSectors; sector++ {
			a := uint32(ring*(sphereSectors+1) + sector)
			b := a + sphereSectors + 1
			mesh.Indices = append(mesh.Indices,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}
	return mesh
}

func cylinderMesh() model.Mesh {
	var mesh model.Mesh

	// side
	for sector := 0; sector <= cylinderSectors; sector++ {
		theta := 2 * math32.Pi * float32(sector) / cylinderSectors
		normal := glm.Vec3{math32.Cos(theta), 0, math32.Sin(theta)}
		side := glm.Vec3{normal.X() * 0.5, 0, normal.Z() * 0.5}
		mesh.Vertices = append(mesh.Vertices,
			model.Vertex{Position: glm.Vec3{side.X(), -0.5, side.Z()}, Normal: normal},
			model.Vertex{Position: glm.Vec3{side.X(), 0.5, side.Z()}, Normal: normal},
		)
	}
	for sector := 0; sector < cylinderSectors; sector++ {
		a := uint32(sector * 2)
		mesh.Indices = append(mesh.Indices,
			a, a+1, a+2,
			a+2, a+1, a+3,
		)
	}

	// caps
	mesh.Indices = append(mesh.Indices, capFan(&mesh, 0.5, glm.Vec3{0, 1, 0}, cylinderSectors)...)
	mesh.Indices = append(mesh.Indices, capFan(&mesh, -0.5, glm.Vec3{0, -1, 0}, cylinderSectors)...)
	return mesh
}

// capFan appends a circular cap at height y, winding so the cap faces
// along its normal.
func capFan(mesh *model.Mesh, y float32, normal glm.Vec3, sectors int) []uint32 {
	center := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, model.Vertex{
		Position: glm.Vec3{0, y, 0},
		Normal:   normal,
	})
	for sector := 0; sector <= sectors; sector++ {
		theta := 2 * math32.Pi * float32(sector) / float32(sectors)
		mesh.Vertices = append(mesh.Vertices, model.Vertex{
			Position: glm.Vec3{0.5 * math32.Cos(theta), y, 0.5 * math32.Sin(theta)},
			Normal:   normal,
		})
	}
	var indices []uint32
	for sector := 0; sector < sectors; sector++ {
		rim := center + 1 + uint32(sector)
		if normal.Y() > 0 {
			indices = append(indices, center, rim+1, rim)
		} else {
			indices = append(indices, center, rim, rim+1)
		}
	}
	return indices
}

func coneMesh() model.Mesh {
	var mesh model.Mesh

	// Slanted side normals: height 1 and radius 0.5 give a slope normal
	// of (2, 1)/sqrt(5) in (radial, up) components.
	radial := 2 / math32.Sqrt(5)
	up := 1 / math32.Sqrt(5)
	for sector := 0; sector <= coneSectors; sector++ {
		theta := 2 * math32.Pi * float32(sector) / coneSectors
		cos, sin := math32.Cos(theta), math32.Sin(theta)
		normal := glm.Vec3{cos * radial, up, sin * radial}
		mesh.Vertices = append(mesh.Vertices,
			model.Vertex{Position: glm.Vec3{0.5 * cos, -0.5, 0.5 * sin}, Normal: normal},
			model.Vertex{Position: glm.Vec3{0, 0.5, 0}, Normal: normal},
		)
	}
	for sector := 0; sector < coneSectors; sector++ {
		a := uint32(sector * 2)
		mesh.Indices = append(mesh.Indices, a, a+1, a+2)
	}

	mesh.Indices = append(mesh.Indices, capFan(&mesh, -0.5, glm.Vec3{0, -1, 0}, coneSectors)...)
	return mesh
}

// conduitMesh is a segmented ribbon spanning x in [-0.5, 0.5], drawn as
// a triangle strip without indices. The conduit pipeline's vertex stage
// bends and spins it; the segmentation is what it animates along.
func conduitMesh() model.Mesh {
	normal := glm.Vec3{0, 0, 1}
	var mesh model.Mesh
	for segment := 0; segment <= conduitSegments; segment++ {
		x := float32(segment)/conduitSegments - 0.5
		mesh.Vertices = append(mesh.Vertices,
			model.Vertex{Position: glm.Vec3{x, -0.5, 0}, Normal: normal},
			model.Vertex{Position: glm.Vec3{x, 0.5, 0}, Normal: normal},
		)
	}
	return mesh
}
