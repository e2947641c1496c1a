// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/gloam3d/gloam/util/collada"
)

// Collada import errors.
var (
	ErrNoGeometry = errors.New("model: collada document contains no geometry")
	ErrNoPosition = errors.New("model: collada mesh has no position source")
)

// IndexOutOfRangeError reports a triangle index pointing past the end of
// its source array. Such documents are corrupt and are rejected whole.
type IndexOutOfRangeError struct {
	Source string
	Index  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("model: collada triangle index %d out of range of source %q", e.Index, e.Source)
}

// ImportColladaMesh reads a Collada (.dae) document and converts its
// first geometry into a mesh. Triangles are expanded: each corner
// becomes one vertex carrying its position and normal, and indices run
// sequentially.
func ImportColladaMesh(fileContents []byte) (Mesh, error) {
	var doc collada.Collada
	if err := xml.Unmarshal(fileContents, &doc); err != nil {
		return Mesh{}, fmt.Errorf("model: parsing collada: %w", err)
	}
	if len(doc.Geometries) == 0 {
		return Mesh{}, ErrNoGeometry
	}

	mesh := doc.Geometries[0].Mesh

	positions, err := positionSource(&mesh)
	if err != nil {
		return Mesh{}, err
	}

	vertexOffset, normalOffset, stride := triangleLayout(&mesh)
	normals, haveNormals := normalSource(&mesh)

	index := mesh.Triangles.Index.Data
	var out Mesh
	for corner := 0; corner+stride <= len(index); corner += stride {
		var vert Vertex
		pi := index[corner+vertexOffset]
		if pi < 0 || 3*pi+2 >= len(positions.Floats.Data) {
			return Mesh{}, &IndexOutOfRangeError{Source: positions.ID, Index: pi}
		}
		vert.Position = glm.Vec3{
			positions.Floats.Data[3*pi],
			positions.Floats.Data[3*pi+1],
			positions.Floats.Data[3*pi+2],
		}
		if haveNormals {
			ni := index[corner+normalOffset]
			if ni < 0 || 3*ni+2 >= len(normals.Floats.Data) {
				return Mesh{}, &IndexOutOfRangeError{Source: normals.ID, Index: ni}
			}
			vert.Normal = glm.Vec3{
				normals.Floats.Data[3*ni],
				normals.Floats.Data[3*ni+1],
				normals.Floats.Data[3*ni+2],
			}
		}
		out.Vertices = append(out.Vertices, vert)
		out.Indices = append(out.Indices, uint32(len(out.Indices)))
	}

	if !haveNormals {
		fillFaceNormals(&out)
	}
	return out, nil
}

// positionSource resolves the POSITION input of the vertices element to
// its float source.
func positionSource(mesh *collada.Mesh) (collada.Source, error) {
	for _, input := range mesh.Vertices.Inputs {
		if input.Semantic == "POSITION" {
			return findSource(mesh, input.Source)
		}
	}
	return collada.Source{}, ErrNoPosition
}

// normalSource resolves the NORMAL triangle input, if any.
func normalSource(mesh *collada.Mesh) (collada.Source, bool) {
	for _, input := range mesh.Triangles.Inputs {
		if input.Semantic == "NORMAL" {
			source, err := findSource(mesh, input.Source)
			if err != nil {
				return collada.Source{}, false
			}
			return source, true
		}
	}
	return collada.Source{}, false
}

// triangleLayout returns index offsets of the VERTEX and NORMAL inputs
// and the interleave stride.
func triangleLayout(mesh *collada.Mesh) (vertexOffset, normalOffset, stride int) {
	stride = 1
	for _, input := range mesh.Triangles.Inputs {
		if input.Offset+1 > stride {
			stride = input.Offset + 1
		}
		switch input.Semantic {
		case "VERTEX":
			vertexOffset = input.Offset
		case "NORMAL":
			normalOffset = input.Offset
		}
	}
	return vertexOffset, normalOffset, stride
}

func findSource(mesh *collada.Mesh, ref string) (collada.Source, error) {
	id := strings.TrimPrefix(ref, "#")
	for _, s := range mesh.Sources {
		if s.ID == id {
			return s, nil
		}
	}
	return collada.Source{}, fmt.Errorf("model: collada source %q not found", ref)
}

// fillFaceNormals assigns each triangle its face normal when the
// document carries none.
func fillFaceNormals(mesh *Mesh) {
	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		a := mesh.Vertices[i].Position
		b := mesh.Vertices[i+1].Position
		c := mesh.Vertices[i+2].Position
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Len() > 0 {
			normal = normal.Normalize()
		}
		mesh.Vertices[i].Normal = normal
		mesh.Vertices[i+1].Normal = normal
		mesh.Vertices[i+2].Normal = normal
	}
}
