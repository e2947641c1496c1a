// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/gloam3d/gloam/model"
)

func loadTestMesh(t *testing.T) model.Mesh {
	t.Helper()
	contents, err := os.ReadFile("testdata/gem.dae")
	if err != nil {
		t.Fatal(err)
	}
	mesh, err := model.ImportColladaMesh(contents)
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

func TestImportColladaMeshExpandsCorners(t *testing.T) {
	mesh := loadTestMesh(t)

	// Four triangles, one vertex per corner.
	if len(mesh.Vertices) != 12 {
		t.Fatalf("got %d vertices, want 12", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 12 {
		t.Fatalf("got %d indices, want 12", len(mesh.Indices))
	}
	for i, index := range mesh.Indices {
		if index != uint32(i) {
			t.Fatalf("index %d = %d, expanded corners should index sequentially", i, index)
		}
	}
}

func TestImportColladaMeshResolvesPositionsAndNormals(t *testing.T) {
	mesh := loadTestMesh(t)

	if apex := (glm.Vec3{0, 0.5, 0}); mesh.Vertices[0].Position != apex {
		t.Errorf("first corner position = %v, want %v", mesh.Vertices[0].Position, apex)
	}
	// The front face references normal 0 for all three corners.
	front := glm.Vec3{0, 0.4472, 0.8944}
	for i := 0; i < 3; i++ {
		if mesh.Vertices[i].Normal != front {
			t.Errorf("corner %d normal = %v, want %v", i, mesh.Vertices[i].Normal, front)
		}
	}
}

func TestImportColladaMeshFaceNormalFallback(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<COLLADA>
  <library_geometries>
    <geometry id="tri">
      <mesh>
        <source id="tri-positions">
          <float_array count="9">0 0 0 1 0 0 0 1 0</float_array>
        </source>
        <vertices id="tri-vertices">
          <input semantic="POSITION" source="#tri-positions"/>
        </vertices>
        <triangles count="1">
          <input semantic="VERTEX" source="#tri-vertices" offset="0"/>
          <p>0 1 2</p>
        </triangles>
      </mesh>
    </geometry>
  </library_geometries>
</COLLADA>`

	mesh, err := model.ImportColladaMesh([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := glm.Vec3{0, 0, 1}
	for i, vert := range mesh.Vertices {
		if vert.Normal != want {
			t.Errorf("corner %d normal = %v, want face normal %v", i, vert.Normal, want)
		}
	}
}

func TestImportColladaMeshErrors(t *testing.T) {
	if _, err := model.ImportColladaMesh([]byte("not xml at all <<<")); err == nil {
		t.Error("malformed document accepted")
	}

	empty := `<?xml version="1.0"?><COLLADA><library_geometries/></COLLADA>`
	if _, err := model.ImportColladaMesh([]byte(empty)); !errors.Is(err, model.ErrNoGeometry) {
		t.Errorf("got %v, want ErrNoGeometry", err)
	}

	noPosition := `<?xml version="1.0"?>
<COLLADA>
  <library_geometries>
    <geometry id="g"><mesh>
      <vertices id="g-vertices"/>
      <triangles count="0"/>
    </mesh></geometry>
  </library_geometries>
</COLLADA>`
	if _, err := model.ImportColladaMesh([]byte(noPosition)); !errors.Is(err, model.ErrNoPosition) {
		t.Errorf("got %v, want ErrNoPosition", err)
	}
}

// Corrupt index data must come back as an error, not a panic.
func TestImportColladaMeshRejectsOutOfRangeIndices(t *testing.T) {
	const template = `<?xml version="1.0"?>
<COLLADA>
  <library_geometries>
    <geometry id="tri">
      <mesh>
        <source id="tri-positions">
          <float_array count="9">0 0 0 1 0 0 0 1 0</float_array>
        </source>
        <source id="tri-normals">
          <float_array count="3">0 0 1</float_array>
        </source>
        <vertices id="tri-vertices">
          <input semantic="POSITION" source="#tri-positions"/>
        </vertices>
        <triangles count="1">
          <input semantic="VERTEX" source="#tri-vertices" offset="0"/>
          <input semantic="NORMAL" source="#tri-normals" offset="1"/>
          <p>INDICES</p>
        </triangles>
      </mesh>
    </geometry>
  </library_geometries>
</COLLADA>`

	cases := []struct {
		name    string
		indices string
		source  string
		index   int
	}{
		{"position index past source", "99 0 1 0 2 0", "tri-positions", 99},
		{"negative position index", "-1 0 1 0 2 0", "tri-positions", -1},
		{"normal index past source", "0 0 1 7 2 0", "tri-normals", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := strings.Replace(template, "INDICES", tc.indices, 1)
			_, err := model.ImportColladaMesh([]byte(doc))
			var oor *model.IndexOutOfRangeError
			if !errors.As(err, &oor) {
				t.Fatalf("got %v, want IndexOutOfRangeError", err)
			}
			if oor.Source != tc.source || oor.Index != tc.index {
				t.Errorf("error names %q index %d, want %q index %d", oor.Source, oor.Index, tc.source, tc.index)
			}
		})
	}
}

func TestMeshIndexed(t *testing.T) {
	var mesh model.Mesh
	if mesh.Indexed() {
		t.Error("empty mesh reports indices")
	}
	mesh.Indices = []uint32{0, 1, 2}
	if !mesh.Indexed() {
		t.Error("indexed mesh reports none")
	}
	// Callable straight on a returned value, as catalog callers do.
	if !loadTestMesh(t).Indexed() {
		t.Error("imported mesh reports no indices")
	}
}
