// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render_test

import (
	"errors"
	"reflect"
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/object"
	"github.com/gloam3d/gloam/render"
)

func testContext() *render.Context {
	return &render.Context{
		Camera: render.NewCamera(
			glm.Vec3{0, 2, 5}, glm.Vec3{0, 0, 0}, glm.Vec3{0, 1, 0},
			45, 16.0/9.0, 0.1, 100,
		),
		ElapsedTime:  1.25,
		MainLightPos: glm.Vec3{3, 4, 2},
	}
}

func newTestResources(t *testing.T) (*mockFacade, *render.Resources) {
	t.Helper()
	facade := &mockFacade{}
	resources, err := render.CreateResources(facade)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(resources.Release)
	return facade, resources
}

func TestRenderEmptyListIssuesNoDraws(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	list := render.NewRenderList()
	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}
	if len(surface.calls) != 0 {
		t.Errorf("empty list issued %d draws", len(surface.calls))
	}
}

func TestAddThenClearLeavesListEmpty(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	list := render.NewRenderList()
	list.Add(object.Cube, render.NewDefaultParams())
	list.Add(object.Sphere, render.NewDefaultParams())
	if list.Len() != 2 {
		t.Fatalf("Len = %d, want 2", list.Len())
	}

	list.Clear()
	if list.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", list.Len())
	}
	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}
	if len(surface.calls) != 0 {
		t.Errorf("cleared list issued %d draws", len(surface.calls))
	}
}

func TestRenderIssuesOneDrawPerInstanceInOrder(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	list := render.NewRenderList()
	const n = 5
	for i := 0; i < n; i++ {
		params := render.NewDefaultParams()
		params.Transform = glm.Translate3D(float32(i), 0, 0)
		list.Add(object.Cube, params)
	}

	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}
	if len(surface.calls) != n {
		t.Fatalf("issued %d draws, want %d", len(surface.calls), n)
	}

	for i, call := range surface.calls {
		want := gfx.Mat4(glm.Translate3D(float32(i), 0, 0))
		if call.values["mat_model"] != want {
			t.Errorf("draw %d bound mat_model %v, want translation by %d", i, call.values["mat_model"], i)
		}
	}
}

func TestRenderUsesFixedPipelineState(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	list := render.NewRenderList()
	list.Add(object.Sphere, render.NewDefaultParams())
	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}

	params := surface.calls[0].params
	if params.Culling != gfx.CullClockwise {
		t.Errorf("culling = %v, want CullClockwise", params.Culling)
	}
	if params.DepthTest != gfx.DepthLess {
		t.Errorf("depth test = %v, want DepthLess", params.DepthTest)
	}
	if !params.DepthWrite {
		t.Error("depth write disabled")
	}
}

func TestRenderResolvesBuffersByKind(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	list := render.NewRenderList()
	list.Add(object.Cylinder, render.NewDefaultParams())
	list.Add(object.Conduit, render.NewConduitParams())
	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}

	if surface.calls[0].vertices != resources.ObjectBuffers(object.Cylinder).Vertices {
		t.Error("first draw used wrong buffers")
	}
	if surface.calls[1].vertices != resources.ObjectBuffers(object.Conduit).Vertices {
		t.Error("second draw used wrong buffers")
	}
	if surface.calls[1].indices.Buffer != nil {
		t.Error("conduit draw should be non-indexed")
	}
	if surface.calls[1].indices.Primitive != gfx.TriangleStrip {
		t.Error("conduit draw should use a triangle strip")
	}
}

func TestRenderPairsContextAndInstanceUniforms(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	list := render.NewRenderList()
	list.Add(object.Cube, render.NewDefaultParams())
	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}

	want := []string{"mat_view", "mat_projection", "light_pos", "t", "mat_model", "color"}
	if !reflect.DeepEqual(surface.calls[0].names, want) {
		t.Errorf("uniform visitation %v, want context then instance: %v", surface.calls[0].names, want)
	}
}

func TestRenderDrawErrorAbortsRemainingDraws(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{failAt: 2}

	list := render.NewRenderList()
	list.Add(object.Cube, render.NewDefaultParams())
	list.Add(object.Sphere, render.NewDefaultParams())
	list.Add(object.Cone, render.NewDefaultParams())

	err := list.Render(resources, testContext(), surface)
	var draw *render.DrawError
	if !errors.As(err, &draw) {
		t.Fatalf("got %v, want DrawError", err)
	}
	if draw.Index != 1 || draw.Object != object.Sphere {
		t.Errorf("error reports instance %d (%s), want 1 (sphere)", draw.Index, draw.Object)
	}
	if !errors.Is(err, errMockDraw) {
		t.Errorf("cause not preserved: %v", err)
	}
	if len(surface.calls) != 1 {
		t.Errorf("%d draws recorded after abort, want 1", len(surface.calls))
	}
}

func TestRenderWithSelectsProgram(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	list := render.NewRenderList()
	list.Add(object.Conduit, render.NewConduitParams())
	if err := list.RenderWith(resources.ConduitProgram(), resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}
	if surface.calls[0].program != resources.ConduitProgram() {
		t.Error("draw did not use the conduit program")
	}

	surface.calls = nil
	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}
	if surface.calls[0].program != resources.Program() {
		t.Error("Render did not use the default program")
	}
}

// One sphere with a red default params and one main light: two draws in
// insertion order, the first carrying the red color, the second the
// light uniforms.
func TestRenderSphereAndLightScenario(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	red := render.NewDefaultParams()
	red.Color = glm.Vec4{1, 0, 0, 1}

	light := render.Light{
		Position: glm.Vec3{3, 4, 2},
		Color:    glm.Vec3{1, 1, 1},
		IsMain:   true,
	}

	list := render.NewRenderList()
	list.Add(object.Sphere, red)
	list.Add(object.Sphere, light)

	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}
	if len(surface.calls) != 2 {
		t.Fatalf("issued %d draws, want 2", len(surface.calls))
	}

	if got := surface.calls[0].values["color"]; got != gfx.Vec4(glm.Vec4{1, 0, 0, 1}) {
		t.Errorf("first draw color = %v, want [1 0 0 1]", got)
	}
	if got := surface.calls[1].values["light_is_main"]; got != gfx.Bool(true) {
		t.Errorf("second draw light_is_main = %v, want true", got)
	}
}

func TestAddInstance(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	list := render.NewRenderList()
	list.AddInstance(render.Instance{Object: object.Quad, Params: render.NewDefaultParams()})
	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}
	if len(surface.calls) != 1 {
		t.Fatalf("issued %d draws, want 1", len(surface.calls))
	}
	if surface.calls[0].vertices != resources.ObjectBuffers(object.Quad).Vertices {
		t.Error("instance drew wrong buffers")
	}
}

func TestAddClonesParams(t *testing.T) {
	_, resources := newTestResources(t)
	surface := &mockSurface{}

	params := render.NewDefaultParams()
	list := render.NewRenderList()
	list.Add(object.Cube, params)

	// Mutating the caller's value must not affect the queued instance.
	params.Color = glm.Vec4{0, 0, 0, 0}

	if err := list.Render(resources, testContext(), surface); err != nil {
		t.Fatal(err)
	}
	if got := surface.calls[0].values["color"]; got != gfx.Vec4(glm.Vec4{1, 1, 1, 1}) {
		t.Errorf("queued params changed after Add: color = %v", got)
	}
}
