// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"runtime"
	"strconv"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packr"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/exp/mmap"
	"golang.org/x/image/colornames"

	"github.com/gloam3d/gloam/asset"
	"github.com/gloam3d/gloam/core"
	"github.com/gloam3d/gloam/gfx"
	"github.com/gloam3d/gloam/gfx/glr"
	"github.com/gloam3d/gloam/model"
	"github.com/gloam3d/gloam/object"
	"github.com/gloam3d/gloam/render"
)

func init() {
	runtime.LockOSThread()
}

var assets = packr.NewBox("./assets")

func configuration() core.Configuration {
	return core.Configuration{
		Time: core.TimeConfiguration{
			FramesPerSecond: envInt("GLOAM_FPS", 60),
		},
		Renderer: core.RendererConfiguration{
			ScreenWidth:  uint32(envInt("GLOAM_WIDTH", 1280)),
			ScreenHeight: uint32(envInt("GLOAM_HEIGHT", 720)),
			FieldOfView:  45,
			ClearColor:   envy.Get("GLOAM_CLEAR_COLOR", "midnightblue"),
			VSync:        envInt("GLOAM_VSYNC", 1) != 0,
		},
	}
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(envy.Get(key, strconv.Itoa(fallback)))
	if err != nil {
		log.WithField("key", key).Warn("ignoring non-numeric environment override")
		return fallback
	}
	return value
}

func newWindow(cfg core.RendererConfiguration) (*sdl.Window, error) {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	return sdl.CreateWindow("Gloam",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_OPENGL)
}

// loadExtraMesh returns a mesh from the GLOAM_ASSET_PACK archive when
// one is configured, falling back to the embedded gem asset.
func loadExtraMesh() (model.Mesh, error) {
	if pack := envy.Get("GLOAM_ASSET_PACK", ""); pack != "" {
		reader, err := mmap.Open(pack)
		if err != nil {
			return model.Mesh{}, err
		}
		archive, err := asset.Open(reader)
		if err != nil {
			return model.Mesh{}, err
		}
		names := archive.List()
		if len(names) > 0 {
			log.WithField("entry", names[0]).Info("loading mesh from asset pack")
			contents, err := archive.ReadAll(names[0])
			if err != nil {
				return model.Mesh{}, err
			}
			return model.ImportColladaMesh(contents)
		}
	}

	contents, err := assets.Find("gem.dae")
	if err != nil {
		return model.Mesh{}, err
	}
	return model.ImportColladaMesh(contents)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, using defaults")
	}
	cfg := configuration()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	window, err := newWindow(cfg.Renderer)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		log.Fatal(err)
	}
	defer sdl.GLDeleteContext(glContext)

	if cfg.Renderer.VSync {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}

	facade, err := glr.New()
	if err != nil {
		log.Fatal(err)
	}

	resources, err := render.CreateResources(facade)
	if err != nil {
		log.Fatal(err)
	}
	defer resources.Release()

	extra, err := loadExtraMesh()
	if err != nil {
		log.Fatal(err)
	}
	extraVertices, err := facade.CreateVertexBuffer(extra.Vertices)
	if err != nil {
		log.Fatal(err)
	}
	defer extraVertices.Release()
	extraIndices := gfx.IndexSource{Primitive: gfx.Triangles}
	if extra.Indexed() {
		buffer, err := facade.CreateIndexBuffer(extra.Indices)
		if err != nil {
			log.Fatal(err)
		}
		defer buffer.Release()
		extraIndices.Buffer = buffer
	}

	clear := colornames.Map[cfg.Renderer.ClearColor]
	screen := facade.NewScreen(int(cfg.Renderer.ScreenWidth), int(cfg.Renderer.ScreenHeight))
	clock := core.NewTime(cfg.Time)
	defer clock.Stop()

	objects := render.NewRenderList()
	conduits := render.NewRenderList()
	aspect := float32(cfg.Renderer.ScreenWidth) / float32(cfg.Renderer.ScreenHeight)

	log.WithFields(log.Fields{
		"width":  cfg.Renderer.ScreenWidth,
		"height": cfg.Renderer.ScreenHeight,
		"fps":    cfg.Time.FramesPerSecond,
	}).Info("entering frame loop")

	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		t := clock.Elapsed()
		lightPos := glm.Vec3{3, 4, 2}
		context := render.Context{
			Camera: render.NewCamera(
				glm.Vec3{0, 2.5, 6},
				glm.Vec3{0, 0, 0},
				glm.Vec3{0, 1, 0},
				cfg.Renderer.FieldOfView, aspect, 0.1, 100,
			),
			ElapsedTime:  t,
			MainLightPos: lightPos,
		}

		objects.Clear()
		demoObjects(objects, t)
		objects.Add(object.Sphere, render.Light{
			Position: lightPos,
			Color:    glm.Vec3{1, 1, 1},
			IsMain:   true,
		})

		conduits.Clear()
		conduit := render.NewConduitParams()
		conduit.Transform = glm.Translate3D(0, 1.4, 0).Mul4(glm.Scale3D(3, 1, 1))
		conduit.Color = glm.Vec4{0.4, 0.9, 1, 1}
		conduit.Phase = 0
		conduits.Add(object.Conduit, conduit)

		screen.Clear(
			float32(clear.R)/255,
			float32(clear.G)/255,
			float32(clear.B)/255,
			1,
		)

		if err := objects.Render(resources, &context, screen); err != nil {
			log.WithError(err).Error("frame aborted")
		}
		if err := conduits.RenderWith(resources.ConduitProgram(), resources, &context, screen); err != nil {
			log.WithError(err).Error("conduit pass aborted")
		}

		extraParams := render.NewDefaultParams()
		extraParams.Transform = glm.Translate3D(0, -1.4, 0).Mul4(glm.HomogRotate3DY(t))
		extraParams.Color = glm.Vec4{0.9, 0.6, 0.2, 1}
		if err := screen.Draw(extraVertices, extraIndices, resources.Program(),
			gfx.UniformsPair{First: &context, Second: extraParams},
			gfx.DrawParameters{Culling: gfx.CullClockwise, DepthTest: gfx.DepthLess, DepthWrite: true},
		); err != nil {
			log.WithError(err).Error("extra mesh draw failed")
		}

		window.GLSwap()
		<-clock.FpsTicker().C
	}
}

// demoObjects fills the list with one of each catalog shape on a ring.
func demoObjects(list *render.RenderList, t float32) {
	kinds := []object.Kind{object.Cube, object.Sphere, object.Cylinder, object.Cone, object.Quad}
	colors := []glm.Vec4{
		{0.9, 0.3, 0.3, 1},
		{0.3, 0.9, 0.3, 1},
		{0.3, 0.3, 0.9, 1},
		{0.9, 0.9, 0.3, 1},
		{0.9, 0.3, 0.9, 1},
	}
	for i, kind := range kinds {
		angle := t*0.3 + glm.DegToRad(360*float32(i)/float32(len(kinds)))
		params := render.NewDefaultParams()
		params.Transform = glm.HomogRotate3DY(angle).
			Mul4(glm.Translate3D(2.2, 0, 0)).
			Mul4(glm.HomogRotate3DY(t))
		params.Color = colors[i]
		list.Add(kind, params)
	}
}
