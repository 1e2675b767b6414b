package opengl

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"submarine/config"
	"submarine/core"
	"submarine/rendering/opengl/shaders"
)

// Tessellation of the primitive parts
const (
	hullSlices    = 60
	hullStacks    = 60
	towerSlices   = 64
	towerStacks   = 8
	propellerEdge = 2.0
)

// globalAmbient matches the fixed-function default scene ambient
var globalAmbient = mgl32.Vec4{0.2, 0.2, 0.2, 1}

// SceneRenderer owns the window and draws the submarine scene
type SceneRenderer struct {
	window *glfw.Window

	program  uint32
	uniforms phongUniforms

	hull      *gpuMesh
	propeller *gpuMesh
	tower     *gpuMesh
	ground    *gpuMesh

	groundMaterial core.Material

	state    *core.State
	bindings core.Bindings
	help     io.Writer

	camera     core.Camera
	viewMatrix mgl32.Mat4
	projMatrix mgl32.Mat4

	// window size in screen coordinates, used for picking
	width, height int

	drawTower   bool
	secondLight bool
	needsRedraw bool

	currentButton glfw.MouseButton
	mouseDown     bool

	log zerolog.Logger
}

type phongUniforms struct {
	modelView     int32
	projection    int32
	normalMatrix  int32
	globalAmbient int32

	matAmbient   int32
	matDiffuse   int32
	matSpecular  int32
	matShininess int32

	lights [shaders.MaxLights]lightUniforms
}

type lightUniforms struct {
	position int32
	ambient  int32
	diffuse  int32
	specular int32
	enabled  int32
}

// NewSceneRenderer opens the window, creates the GL context and uploads the
// scene geometry. The calling goroutine becomes the render thread.
func NewSceneRenderer(settings *config.Settings, state *core.State, logger zerolog.Logger) (*SceneRenderer, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	w := settings.Window
	window, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.SetPos(w.X, w.Y)
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL context created")

	r := &SceneRenderer{
		window:      window,
		state:       state,
		bindings:    core.DefaultBindings(),
		help:        os.Stdout,
		camera:      core.DefaultCamera(),
		width:       w.Width,
		height:      w.Height,
		drawTower:   settings.Scene.DrawTower,
		secondLight: settings.Scene.SecondLight,
		needsRedraw: true,
		log:         logger,
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(core.ClearColor[0], core.ClearColor[1], core.ClearColor[2], core.ClearColor[3])
	gl.ClearDepth(1.0)

	program, err := shaders.CompilePhongShaders()
	if err != nil {
		r.Terminate()
		return nil, fmt.Errorf("failed to compile lighting shaders: %w", err)
	}
	r.program = program
	r.lookupUniforms()
	logger.Debug().Uint32("program", program).Msg("lighting shaders compiled")

	r.createMeshes(settings.Scene.MeshSize)

	r.setupCallbacks()

	fbWidth, fbHeight := window.GetFramebufferSize()
	r.onFramebufferResize(fbWidth, fbHeight)

	return r, nil
}

func (r *SceneRenderer) uniform(name string) int32 {
	return gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
}

func (r *SceneRenderer) lookupUniforms() {
	u := &r.uniforms
	u.modelView = r.uniform("modelView")
	u.projection = r.uniform("projection")
	u.normalMatrix = r.uniform("normalMatrix")
	u.globalAmbient = r.uniform("globalAmbient")

	u.matAmbient = r.uniform("material.ambient")
	u.matDiffuse = r.uniform("material.diffuse")
	u.matSpecular = r.uniform("material.specular")
	u.matShininess = r.uniform("material.shininess")

	for i := range u.lights {
		prefix := fmt.Sprintf("lights[%d].", i)
		u.lights[i] = lightUniforms{
			position: r.uniform(prefix + "position"),
			ambient:  r.uniform(prefix + "ambient"),
			diffuse:  r.uniform(prefix + "diffuse"),
			specular: r.uniform(prefix + "specular"),
			enabled:  r.uniform(prefix + "enabled"),
		}
	}
}

func (r *SceneRenderer) createMeshes(meshSize int) {
	ground := core.NewGround(meshSize)
	r.groundMaterial = ground.Material

	hull := core.Sphere(1.0, hullSlices, hullStacks)
	r.hull = uploadMesh(hull)
	r.propeller = uploadMesh(core.Cube(propellerEdge))
	r.tower = uploadMesh(core.Cylinder(2.0, 1.5, 2.0, towerSlices, towerStacks))
	r.ground = uploadMesh(ground.Mesh())

	r.log.Debug().
		Int("groundQuads", ground.QuadCount()).
		Int("hullTriangles", hull.TriangleCount()).
		Msg("scene meshes uploaded")
}

func (r *SceneRenderer) setupCallbacks() {
	r.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.onFramebufferResize(width, height)
	})

	r.window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		r.width = width
		r.height = height
	})

	r.window.SetCharCallback(func(w *glfw.Window, char rune) {
		r.onChar(char)
	})

	r.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.onKey(key, scancode, action, mods)
	})

	r.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		r.onMouseButton(button, action, x, y)
	})

	r.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		r.onMouseMove(xpos, ypos)
	})

	r.window.SetRefreshCallback(func(w *glfw.Window) {
		r.RequestRedraw()
	})
}

// RequestRedraw marks the frame dirty; it is drawn on the next loop pass
func (r *SceneRenderer) RequestRedraw() {
	r.needsRedraw = true
}

// Run drives the event loop until the window is closed. The timer fires
// state.Tick at its interval; every event and tick requests a redraw.
func (r *SceneRenderer) Run(timer *core.Timer, stepper core.Stepper) {
	for !r.ShouldClose() {
		if wait := timer.Remaining(time.Now()); wait > 0 {
			glfw.WaitEventsTimeout(wait.Seconds())
		} else {
			glfw.PollEvents()
		}

		now := time.Now()
		if timer.Due(now) {
			elapsed := timer.Advance(now)
			r.state.Tick(stepper.Step(elapsed))
			r.RequestRedraw()
		}

		if r.needsRedraw {
			r.Render()
		}
	}
}

// Render draws one frame from the current state and presents it
func (r *SceneRenderer) Render() {
	r.needsRedraw = false

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.uniforms.projection, 1, false, &r.projMatrix[0])
	gl.Uniform4fv(r.uniforms.globalAmbient, 1, &globalAmbient[0])
	r.setLight(0, core.Light0, true)
	r.setLight(1, core.Light1, r.secondLight)

	r.setMaterial(core.SubMaterial)
	r.drawObject(r.hull, core.HullMatrix(r.state))
	r.drawObject(r.propeller, core.PropellerMatrix(r.state))
	if r.drawTower {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		r.drawObject(r.tower, core.TowerMatrix(r.state))
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	r.setMaterial(r.groundMaterial)
	r.drawObject(r.ground, mgl32.Ident4())

	if err := gl.GetError(); err != gl.NO_ERROR {
		r.log.Warn().Uint32("code", err).Msg("OpenGL error after draw")
	}

	r.window.SwapBuffers()
}

func (r *SceneRenderer) setLight(i int, light core.Light, enabled bool) {
	u := r.uniforms.lights[i]
	on := int32(0)
	if enabled {
		on = 1
	}
	gl.Uniform1i(u.enabled, on)
	gl.Uniform4fv(u.position, 1, &light.Position[0])
	gl.Uniform4fv(u.ambient, 1, &light.Ambient[0])
	gl.Uniform4fv(u.diffuse, 1, &light.Diffuse[0])
	gl.Uniform4fv(u.specular, 1, &light.Specular[0])
}

func (r *SceneRenderer) setMaterial(m core.Material) {
	gl.Uniform4fv(r.uniforms.matAmbient, 1, &m.Ambient[0])
	gl.Uniform4fv(r.uniforms.matDiffuse, 1, &m.Diffuse[0])
	gl.Uniform4fv(r.uniforms.matSpecular, 1, &m.Specular[0])
	gl.Uniform1f(r.uniforms.matShininess, m.Shininess)
}

func (r *SceneRenderer) drawObject(mesh *gpuMesh, model mgl32.Mat4) {
	modelView := r.viewMatrix.Mul4(model)
	normal := core.NormalMatrix(modelView)
	gl.UniformMatrix4fv(r.uniforms.modelView, 1, false, &modelView[0])
	gl.UniformMatrix3fv(r.uniforms.normalMatrix, 1, false, &normal[0])
	mesh.draw()
}

// updateMatrices rebuilds the fixed camera and the projection for the
// current framebuffer size
func (r *SceneRenderer) updateMatrices(width, height int) {
	r.viewMatrix = r.camera.View()
	r.projMatrix = r.camera.Projection(width, height)
}

// Event handlers
func (r *SceneRenderer) onFramebufferResize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.updateMatrices(width, height)
	r.log.Debug().Int("width", width).Int("height", height).Float32("aspect", core.Aspect(width, height)).Msg("viewport resized")
	r.RequestRedraw()
}

func (r *SceneRenderer) onChar(char rune) {
	if sym := core.CharSymbol(char); sym != core.SymNone {
		r.apply(sym)
	}
	r.RequestRedraw()
}

func (r *SceneRenderer) onKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if sym := keySymbol(key); sym != core.SymNone {
		r.apply(sym)
	}
	r.RequestRedraw()
}

func (r *SceneRenderer) apply(sym core.Symbol) {
	if !r.bindings.Apply(sym, r.state, r.help) {
		return
	}
	s := r.state
	r.log.Debug().
		Stringer("key", sym).
		Float64("x", s.XPos).
		Float64("z", s.ZPos).
		Float64("altitude", s.Altitude).
		Float64("heading", s.Heading).
		Float64("bearing", core.NormalizeDegrees(s.Heading)).
		Bool("propeller", s.PropellerOn).
		Msg("state updated")
}

// onMouseButton records the pressed button. Clicks only report the ground
// point under the cursor at (x, y); they do not change the scene.
func (r *SceneRenderer) onMouseButton(button glfw.MouseButton, action glfw.Action, x, y float64) {
	r.currentButton = button

	switch button {
	case glfw.MouseButtonLeft, glfw.MouseButtonRight:
		if action == glfw.Press {
			r.mouseDown = true
			if p, ok := core.ScreenToWorld(r.camera, r.width, r.height, x, y); ok {
				r.log.Debug().Float32("x", p[0]).Float32("z", p[2]).Msg("ground point under cursor")
			}
		} else if action == glfw.Release {
			r.mouseDown = false
		}
	}

	r.RequestRedraw()
}

// onMouseMove only matters while a button is held. Left drags report the
// ground point they pass over.
func (r *SceneRenderer) onMouseMove(xpos, ypos float64) {
	if !r.mouseDown {
		return
	}
	if r.currentButton == glfw.MouseButtonLeft {
		if p, ok := core.ScreenToWorld(r.camera, r.width, r.height, xpos, ypos); ok {
			r.log.Trace().Float32("x", p[0]).Float32("z", p[2]).Msg("dragging over ground")
		}
	}
	r.RequestRedraw()
}

// ShouldClose returns true if the window should close
func (r *SceneRenderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// Terminate cleans up OpenGL resources and closes the window
func (r *SceneRenderer) Terminate() {
	for _, m := range []*gpuMesh{r.hull, r.propeller, r.tower, r.ground} {
		if m != nil {
			m.delete()
		}
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	r.window.Destroy()
	glfw.Terminate()
	r.log.Info().Msg("renderer terminated")
}
