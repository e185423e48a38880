package scene

import (
	"fmt"
	"sync"

	"github.com/timf34/JamesTurrellDigitalArt/engine/camera"
	"github.com/timf34/JamesTurrellDigitalArt/engine/model"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/bind_group_provider"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/material"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/pipeline"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/shader"
)

// Scene owns the camera, the fullscreen quad mesh, and the gradient material, and
// drives their GPU resources through the Renderer. Bind groups are wired automatically
// from the shaders' @field: provider declarations so the scene never hard-codes group
// indices. Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Model returns the fullscreen quad mesh.
	Model() model.Model

	// Material returns the gradient material whose uniforms are uploaded each frame.
	Material() material.Material

	// Resize updates the camera viewport, reconfigures the render surface, and
	// rebuilds the quad so it continues to cover the visible bounds exactly.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// PrepareFrame marshals the camera and material uniforms and uploads them to
	// the GPU. Must be called once per frame before DrawCalls.
	PrepareFrame()

	// DrawCalls issues the quad draw call with the camera and field bind groups.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	// No-ops when the scene is inactive.
	//
	// Returns:
	//   - error: error if the draw call fails
	DrawCalls() error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam  camera.Camera
	r    renderer.Renderer
	quad model.Model
	mat  material.Material

	pipelineKey string
	meshBGP     bind_group_provider.BindGroupProvider

	// drawBindGroups is ordered by group index and passed straight to DrawCall.
	drawBindGroups []bind_group_provider.BindGroupProvider

	// Binding indices within the field group, resolved from the shaders' group
	// declarations during construction.
	cameraBinding int
	shapeBinding  int
	stopsBinding  int

	// writePool is reused each frame to avoid per-frame allocations.
	writePool []bind_group_provider.BufferWrite

	pipelineOpts []pipeline.PipelineBuilderOption
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene from a camera, renderer, quad mesh, material, and the
// vertex/fragment shader pair that renders the field. All are required and NewScene
// panics if any is nil, since a scene without them cannot render anything.
//
// Construction registers the render pipeline under the material's pipeline key,
// uploads the quad's mesh buffers, and initializes one bind group per provider
// declared in the shaders: the camera provider is wired to the camera's
// BindGroupProvider and the field provider to the material's.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - quad: the fullscreen quad mesh (must not be nil)
//   - mat: the gradient material (must not be nil)
//   - vertexShader: the field vertex shader (must not be nil)
//   - fragmentShader: the field fragment shader (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, quad model.Model, mat material.Material, vertexShader, fragmentShader shader.Shader, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if quad == nil {
		panic("scene: NewScene requires a non-nil Model")
	}
	if mat == nil {
		panic("scene: NewScene requires a non-nil Material")
	}
	if vertexShader == nil || fragmentShader == nil {
		panic("scene: NewScene requires both a vertex and a fragment shader")
	}

	s := &scene{
		mu:            &sync.RWMutex{},
		name:          name,
		active:        false,
		cam:           cam,
		r:             r,
		quad:          quad,
		mat:           mat,
		pipelineKey:   mat.PipelineKey(),
		cameraBinding: 0,
		shapeBinding:  0,
		stopsBinding:  1,
	}

	for _, option := range options {
		option(s)
	}

	pipelineOpts := append([]pipeline.PipelineBuilderOption{
		pipeline.WithVertexShader(vertexShader),
		pipeline.WithFragmentShader(fragmentShader),
	}, s.pipelineOpts...)
	if err := r.RegisterPipelines(pipeline.NewPipeline(s.pipelineKey, pipelineOpts...)); err != nil {
		panic(fmt.Sprintf("scene: failed to register render pipeline: %v", err))
	}

	// Upload the quad's mesh buffers.
	s.meshBGP = bind_group_provider.NewBindGroupProvider(name + "_mesh")
	if err := r.InitMeshBuffers(s.meshBGP, quad.VertexData(), quad.IndexData(), quad.IndexCount()); err != nil {
		panic(fmt.Sprintf("scene: failed to init mesh buffers: %v", err))
	}

	s.wireBindGroups(vertexShader, fragmentShader)

	return s
}

// wireBindGroups resolves each shader-declared provider to its BindGroupProvider,
// initializes the GPU bind groups, and records the binding indices for the uniform
// uploads in PrepareFrame. Panics on unknown providers or GPU resource failures
// since a scene with unwired bind groups cannot issue a valid draw call.
func (s *scene) wireBindGroups(vertexShader, fragmentShader shader.Shader) {
	// Collect provider identities and struct type bindings per group from both
	// shaders' declarations.
	providers := make(map[int]shader.AnnotationArg)
	maxGroup := -1
	for _, sh := range []shader.Shader{vertexShader, fragmentShader} {
		for _, decl := range sh.Declarations() {
			if decl.Group == nil {
				continue
			}
			g := *decl.Group
			if g > maxGroup {
				maxGroup = g
			}
			switch decl.Type {
			case shader.AnnotationTypeProvider:
				providers[g] = decl.Args[0]
			case shader.AnnotationTypeBindingGroup:
				if decl.Binding == nil {
					continue
				}
				// The struct type argument tells us which uniform lives at
				// this binding, so PrepareFrame can target it directly.
				switch decl.Args[2] {
				case shader.AnnotationArgCamera:
					s.cameraBinding = *decl.Binding
				case shader.AnnotationArgShapeParams:
					s.shapeBinding = *decl.Binding
				case shader.AnnotationArgGradientStops:
					s.stopsBinding = *decl.Binding
				}
			}
		}
	}

	s.drawBindGroups = make([]bind_group_provider.BindGroupProvider, maxGroup+1)
	for g := 0; g <= maxGroup; g++ {
		identity, ok := providers[g]
		if !ok {
			panic(fmt.Sprintf("scene: bind group %d has no provider declaration", g))
		}

		var bgp bind_group_provider.BindGroupProvider
		switch identity {
		case shader.AnnotationArgCamera:
			bgp = s.cam.BindGroupProvider()
		case shader.AnnotationArgField:
			bgp = s.mat.BindGroupProvider()
		default:
			panic(fmt.Sprintf("scene: unknown provider identity %q for group %d", identity, g))
		}
		if bgp == nil {
			panic(fmt.Sprintf("scene: provider %q for group %d has no BindGroupProvider", identity, g))
		}

		descriptor := vertexShader.BindGroupLayoutDescriptor(g)
		if len(descriptor.Entries) == 0 {
			descriptor = fragmentShader.BindGroupLayoutDescriptor(g)
		}
		if err := s.r.InitBindGroup(bgp, descriptor, nil, nil); err != nil {
			panic(fmt.Sprintf("scene: failed to init bind group %d (%s): %v", g, identity, err))
		}
		s.drawBindGroups[g] = bgp
	}
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) Model() model.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quad
}

func (s *scene) Material() material.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mat
}

func (s *scene) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width <= 0 || height <= 0 {
		return // minimized — keep the previous surface until restored
	}

	s.cam.SetViewport(width, height)
	s.r.Resize(width, height)

	// The orthographic bounds changed, so the quad must grow or shrink with them
	// to keep covering the full viewport.
	halfWidth, halfHeight := s.cam.Bounds()
	s.quad.Resize(halfWidth, halfHeight)
	if err := s.r.WriteMeshBuffers(s.meshBGP, s.quad.VertexData(), s.quad.IndexData(), s.quad.IndexCount()); err != nil {
		panic(fmt.Sprintf("scene: failed to update quad mesh buffers: %v", err))
	}
}

func (s *scene) PrepareFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writePool = s.writePool[:0]

	camUniform := camera.GPUCameraUniform{ViewProj: s.cam.ViewProjectionMatrix()}
	s.writePool = append(s.writePool, bind_group_provider.BufferWrite{
		Provider: s.cam.BindGroupProvider(),
		Binding:  s.cameraBinding,
		Data:     camUniform.Marshal(),
	})

	shapeParams := s.mat.ShapeParams()
	gradientStops := s.mat.GradientStops()
	s.writePool = append(s.writePool,
		bind_group_provider.BufferWrite{
			Provider: s.mat.BindGroupProvider(),
			Binding:  s.shapeBinding,
			Data:     shapeParams.Marshal(),
		},
		bind_group_provider.BufferWrite{
			Provider: s.mat.BindGroupProvider(),
			Binding:  s.stopsBinding,
			Data:     gradientStops.Marshal(),
		},
	)

	s.r.WriteBuffers(s.writePool)
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active {
		return nil
	}

	return s.r.DrawCall(s.pipelineKey, s.meshBGP, 1, s.drawBindGroups)
}
