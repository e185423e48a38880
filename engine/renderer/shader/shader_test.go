package shader

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const testVertexSource = `//@field:include vertex
//@field:include camera

//@field:group 0 0 storage_uniform camera camera
//@field:provider 0 0 camera

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = camera.view_proj * vec4<f32>(in.position, 1.0);
    out.uv = in.uv;
    return out;
}
`

const testFragmentSource = `//@field:include shape_params
//@field:include gradient_stops

//@field:group 1 0 storage_uniform shape_params shape_params
//@field:group 1 1 storage_uniform gradient_stops gradient_stops
//@field:provider 1 0 field

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(uv, shape_params.intensity, 1.0);
}
`

func TestPreProcessorInjectsStructs(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process(testVertexSource)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"struct VertexInput", "struct CameraUniform"} {
		if !strings.Contains(out, want) {
			t.Fatalf("processed source missing %q", want)
		}
	}
	if strings.Contains(out, "@field:") {
		t.Fatal("annotations leaked into processed source")
	}
}

func TestPreProcessorEmitsGroupDeclaration(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process(testVertexSource)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "@group(0) @binding(0) var<uniform> camera: CameraUniform;") {
		t.Fatalf("generated declaration missing from:\n%s", out)
	}
}

func TestPreProcessorDeclarations(t *testing.T) {
	pp := NewPreProcessor()
	if _, err := pp.Process(testFragmentSource); err != nil {
		t.Fatal(err)
	}

	decls := pp.Declarations()
	if len(decls) != 3 {
		t.Fatalf("declaration count = %d, want 3", len(decls))
	}

	var groups, providers int
	for _, d := range decls {
		switch d.Type {
		case AnnotationTypeBindingGroup:
			groups++
			if d.Group == nil || d.Binding == nil {
				t.Fatalf("group declaration missing indices: %+v", d)
			}
			if *d.Group != 1 {
				t.Fatalf("group declaration at group %d, want 1", *d.Group)
			}
		case AnnotationTypeProvider:
			providers++
			if d.Args[0] != AnnotationArgField {
				t.Fatalf("provider identity = %q, want field", d.Args[0])
			}
		}
	}
	if groups != 2 || providers != 1 {
		t.Fatalf("got %d group and %d provider declarations, want 2 and 1", groups, providers)
	}
}

func TestPreProcessorRejectsMalformedAnnotations(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unknown type", "//@field:texture 0 0"},
		{"unknown struct", "//@field:include heightmap"},
		{"group arity", "//@field:group 0 0 storage_uniform camera"},
		{"bad group index", "//@field:group x 0 storage_uniform camera camera"},
		{"unknown address space", "//@field:group 0 0 push_constant camera camera"},
		{"unknown provider", "//@field:provider 0 0 particles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPreProcessor().Process(tt.source); err == nil {
				t.Fatal("expected pre-processor error")
			}
		})
	}
}

func TestNewShaderFromSourceVertex(t *testing.T) {
	s := NewShaderFromSource("test_vert", ShaderTypeVertex, testVertexSource)

	if s.EntryPoint() != "vs_main" {
		t.Fatalf("entry point = %q, want vs_main", s.EntryPoint())
	}
	if s.Module() == nil || s.Module().WGSLDescriptor.Code == "" {
		t.Fatal("shader module descriptor not built")
	}
	if len(s.VertexLayouts()) == 0 {
		t.Fatal("vertex shader should parse vertex buffer layouts")
	}

	desc := s.BindGroupLayoutDescriptor(0)
	if len(desc.Entries) != 1 {
		t.Fatalf("group 0 entry count = %d, want 1", len(desc.Entries))
	}
	if desc.Entries[0].Visibility&wgpu.ShaderStageVertex == 0 {
		t.Fatal("group 0 entry should be vertex-visible")
	}
	if got := s.BindGroupVarName(0, 0); got != "camera" {
		t.Fatalf("var name at (0, 0) = %q, want camera", got)
	}
}

func TestNewShaderFromSourceFragment(t *testing.T) {
	s := NewShaderFromSource("test_frag", ShaderTypeFragment, testFragmentSource)

	if s.EntryPoint() != "fs_main" {
		t.Fatalf("entry point = %q, want fs_main", s.EntryPoint())
	}

	desc := s.BindGroupLayoutDescriptor(1)
	if len(desc.Entries) != 2 {
		t.Fatalf("group 1 entry count = %d, want 2", len(desc.Entries))
	}
	for _, entry := range desc.Entries {
		if entry.Visibility&wgpu.ShaderStageFragment == 0 {
			t.Fatalf("binding %d should be fragment-visible", entry.Binding)
		}
	}

	// MinBindingSize drives buffer allocation: ShapeParams is 32 bytes, the
	// stop array 8 x vec4 = 128 bytes.
	if desc.Entries[0].Buffer.MinBindingSize != 32 {
		t.Fatalf("shape params MinBindingSize = %d, want 32", desc.Entries[0].Buffer.MinBindingSize)
	}
	if desc.Entries[1].Buffer.MinBindingSize != 128 {
		t.Fatalf("gradient stops MinBindingSize = %d, want 128", desc.Entries[1].Buffer.MinBindingSize)
	}

	binding, ok := s.BindGroupFromVarName(1, "gradient_stops")
	if !ok || binding != 1 {
		t.Fatalf("gradient_stops binding = (%d, %v), want (1, true)", binding, ok)
	}
	if got := len(s.Declarations()); got != 3 {
		t.Fatalf("declaration count = %d, want 3", got)
	}
}

func TestNewShaderFromSourcePanicsOnBadSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for malformed annotation")
		}
	}()
	NewShaderFromSource("bad", ShaderTypeFragment, "//@field:include unknown_struct")
}
