package loader

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/dpeeke/lambda-spectral/pkg/camera"
	"github.com/dpeeke/lambda-spectral/pkg/colorsys"
	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/geometry"
	"github.com/dpeeke/lambda-spectral/pkg/light"
	"github.com/dpeeke/lambda-spectral/pkg/material"
)

// sceneBuilder assembles a binary scene file buffer record by record, for
// use as a test fixture.
type sceneBuilder struct {
	buf bytes.Buffer
}

func (b *sceneBuilder) header(width, height, samples int32) *sceneBuilder {
	binary.Write(&b.buf, binary.LittleEndian, width)
	binary.Write(&b.buf, binary.LittleEndian, height)
	binary.Write(&b.buf, binary.LittleEndian, samples)
	return b
}

func (b *sceneBuilder) record(recordType, subtype uint32) *sceneBuilder {
	binary.Write(&b.buf, binary.LittleEndian, recordType)
	binary.Write(&b.buf, binary.LittleEndian, subtype)
	return b
}

func (b *sceneBuilder) f32(values ...float64) *sceneBuilder {
	for _, v := range values {
		binary.Write(&b.buf, binary.LittleEndian, float32(v))
	}
	return b
}

func (b *sceneBuilder) u32(values ...uint32) *sceneBuilder {
	for _, v := range values {
		binary.Write(&b.buf, binary.LittleEndian, v)
	}
	return b
}

func (b *sceneBuilder) i32(values ...int32) *sceneBuilder {
	for _, v := range values {
		binary.Write(&b.buf, binary.LittleEndian, v)
	}
	return b
}

func buildMinimalScene() *sceneBuilder {
	b := &sceneBuilder{}
	b.header(64, 48, 16)

	b.record(typeColorSystem, 3) // Rec709

	b.record(typeCamera, 0).
		f32(0, 0, -5). // position
		f32(0, 0, 0).  // target
		f32(math.Pi / 2)

	b.record(typeDistribution, 1).f32(0.8) // flat reflectance, index 0
	b.record(typeDistribution, 1).f32(1.5) // flat refractive index, index 1

	b.record(typeMaterial, 0). // diffuse
					f32(0, 0). // e1, e2
					u32(0)     // reflectance index

	b.record(typeLight, 0).u32(0) // omni emittance = reflectance distribution, index 0

	b.record(typePrimitive, 0). // sphere
					i32(0, 0).         // material 0, light 0
					f32(0, 0, 0, 1)    // center, radius

	b.record(typePrimitive, 1). // triangle
					i32(-1, -1).
					f32(-1, -1, 5, 1, -1, 5, 0, 1, 5)

	return b
}

func TestDecodeMinimalScene(t *testing.T) {
	s, err := Decode(bytes.NewReader(buildMinimalScene().buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if s.Params.Width != 64 || s.Params.Height != 48 || s.Params.Samples != 16 {
		t.Errorf("Params = %+v", s.Params)
	}
	if s.ColorSystem != colorsys.Rec709 {
		t.Errorf("ColorSystem mismatch: got %+v", s.ColorSystem)
	}
	if _, ok := s.Camera.(*camera.Perspective); !ok {
		t.Errorf("Camera type = %T, want *camera.Perspective", s.Camera)
	}
	if len(s.Distributions) != 2 {
		t.Fatalf("Distributions = %d, want 2", len(s.Distributions))
	}
	if len(s.Materials) != 1 {
		t.Fatalf("Materials = %d, want 1", len(s.Materials))
	}
	if _, ok := s.Materials[0].(*material.Diffuse); !ok {
		t.Errorf("Material type = %T, want *material.Diffuse", s.Materials[0])
	}
	if len(s.Lights) != 1 {
		t.Fatalf("Lights = %d, want 1", len(s.Lights))
	}
	if _, ok := s.Lights[0].(*light.Omni); !ok {
		t.Errorf("Light type = %T, want *light.Omni", s.Lights[0])
	}
	if len(s.Primitives) != 2 {
		t.Fatalf("Primitives = %d, want 2", len(s.Primitives))
	}
	if s.BVH == nil {
		t.Fatal("expected scene.Build to populate BVH")
	}
}

func TestDecodeRejectsUnknownEntityType(t *testing.T) {
	b := &sceneBuilder{}
	b.header(1, 1, 1)
	b.record(99, 0)

	_, err := Decode(bytes.NewReader(b.buf.Bytes()))
	if err == nil {
		t.Fatal("expected an error for an unknown entity type")
	}
	se, ok := err.(*core.SceneError)
	if !ok {
		t.Fatalf("error type = %T, want *core.SceneError", err)
	}
	if se.Kind != core.InvalidScene {
		t.Errorf("Kind = %v, want InvalidScene", se.Kind)
	}
}

func TestDecodeRejectsOutOfRangeMaterialIndex(t *testing.T) {
	b := &sceneBuilder{}
	b.header(1, 1, 1)
	b.record(typePrimitive, 0).
		i32(5, -1). // material index 5 does not exist
		f32(0, 0, 0, 1)

	_, err := Decode(bytes.NewReader(b.buf.Bytes()))
	if err == nil {
		t.Fatal("expected an error for an out-of-range material index")
	}
}

func TestDecodeRejectsUnknownColorSystem(t *testing.T) {
	b := &sceneBuilder{}
	b.header(1, 1, 1)
	b.record(typeColorSystem, 99)

	_, err := Decode(bytes.NewReader(b.buf.Bytes()))
	if err == nil {
		t.Fatal("expected an error for an unknown color system subtype")
	}
}

func TestDecodeEmptySceneIsValid(t *testing.T) {
	b := &sceneBuilder{}
	b.header(10, 10, 4)

	s, err := Decode(bytes.NewReader(b.buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode failed on an otherwise-empty scene: %v", err)
	}
	if len(s.Primitives) != 0 {
		t.Errorf("expected no primitives, got %d", len(s.Primitives))
	}
}

func TestDecodeSphereGeometry(t *testing.T) {
	s, err := Decode(bytes.NewReader(buildMinimalScene().buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	sphere, ok := findPrimitive[*geometry.Sphere](s.Primitives)
	if !ok {
		t.Fatal("expected a sphere primitive")
	}
	if !sphere.Center.Equals(core.NewVec3(0, 0, 0)) || sphere.Radius != 1 {
		t.Errorf("sphere = %+v", sphere)
	}
}

func findPrimitive[T any](primitives []geometry.Primitive) (T, bool) {
	var zero T
	for _, p := range primitives {
		if typed, ok := p.(T); ok {
			return typed, true
		}
	}
	return zero, false
}
