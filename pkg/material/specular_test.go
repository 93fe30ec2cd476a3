package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

func TestSpecularSampleReflectsAboutNormal(t *testing.T) {
	s := NewSpecular(spectral.Flat{Constant: 0.9}, 0, 0)
	rng := rand.New(rand.NewSource(3))
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(1, -1, 0).Normalize()
	point := core.NewVec3(0, 0, 0)

	_, dir := s.Sample(point, incident, normal, 550, rng)
	want := core.NewVec3(1, 1, 0).Normalize()
	if !dir.Equals(want) {
		t.Errorf("Sample direction = %v, want %v", dir, want)
	}
}

func TestSpecularReflectanceSampled(t *testing.T) {
	s := NewSpecular(spectral.Flat{Constant: 0.9}, 0, 0)
	r := s.Reflectance(core.Vec3{}, core.Vec3{}, core.Vec3{}, 550, true)
	if math.Abs(r-0.9) > 1e-9 {
		t.Errorf("sampled reflectance = %v, want 0.9", r)
	}
}

func TestSpecularReflectanceUnsampledMismatch(t *testing.T) {
	s := NewSpecular(spectral.Flat{Constant: 0.9}, 0, 0)
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(1, -1, 0).Normalize()

	// A direction that does not satisfy the law of reflection should get
	// zero reflectance when not importance-sampled.
	wrongExitant := core.NewVec3(0, 1, 1).Normalize()
	if r := s.Reflectance(incident, wrongExitant, normal, 550, false); r != 0 {
		t.Errorf("expected zero reflectance for mismatched exitant, got %v", r)
	}

	correctExitant := core.Reflect(incident, normal)
	if r := s.Reflectance(incident, correctExitant, normal, 550, false); math.Abs(r-0.9) > 1e-6 {
		t.Errorf("expected full reflectance for the exact reflected direction, got %v", r)
	}
}
