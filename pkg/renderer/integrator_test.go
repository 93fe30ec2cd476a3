package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dpeeke/lambda-spectral/pkg/colorsys"
	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/geometry"
	"github.com/dpeeke/lambda-spectral/pkg/light"
	"github.com/dpeeke/lambda-spectral/pkg/material"
	"github.com/dpeeke/lambda-spectral/pkg/scene"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// emitterScene builds a scene with a single emissive sphere of the given
// radiance, and nothing else.
func emitterScene(emittance float64) *scene.Scene {
	s := &scene.Scene{
		Params:      scene.RenderParams{Width: 1, Height: 1, Samples: 1},
		ColorSystem: colorsys.Rec709,
		Lights:      []light.Light{light.NewOmni(spectral.Flat{Constant: emittance})},
		Primitives:  []geometry.Primitive{geometry.NewSphere(core.NewVec3(0, 0, 5), 1, -1, 0)},
	}
	s.Build()
	return s
}

func TestRadianceHitsLightDirectly(t *testing.T) {
	s := emitterScene(2.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	rng := rand.New(rand.NewSource(1))

	got := Radiance(s, ray, 550, rng)
	if got != 2.5 {
		t.Errorf("Radiance = %v, want 2.5", got)
	}
}

func TestRadianceMissReturnsZero(t *testing.T) {
	s := emitterScene(2.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	rng := rand.New(rand.NewSource(1))

	if got := Radiance(s, ray, 550, rng); got != 0 {
		t.Errorf("Radiance = %v, want 0 on a miss", got)
	}
}

// diffuseBoxScene builds a sphere light inside a single diffuse-walled
// sphere surrounding it, so a camera ray bounces at least once before
// reaching the light.
func diffuseBoxScene(reflectance, emittance float64) *scene.Scene {
	s := &scene.Scene{
		Params:      scene.RenderParams{Width: 1, Height: 1, Samples: 1},
		ColorSystem: colorsys.Rec709,
		Materials:   []material.Material{material.NewDiffuse(spectral.Flat{Constant: reflectance}, 0, 0)},
		Lights:      []light.Light{light.NewOmni(spectral.Flat{Constant: emittance})},
		Primitives: []geometry.Primitive{
			geometry.NewSphere(core.NewVec3(0, 0, 0), 0.1, -1, 0),
			geometry.NewSphere(core.NewVec3(0, 0, 0), 10, 0, -1),
		},
	}
	s.Build()
	return s
}

func TestRadianceNeverNegative(t *testing.T) {
	s := diffuseBoxScene(0.8, 1.0)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(5, 0, 0)
		dir := core.NewVec3(-1, core.RandomVariable(rng)-0.5, core.RandomVariable(rng)-0.5).Normalize()
		ray := core.NewRay(origin, dir)

		got := Radiance(s, ray, 550, rng)
		if got < 0 || math.IsNaN(got) {
			t.Fatalf("Radiance returned %v, want a finite value >= 0", got)
		}
	}
}

func TestRadianceMaterialMissingIsTreatedAsMiss(t *testing.T) {
	s := &scene.Scene{
		Params:     scene.RenderParams{Width: 1, Height: 1, Samples: 1},
		Primitives: []geometry.Primitive{geometry.NewSphere(core.NewVec3(0, 0, 5), 1, -1, -1)},
	}
	s.Build()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	rng := rand.New(rand.NewSource(1))

	if got := Radiance(s, ray, 550, rng); got != 0 {
		t.Errorf("Radiance = %v, want 0 for a primitive with no material or light", got)
	}
}
