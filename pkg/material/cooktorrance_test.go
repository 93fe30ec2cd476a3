package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

func TestCookTorranceSampleProducesUnitDirections(t *testing.T) {
	c := NewCookTorrance(spectral.Flat{Constant: 0.8}, spectral.Flat{Constant: 1.5}, 0.2, 0, 0)
	rng := rand.New(rand.NewSource(31))
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(0.3, -1, 0).Normalize()
	point := core.NewVec3(0, 0, 0)

	for i := 0; i < 500; i++ {
		_, dir := c.Sample(point, incident, normal, 550, rng)
		if math.Abs(dir.Length()-1) > 1e-6 {
			t.Fatalf("direction not unit length: %v", dir.Length())
		}
	}
}

func TestCookTorranceReflectanceNonNegative(t *testing.T) {
	c := NewCookTorrance(spectral.Flat{Constant: 0.8}, spectral.Flat{Constant: 1.5}, 0.2, 0, 0)
	rng := rand.New(rand.NewSource(9))
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(0, -1, 0)
	point := core.NewVec3(0, 0, 0)

	for i := 0; i < 200; i++ {
		_, exitant := c.Sample(point, incident, normal, 550, rng)
		r := c.Reflectance(incident, exitant, normal, 550, true)
		if r < 0 || math.IsNaN(r) {
			t.Fatalf("invalid reflectance: %v", r)
		}
	}
}

func TestCookTorranceExtinction(t *testing.T) {
	c := NewCookTorrance(spectral.Flat{Constant: 0.8}, spectral.Flat{Constant: 1.5}, 0.2, 0.01, 0.02)
	ext := c.Extinction()
	if ext.E1 != 0.01 || ext.E2 != 0.02 {
		t.Errorf("Extinction = %+v", ext)
	}
}
