package material

import (
	"math"
	"math/rand"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// Specular is a perfect mirror BRDF with a spectral reflectance
// distribution.
type Specular struct {
	reflectance spectral.Distribution
	extinction  Extinction
}

// NewSpecular creates a specular material.
func NewSpecular(reflectance spectral.Distribution, e1, e2 float64) *Specular {
	return &Specular{reflectance: reflectance, extinction: Extinction{E1: e1, E2: e2}}
}

// Extinction implements Material.
func (s *Specular) Extinction() Extinction { return s.extinction }

// Sample returns the perfect mirror reflection of incident about normal.
func (s *Specular) Sample(point, incident, normal core.Vec3, wavelength float64, rng *rand.Rand) (core.Vec3, core.Vec3) {
	normal = alignNormal(incident, normal)
	origin := point.Add(normal.Multiply(epsilon))
	return origin, core.Reflect(incident, normal)
}

// Reflectance returns the spectral reflectance if exitant satisfies the law
// of reflection (always true when sampled), otherwise zero.
func (s *Specular) Reflectance(incident, exitant, normal core.Vec3, wavelength float64, sampled bool) float64 {
	if sampled {
		return math.Max(s.reflectance.Lookup(wavelength), 0)
	}

	expected := core.Reflect(incident, normal)
	if !isDelta(1.0 - expected.Dot(exitant)) {
		return 0
	}
	return math.Max(s.reflectance.Lookup(wavelength), 0)
}

// isDelta reports whether a value is close enough to zero to be considered
// coincident with a delta function, mirroring the original renderer's
// delta() epsilon test used to compare directions for perfectly specular
// reflectance evaluation.
func isDelta(v float64) bool {
	const deltaEpsilon = 1e-3
	return math.Abs(v) < deltaEpsilon
}
