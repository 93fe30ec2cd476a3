package material

import (
	"math"
	"math/rand"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// SmoothGlass is a smooth dielectric BTDF/BRDF: a perfectly clear interface
// between two media that reflects or refracts according to the Fresnel
// equations, with total internal reflection handled explicitly. The outside
// medium's refractive index is assumed to be 1.
type SmoothGlass struct {
	refractiveIndex spectral.Distribution
	extinction      Extinction
}

// NewSmoothGlass creates a smooth glass material.
func NewSmoothGlass(refractiveIndex spectral.Distribution, e1, e2 float64) *SmoothGlass {
	return &SmoothGlass{refractiveIndex: refractiveIndex, extinction: Extinction{E1: e1, E2: e2}}
}

// Extinction implements Material.
func (g *SmoothGlass) Extinction() Extinction { return g.extinction }

// Sample refracts or reflects the incident ray according to Snell's law and
// the Fresnel equations, choosing between the two by a random trial
// weighted by the Fresnel reflectance, and always reflecting under total
// internal reflection.
func (g *SmoothGlass) Sample(point, incident, normal core.Vec3, wavelength float64, rng *rand.Rand) (core.Vec3, core.Vec3) {
	cosI := incident.Dot(normal)
	var n1, n2 float64
	if cosI > 0 {
		// Ray is inside the material, traveling towards its own exterior.
		n1 = g.refractiveIndex.Lookup(wavelength)
		n2 = 1.0
		normal = normal.Negate()
	} else {
		n2 = g.refractiveIndex.Lookup(wavelength)
		n1 = 1.0
		cosI = -cosI
	}

	cosT2 := 1.0 - (n1/n2)*(n1/n2)*(1.0-cosI*cosI)
	if cosT2 < 0 {
		origin := point.Add(normal.Multiply(epsilon))
		return origin, core.Reflect(incident, normal)
	}
	cosT := math.Sqrt(cosT2)

	r := core.FresnelReflectance(n1, n2, cosI, cosT)

	if core.RandomVariable(rng) < r {
		origin := point.Add(normal.Multiply(epsilon))
		return origin, core.Reflect(incident, normal)
	}

	origin := point.Subtract(normal.Multiply(epsilon))
	direction := incident.Multiply(n1 / n2).Add(normal.Multiply((n1/n2)*cosI - cosT))
	return origin, direction
}

// Reflectance returns 1 when importance-sampled, since the reflection and
// refraction probabilities were already weighted by the Fresnel equations
// during sampling; the non-importance-sampled case is a coherent delta
// function that this renderer never evaluates (see SmoothGlass's Open
// Question in the design notes) and so returns 0, matching the original
// implementation's unfinished formulation.
func (g *SmoothGlass) Reflectance(incident, exitant, normal core.Vec3, wavelength float64, sampled bool) float64 {
	if sampled {
		return 1.0
	}
	return 0
}
