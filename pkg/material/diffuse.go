package material

import (
	"math"
	"math/rand"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// Diffuse is a perfectly Lambertian BRDF with a spectral reflectance
// distribution.
type Diffuse struct {
	reflectance spectral.Distribution
	extinction  Extinction
}

// NewDiffuse creates a diffuse material.
func NewDiffuse(reflectance spectral.Distribution, e1, e2 float64) *Diffuse {
	return &Diffuse{reflectance: reflectance, extinction: Extinction{E1: e1, E2: e2}}
}

// Extinction implements Material.
func (d *Diffuse) Extinction() Extinction { return d.extinction }

// Sample returns a cosine-weighted random direction about the normal,
// aligned to face the incident ray.
func (d *Diffuse) Sample(point, incident, normal core.Vec3, wavelength float64, rng *rand.Rand) (core.Vec3, core.Vec3) {
	normal = alignNormal(incident, normal)
	origin := point.Add(normal.Multiply(epsilon))

	local := core.CosineSampleHemisphere(rng)
	direction := core.RotateToNormal(local, normal)

	return origin, direction
}

// Reflectance evaluates the diffuse BRDF. When importance-sampled, the
// cosine-weighted PDF exactly cancels the BRDF's cosine term and the
// ubiquitous 1/pi factor, leaving just the spectral reflectance.
func (d *Diffuse) Reflectance(incident, exitant, normal core.Vec3, wavelength float64, sampled bool) float64 {
	if sampled {
		return math.Max(d.reflectance.Lookup(wavelength), 0)
	}
	return math.Max(2.0*d.reflectance.Lookup(wavelength)*math.Abs(exitant.Dot(normal)), 0)
}
