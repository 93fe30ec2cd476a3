package material

import (
	"math"
	"math/rand"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// CookTorrance is a microfacet BRDF combining a Beckmann distribution term,
// a Smith-style geometric attenuation term and the Fresnel equations. The
// outside medium's refractive index is assumed to be 1.
type CookTorrance struct {
	reflectance     spectral.Distribution
	refractiveIndex spectral.Distribution
	roughness       float64
	extinction      Extinction
}

// NewCookTorrance creates a Cook-Torrance material.
func NewCookTorrance(reflectance, refractiveIndex spectral.Distribution, roughness, e1, e2 float64) *CookTorrance {
	return &CookTorrance{
		reflectance:     reflectance,
		refractiveIndex: refractiveIndex,
		roughness:       roughness,
		extinction:      Extinction{E1: e1, E2: e2},
	}
}

// Extinction implements Material.
func (c *CookTorrance) Extinction() Extinction { return c.extinction }

// Sample draws a microfacet normal from the Beckmann distribution and
// reflects the incident ray off it.
func (c *CookTorrance) Sample(point, incident, normal core.Vec3, wavelength float64, rng *rand.Rand) (core.Vec3, core.Vec3) {
	normal = alignNormal(incident, normal)
	origin := point.Add(normal.Multiply(epsilon))

	m := core.RotateToNormal(core.BeckmannMicrofacetNormal(c.roughness, rng), normal)
	return origin, core.Reflect(incident, m)
}

// Reflectance evaluates the Cook-Torrance BRDF for an incident/exitant
// direction pair.
func (c *CookTorrance) Reflectance(incident, exitant, normal core.Vec3, wavelength float64, sampled bool) float64 {
	normal = alignNormal(incident, normal)
	h := exitant.Subtract(incident).Normalize()

	d := 1.0
	if !sampled {
		alpha := math.Acos(h.Dot(normal))
		d = core.BeckmannD(alpha, c.roughness)
	}

	n2 := c.refractiveIndex.Lookup(wavelength)
	n1 := 1.0

	cosI := math.Abs(incident.Dot(normal))
	cosT := math.Sqrt(1.0 - (n1/n2)*(n1/n2)*(1.0-cosI*cosI))

	f := core.FresnelReflectance(n1, n2, cosI, cosT)

	ndl := math.Abs(normal.Dot(exitant))
	vdh := math.Abs(incident.Dot(h))
	ndh := math.Abs(normal.Dot(h))
	ndv := cosI

	geom := math.Min(1.0, math.Min(2.0*ndh*ndv/vdh, 2.0*ndh*ndl/vdh))
	norm := 1.0 / (math.Pi * c.roughness * c.roughness * ndh * ndh * ndh * ndh)

	return norm * c.reflectance.Lookup(wavelength) * (f * d * geom) / ndv
}
