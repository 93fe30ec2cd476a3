package material

import (
	"math"
	"math/rand"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// FrostedGlass is a rough dielectric BTDF/BRDF: a Beckmann microfacet
// distribution of smooth-glass interfaces, reflecting or refracting off a
// sampled microfacet normal rather than the shading normal directly. The
// outside medium's refractive index is assumed to be 1.
type FrostedGlass struct {
	refractiveIndex spectral.Distribution
	roughness       float64
	extinction      Extinction
}

// NewFrostedGlass creates a frosted glass material.
func NewFrostedGlass(refractiveIndex spectral.Distribution, roughness, e1, e2 float64) *FrostedGlass {
	return &FrostedGlass{refractiveIndex: refractiveIndex, roughness: roughness, extinction: Extinction{E1: e1, E2: e2}}
}

// Extinction implements Material.
func (g *FrostedGlass) Extinction() Extinction { return g.extinction }

// Sample draws a microfacet normal from the Beckmann distribution, then
// reflects or refracts the incident ray off it exactly as SmoothGlass would
// off the shading normal.
func (g *FrostedGlass) Sample(point, incident, normal core.Vec3, wavelength float64, rng *rand.Rand) (core.Vec3, core.Vec3) {
	m := core.RotateToNormal(core.BeckmannMicrofacetNormal(g.roughness, rng), normal)

	cosI := incident.Dot(normal)
	var n1, n2 float64
	if cosI > 0 {
		n1 = g.refractiveIndex.Lookup(wavelength)
		n2 = 1.0
		m = m.Negate()
	} else {
		n2 = g.refractiveIndex.Lookup(wavelength)
		n1 = 1.0
	}
	// m now faces back towards the incident ray; take the incidence cosine
	// against it, not against the shading normal.
	cosI = -incident.Dot(m)

	cosT2 := 1.0 - (n1/n2)*(n1/n2)*(1.0-cosI*cosI)
	if cosT2 < 0 {
		origin := point.Add(m.Multiply(epsilon))
		return origin, core.Reflect(incident, m)
	}
	cosT := math.Sqrt(cosT2)

	r := core.FresnelReflectance(n1, n2, cosI, cosT)

	if core.RandomVariable(rng) < r {
		origin := point.Add(m.Multiply(epsilon))
		return origin, core.Reflect(incident, m)
	}

	origin := point.Subtract(m.Multiply(epsilon))
	direction := incident.Multiply(n1 / n2).Add(m.Multiply((n1/n2)*cosI - cosT))
	return origin, direction
}

// Reflectance evaluates the rough-dielectric BTDF/BRDF by reconstructing
// the microfacet (half-angle) vector from the incident and exitant
// directions, then combining the Beckmann distribution term with a
// Smith-style geometric attenuation term. The Fresnel term is intentionally
// omitted, since Sample already weighted the reflection/refraction choice
// by it.
//
// The sign test that decides which side of the surface incident lies on
// uses incident.Dot(normal) > 0, matching the convention Sample uses -
// unlike evaluating the bare dot product as a boolean, which would treat
// every nonzero incidence (i.e. every real ray) as "inside."
func (g *FrostedGlass) Reflectance(incident, exitant, normal core.Vec3, wavelength float64, sampled bool) float64 {
	if incident.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	var h core.Vec3
	if incident.Dot(exitant) < 0 {
		// Reflection.
		h = exitant.Subtract(incident).Normalize()
	} else {
		// Refraction: reconstruct the microfacet normal from Snell's law.
		n1 := 1.0
		n2 := g.refractiveIndex.Lookup(wavelength)
		cI := math.Abs(incident.Dot(normal))
		cT := 1.0 - (n1/n2)*(n1/n2)*(1.0-cI*cI)
		h = incident.Multiply(n1 / n2).Subtract(exitant).Multiply(1.0 / ((n1/n2)*cI - cT))
	}

	d := 1.0
	if !sampled {
		alpha := math.Acos(h.Dot(normal))
		d = core.BeckmannD(alpha, g.roughness)
	}

	ndv := math.Abs(incident.Dot(normal))
	ndl := math.Abs(normal.Dot(exitant))
	vdh := math.Abs(incident.Dot(h))
	ndh := math.Abs(normal.Dot(h))

	geom := math.Min(1.0, math.Min(2.0*ndh*ndv/vdh, 2.0*ndh*ndl/vdh))
	norm := 1.0 / (math.Pi * g.roughness * g.roughness * ndh * ndh * ndh * ndh)

	return norm * (d * geom) / ndv
}
