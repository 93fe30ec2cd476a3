// Package material implements the renderer's BRDFs/BTDFs: diffuse, perfect
// specular, smooth and frosted dielectric, and Cook-Torrance. Each material
// samples an importance-sampled exitant direction for a given incident
// direction and wavelength, and can separately evaluate its reflectance for
// an arbitrary incident/exitant pair.
package material

import (
	"math/rand"

	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// Subtype identifies a material's concrete type in the scene file, per the
// binary scene format (spec §6).
type Subtype uint32

const (
	SubtypeDiffuse      Subtype = 0
	SubtypeSpecular     Subtype = 1
	SubtypeSmoothGlass  Subtype = 2
	SubtypeFrostedGlass Subtype = 3
	SubtypeCookTorrance Subtype = 4
)

// Material is the common interface implemented by every BRDF/BTDF. All
// angular quantities are wavelength-dependent, since refractive indices and
// reflectances vary with wavelength.
type Material interface {
	// Sample returns an importance-sampled exitant direction for the given
	// incident direction, surface normal and wavelength, along with the ray
	// origin displaced slightly off the surface (along whichever side the
	// exitant ray leaves from) to avoid self-intersection on the next
	// bounce.
	Sample(point, incident, normal core.Vec3, wavelength float64, rng *rand.Rand) (origin, direction core.Vec3)

	// Reflectance evaluates the material's reflectance for an incident and
	// exitant direction pair. When sampled is true, exitant is assumed to
	// have come from this material's own Sample method, which lets several
	// materials take a cheaper, importance-sampling-aware shortcut. The
	// path integrator uses the returned value directly as its Russian
	// roulette survival probability. The value is not clamped: SmoothGlass
	// returns exactly 1 for a sampled direction, and FrostedGlass and
	// CookTorrance can return values above 1, which always survive.
	Reflectance(incident, exitant, normal core.Vec3, wavelength float64, sampled bool) float64

	// Extinction returns the outside/inside extinction coefficients used
	// for Beer-Lambert attenuation of rays traveling through the medium on
	// either side of the surface.
	Extinction() Extinction
}

// Extinction holds a material's outside (e1) and inside (e2) extinction
// coefficients, used by the path integrator to attenuate radiance via the
// Beer-Lambert law as a ray travels between two intersections.
type Extinction struct {
	E1, E2 float64
}

// epsilon is the distance new ray origins are displaced off a surface to
// avoid immediate self-intersection due to floating-point rounding.
const epsilon = 1e-3

// alignNormal flips normal to the same side as incident, so that downstream
// sampling code can assume it is always facing back towards the ray.
func alignNormal(incident, normal core.Vec3) core.Vec3 {
	if incident.Dot(normal) > 0 {
		return normal.Negate()
	}
	return normal
}
