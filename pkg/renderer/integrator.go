// Package renderer implements the path integrator and the parallel render
// driver that ties the scene, BVH and color pipeline together into a final
// image.
package renderer

import (
	"math"
	"math/rand"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/scene"
)

// tMin is the minimum intersection distance accepted by the integrator, to
// avoid a ray immediately re-intersecting the surface it was just spawned
// from due to floating-point rounding.
const tMin = 1e-4

// Radiance traces a single wavelength-specific path through the scene from
// ray, returning that one path sample's contribution. It does not
// explicitly accumulate a running throughput weight along the path:
// Russian roulette is driven directly by each bounce's reflectance, so for a
// reflectance below 1 the probability of surviving a bounce equals that
// bounce's multiplicative weight, and the walk can simply return either the
// next bounce's value unweighted or zero. A reflectance of 1 or more always
// survives, so its weight counts as 1.
func Radiance(s *scene.Scene, ray core.Ray, wavelength float64, rng *rand.Rand) float64 {
	for {
		hit, ok := s.BVH.Hit(ray, tMin, math.Inf(1))
		if !ok {
			return 0
		}

		point := hit.Point
		incident := ray.Direction
		normal := hit.Normal
		prim := s.BVH.Primitives[hit.Primitive]

		if lightIdx := prim.LightIndex(); lightIdx >= 0 {
			// Light sources are assumed not to reflect incident light.
			return s.Lights[lightIdx].Emittance(incident, normal, wavelength)
		}

		materialIdx := prim.MaterialIndex()
		if materialIdx < 0 {
			// A non-emissive primitive with no material cannot scatter
			// light; treat it as a miss rather than crashing.
			return 0
		}
		mat := s.Materials[materialIdx]

		origin, exitant := mat.Sample(point, incident, normal, wavelength, rng)
		radiance := mat.Reflectance(incident, exitant, normal, wavelength, true)

		// Beer-Lambert attenuation: find which medium the ray was actually
		// traveling through by comparing its incoming direction to the
		// surface normal, and attenuate by the corresponding extinction
		// coefficient over the distance just traveled.
		ext := mat.Extinction()
		if incident.Dot(normal) > 0 {
			radiance *= math.Exp(-hit.T * ext.E2)
		} else {
			radiance *= math.Exp(-hit.T * ext.E1)
		}

		// Russian roulette: the path survives with probability
		// min(radiance, 1); a NaN reflectance ends it.
		if core.RandomVariable(rng) > radiance || math.IsNaN(radiance) {
			return 0
		}

		ray = core.NewRay(origin, exitant.Normalize())
	}
}
