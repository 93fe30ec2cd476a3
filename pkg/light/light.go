// Package light implements the renderer's light sources. A light is a
// property attached to a primitive (via its light index): when the path
// integrator's ray lands on a primitive with a light attached, the path
// terminates and the light's emittance becomes the ray's contribution.
package light

import (
	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// Subtype identifies a light's concrete type in the scene file, per the
// binary scene format (spec §6).
type Subtype uint32

const (
	SubtypeOmni Subtype = 0
)

// Light is the common interface implemented by every light source.
type Light interface {
	// Emittance returns the spectral radiance emitted towards incident
	// from a surface with the given normal, at the given wavelength.
	Emittance(incident, normal core.Vec3, wavelength float64) float64
}
