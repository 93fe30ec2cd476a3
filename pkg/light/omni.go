package light

import (
	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// Omni is an isotropic point light source: its emittance does not depend
// on the incident direction or surface normal, only on wavelength.
type Omni struct {
	emittance spectral.Distribution
}

// NewOmni creates an omni light with the given spectral emittance.
func NewOmni(emittance spectral.Distribution) *Omni {
	return &Omni{emittance: emittance}
}

// Emittance implements Light.
func (o *Omni) Emittance(incident, normal core.Vec3, wavelength float64) float64 {
	return o.emittance.Lookup(wavelength)
}
