package light

import (
	"testing"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

func TestOmniEmittanceIsotropic(t *testing.T) {
	o := NewOmni(spectral.Flat{Constant: 2.5})

	a := o.Emittance(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 550)
	b := o.Emittance(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), 550)

	if a != 2.5 || b != 2.5 {
		t.Errorf("Emittance should be isotropic and wavelength-looked-up: got %v and %v", a, b)
	}
}

func TestOmniEmittanceWavelengthDependent(t *testing.T) {
	o := NewOmni(spectral.Peak{PeakWavelength: 550})

	peak := o.Emittance(core.Vec3{}, core.Vec3{}, 550)
	offPeak := o.Emittance(core.Vec3{}, core.Vec3{}, 650)

	if peak <= offPeak {
		t.Errorf("expected emittance to peak at 550nm: got peak=%v offPeak=%v", peak, offPeak)
	}
}
