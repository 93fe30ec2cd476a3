package spectral

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// Peak is an almost-monochromatic Gaussian-shaped distribution centered on
// PeakWavelength.
type Peak struct {
	PeakWavelength float64
}

func readPeak(r io.Reader) (Distribution, error) {
	w, err := readFloat32(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading peak wavelength")
	}
	return Peak{PeakWavelength: w}, nil
}

// Lookup evaluates the Gaussian peak at the given wavelength (nm).
func (p Peak) Lookup(wavelength float64) float64 {
	d := wavelength - p.PeakWavelength
	return math.Exp(-d * d * 0.002)
}
