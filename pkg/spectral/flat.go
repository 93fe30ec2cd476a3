package spectral

import (
	"io"

	"github.com/pkg/errors"
)

// Flat is a constant spectral distribution, the same value at every
// wavelength.
type Flat struct {
	Constant float64
}

func readFlat(r io.Reader) (Distribution, error) {
	c, err := readFloat32(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading flat distribution constant")
	}
	return Flat{Constant: c}, nil
}

// Lookup returns the constant value, independent of wavelength.
func (f Flat) Lookup(wavelength float64) float64 {
	return f.Constant
}
