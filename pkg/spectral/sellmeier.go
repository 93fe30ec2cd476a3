package spectral

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// Sellmeier is a refractive-index distribution following the three-term
// Sellmeier dispersion equation, suitable for modeling real glasses (e.g.
// BK7 crown glass).
type Sellmeier struct {
	B [3]float64
	C [3]float64
}

func readSellmeier(r io.Reader) (Distribution, error) {
	var s Sellmeier
	for i := range s.B {
		v, err := readFloat32(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading sellmeier B coefficient")
		}
		s.B[i] = v
	}
	for i := range s.C {
		v, err := readFloat32(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading sellmeier C coefficient")
		}
		s.C[i] = v
	}
	return s, nil
}

// Lookup evaluates the Sellmeier equation at the given wavelength (nm).
func (s Sellmeier) Lookup(wavelength float64) float64 {
	lambda := wavelength * 1e-3 // convert to micrometers
	lambdaSq := lambda * lambda

	index := 1.0
	for i := 0; i < 3; i++ {
		index += (s.B[i] * lambdaSq) / (lambdaSq - s.C[i])
	}
	return math.Sqrt(index)
}
