package spectral

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// BlackBody is a Planckian emission spectrum parameterized by temperature
// (in kelvin).
type BlackBody struct {
	Temperature float64
}

func readBlackBody(r io.Reader) (Distribution, error) {
	t, err := readFloat32(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading blackbody temperature")
	}
	return BlackBody{Temperature: t}, nil
}

// Lookup evaluates Planck's law at the given wavelength (nm).
func (b BlackBody) Lookup(wavelength float64) float64 {
	lambda := wavelength * 1e-9 // convert to meters

	powerTerm := 3.74183e-16 * math.Pow(lambda, -5.0)
	return powerTerm / (math.Exp(1.4388e-2/(lambda*b.Temperature)) - 1.0)
}
