// Package spectral implements the wavelength-dependent quantities (emission,
// reflectance, refractive index) used throughout the renderer instead of
// RGB triples.
package spectral

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Subtype identifies a distribution's concrete type in the scene file, per
// the binary scene format (spec §6).
type Subtype uint32

const (
	SubtypeBlackBody Subtype = 0
	SubtypeFlat      Subtype = 1
	SubtypePeak      Subtype = 2
	SubtypeSellmeier Subtype = 3
)

// Distribution evaluates a spectral quantity at a given wavelength (in
// nanometers, expected in the visible range 380-780).
type Distribution interface {
	Lookup(wavelength float64) float64
}

// Read decodes a distribution of the given subtype from r, in the exact
// binary layout the corresponding original_source/include/spectral/*.hpp
// definitions specify.
func Read(subtype Subtype, r io.Reader) (Distribution, error) {
	switch subtype {
	case SubtypeBlackBody:
		return readBlackBody(r)
	case SubtypeFlat:
		return readFlat(r)
	case SubtypePeak:
		return readPeak(r)
	case SubtypeSellmeier:
		return readSellmeier(r)
	default:
		return nil, errors.Errorf("unknown distribution subtype %d", subtype)
	}
}

func readFloat32(r io.Reader) (float64, error) {
	var v float32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return float64(v), nil
}
