package loader

import (
	"io"

	"github.com/pkg/errors"

	"github.com/dpeeke/lambda-spectral/pkg/material"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

func readMaterial(r io.Reader, subtype material.Subtype, distributions []spectral.Distribution) (material.Material, error) {
	e1, err := readFloat32(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading material e1")
	}
	e2, err := readFloat32(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading material e2")
	}

	dist := func(label string) (spectral.Distribution, error) {
		idx, err := readUint32(r)
		if err != nil {
			return nil, errors.Wrapf(err, "reading material %s index", label)
		}
		if int(idx) >= len(distributions) {
			return nil, errors.Errorf("material %s index %d out of range (have %d distributions)", label, idx, len(distributions))
		}
		return distributions[idx], nil
	}

	switch subtype {
	case material.SubtypeDiffuse:
		reflectance, err := dist("reflectance")
		if err != nil {
			return nil, err
		}
		return material.NewDiffuse(reflectance, e1, e2), nil

	case material.SubtypeSpecular:
		reflectance, err := dist("reflectance")
		if err != nil {
			return nil, err
		}
		return material.NewSpecular(reflectance, e1, e2), nil

	case material.SubtypeSmoothGlass:
		refractiveIndex, err := dist("refractive index")
		if err != nil {
			return nil, err
		}
		return material.NewSmoothGlass(refractiveIndex, e1, e2), nil

	case material.SubtypeFrostedGlass:
		refractiveIndex, err := dist("refractive index")
		if err != nil {
			return nil, err
		}
		roughness, err := readFloat32(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading frosted glass roughness")
		}
		return material.NewFrostedGlass(refractiveIndex, roughness, e1, e2), nil

	case material.SubtypeCookTorrance:
		reflectance, err := dist("reflectance")
		if err != nil {
			return nil, err
		}
		refractiveIndex, err := dist("refractive index")
		if err != nil {
			return nil, err
		}
		roughness, err := readFloat32(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading cook-torrance roughness")
		}
		return material.NewCookTorrance(reflectance, refractiveIndex, roughness, e1, e2), nil

	default:
		return nil, errors.Errorf("unknown material subtype %d", subtype)
	}
}
