package loader

import (
	"io"

	"github.com/pkg/errors"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/geometry"
	"github.com/dpeeke/lambda-spectral/pkg/light"
	"github.com/dpeeke/lambda-spectral/pkg/material"
)

func readPrimitive(r io.Reader, subtype geometry.Subtype, materials []material.Material, lights []light.Light) (geometry.Primitive, error) {
	materialIdx, err := readInt32(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading primitive material index")
	}
	lightIdx, err := readInt32(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading primitive light index")
	}

	if materialIdx >= 0 && int(materialIdx) >= len(materials) {
		return nil, errors.Errorf("primitive material index %d out of range (have %d materials)", materialIdx, len(materials))
	}
	if lightIdx >= 0 && int(lightIdx) >= len(lights) {
		return nil, errors.Errorf("primitive light index %d out of range (have %d lights)", lightIdx, len(lights))
	}

	switch subtype {
	case geometry.SubtypeSphere:
		center, err := readFloat32Array(r, 3)
		if err != nil {
			return nil, errors.Wrap(err, "reading sphere center")
		}
		radius, err := readFloat32(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading sphere radius")
		}
		return geometry.NewSphere(core.NewVec3(center[0], center[1], center[2]), radius, int(materialIdx), int(lightIdx)), nil

	case geometry.SubtypeTriangle:
		p1, err := readFloat32Array(r, 3)
		if err != nil {
			return nil, errors.Wrap(err, "reading triangle vertex 1")
		}
		p2, err := readFloat32Array(r, 3)
		if err != nil {
			return nil, errors.Wrap(err, "reading triangle vertex 2")
		}
		p3, err := readFloat32Array(r, 3)
		if err != nil {
			return nil, errors.Wrap(err, "reading triangle vertex 3")
		}
		return geometry.NewTriangle(
			core.NewVec3(p1[0], p1[1], p1[2]),
			core.NewVec3(p2[0], p2[1], p2[2]),
			core.NewVec3(p3[0], p3[1], p3[2]),
			int(materialIdx), int(lightIdx),
		), nil

	default:
		return nil, errors.Errorf("unknown primitive subtype %d", subtype)
	}
}
