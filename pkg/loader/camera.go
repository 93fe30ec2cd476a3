package loader

import (
	"io"

	"github.com/pkg/errors"

	"github.com/dpeeke/lambda-spectral/pkg/camera"
	"github.com/dpeeke/lambda-spectral/pkg/core"
)

func readCamera(r io.Reader, subtype camera.Subtype) (camera.Camera, error) {
	switch subtype {
	case camera.SubtypePerspective:
		pos, err := readFloat32Array(r, 3)
		if err != nil {
			return nil, errors.Wrap(err, "reading camera position")
		}
		target, err := readFloat32Array(r, 3)
		if err != nil {
			return nil, errors.Wrap(err, "reading camera target")
		}
		fov, err := readFloat32(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading camera field of view")
		}
		return camera.NewPerspective(
			core.NewVec3(pos[0], pos[1], pos[2]),
			core.NewVec3(target[0], target[1], target[2]),
			fov,
		), nil
	default:
		return nil, errors.Errorf("unknown camera subtype %d", subtype)
	}
}
