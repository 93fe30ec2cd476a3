// Package loader reads the renderer's binary scene file format (spec §6)
// into an in-memory scene.Scene: a header followed by a sequence of
// {type, subtype, payload} entity records describing color systems,
// cameras, spectral distributions, materials, lights and primitives.
package loader

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/dpeeke/lambda-spectral/pkg/camera"
	"github.com/dpeeke/lambda-spectral/pkg/colorsys"
	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/geometry"
	"github.com/dpeeke/lambda-spectral/pkg/light"
	"github.com/dpeeke/lambda-spectral/pkg/material"
	"github.com/dpeeke/lambda-spectral/pkg/scene"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// Entity record types, per the scene file format.
const (
	typeColorSystem  = 0
	typeCamera       = 1
	typeDistribution = 2
	typeMaterial     = 3
	typeLight        = 4
	typePrimitive    = 5
)

// Load opens and parses a scene file at path, returning a fully populated
// scene.Scene with its BVH already built.
func Load(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, core.NewSceneError(core.IOError, 0, errors.Wrapf(err, "opening scene file %q", path))
	}
	defer file.Close()

	return Decode(bufio.NewReader(file))
}

// Decode parses a scene file already opened as an io.Reader, returning a
// fully populated scene.Scene with its BVH already built. Exposed
// separately from Load so tests can decode an in-memory buffer without
// touching the filesystem.
func Decode(r io.Reader) (*scene.Scene, error) {
	cr := &countingReader{r: r}

	s := &scene.Scene{}

	var header struct {
		Width, Height, Samples int32
	}
	if err := binary.Read(cr, binary.LittleEndian, &header); err != nil {
		return nil, core.NewSceneError(core.IOError, cr.offset, errors.Wrap(err, "reading scene header"))
	}
	s.Params = scene.RenderParams{Width: int(header.Width), Height: int(header.Height), Samples: int(header.Samples)}

	for {
		offset := cr.offset
		var recordType, subtype uint32
		if err := binary.Read(cr, binary.LittleEndian, &recordType); err != nil {
			if err == io.EOF {
				break
			}
			return nil, core.NewSceneError(core.IOError, offset, errors.Wrap(err, "reading entity type"))
		}
		if err := binary.Read(cr, binary.LittleEndian, &subtype); err != nil {
			return nil, core.NewSceneError(core.IOError, offset, errors.Wrap(err, "reading entity subtype"))
		}

		if err := readEntity(cr, s, recordType, subtype, offset); err != nil {
			return nil, err
		}
	}

	s.Build()
	return s, nil
}

func readEntity(cr *countingReader, s *scene.Scene, recordType, subtype uint32, offset int64) error {
	switch recordType {
	case typeColorSystem:
		system, ok := colorsys.ByID(colorsys.Subtype(subtype))
		if !ok {
			return core.NewSceneError(core.InvalidScene, offset, errors.Errorf("unknown color system subtype %d", subtype))
		}
		s.ColorSystem = system

	case typeCamera:
		cam, err := readCamera(cr, camera.Subtype(subtype))
		if err != nil {
			return core.NewSceneError(core.InvalidScene, offset, err)
		}
		s.Camera = cam

	case typeDistribution:
		dist, err := spectral.Read(spectral.Subtype(subtype), cr)
		if err != nil {
			return core.NewSceneError(core.InvalidScene, offset, err)
		}
		s.Distributions = append(s.Distributions, dist)

	case typeMaterial:
		mat, err := readMaterial(cr, material.Subtype(subtype), s.Distributions)
		if err != nil {
			return core.NewSceneError(core.InvalidScene, offset, err)
		}
		s.Materials = append(s.Materials, mat)

	case typeLight:
		lt, err := readLight(cr, light.Subtype(subtype), s.Distributions)
		if err != nil {
			return core.NewSceneError(core.InvalidScene, offset, err)
		}
		s.Lights = append(s.Lights, lt)

	case typePrimitive:
		prim, err := readPrimitive(cr, geometry.Subtype(subtype), s.Materials, s.Lights)
		if err != nil {
			return core.NewSceneError(core.InvalidScene, offset, err)
		}
		s.Primitives = append(s.Primitives, prim)

	default:
		return core.NewSceneError(core.InvalidScene, offset, errors.Errorf("unknown entity type %d", recordType))
	}

	return nil
}

// countingReader wraps an io.Reader, tracking the number of bytes read so
// far so scene errors can report a byte offset.
type countingReader struct {
	r      io.Reader
	offset int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.offset += int64(n)
	return n, err
}

func readFloat32(r io.Reader) (float64, error) {
	var v float32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return float64(v), nil
}

func readFloat32Array(r io.Reader, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := readFloat32(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func readInt32(r io.Reader) (int32, error) {
	var v int32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}
