// Package camera implements the renderer's cameras: given normalized
// screen coordinates, a camera produces the ray to trace for that pixel.
package camera

import (
	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// Subtype identifies a camera's concrete type in the scene file, per the
// binary scene format (spec §6).
type Subtype uint32

const (
	SubtypePerspective Subtype = 0
)

// Camera is the common interface implemented by every camera model.
type Camera interface {
	// Trace returns the camera ray for normalized screen coordinates u, v,
	// each in [-1, 1].
	Trace(u, v float64) core.Ray
}
