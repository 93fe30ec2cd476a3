package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the errors this renderer can report. NumericEdge and
// RouletteTermination (spec §7) are not represented here: they are never
// fatal, and the integrator handles them by returning a zero radiance
// sample rather than by constructing an error value.
type ErrorKind int

const (
	// InvalidScene means the scene file's structure or contents are
	// inconsistent (e.g. a primitive references a material index beyond
	// the materials already parsed).
	InvalidScene ErrorKind = iota
	// IOError means a filesystem or stream operation failed (open, read,
	// write, truncated file).
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidScene:
		return "InvalidScene"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// SceneError wraps a scene-loading failure with the kind of failure and the
// byte offset in the scene file where it was detected, so the caller can
// point a user directly at the malformed entity.
type SceneError struct {
	Kind   ErrorKind
	Offset int64
	Err    error
}

func (e *SceneError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.Kind, e.Offset, e.Err)
}

func (e *SceneError) Unwrap() error {
	return e.Err
}

// NewSceneError builds a SceneError, wrapping the underlying cause with
// pkg/errors so later wraps up the call stack retain a full causal chain.
func NewSceneError(kind ErrorKind, offset int64, cause error) error {
	return &SceneError{Kind: kind, Offset: offset, Err: errors.WithStack(cause)}
}
