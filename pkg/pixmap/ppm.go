// Package pixmap writes the renderer's final pixel buffer out as an ASCII
// PPM (P3) image.
package pixmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/dpeeke/lambda-spectral/pkg/colorsys"
	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// Save writes pixels (width*height entries, in scanline order, top-to-
// bottom and left-to-right, each channel a linear value where 1.0 is full
// intensity) to path as an ASCII PPM image, with a header comment noting
// the wall-clock time the render took.
func Save(pixels []core.Vec3, width, height int, elapsed time.Duration, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return core.NewSceneError(core.IOError, 0, errors.Wrapf(err, "creating output file %q", path))
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := Write(w, pixels, width, height, elapsed); err != nil {
		return core.NewSceneError(core.IOError, 0, errors.Wrap(err, "writing PPM data"))
	}
	return w.Flush()
}

// Write encodes pixels as a P3 PPM image to w. Separated from Save so tests
// can encode into an in-memory buffer.
func Write(w io.Writer, pixels []core.Vec3, width, height int, elapsed time.Duration) error {
	seconds := int(elapsed.Seconds())
	_, err := fmt.Fprintf(w, "P3\n\n# Generated by lambda-spectral.\n# Rendered in %dh%dm%ds.\n\n%d %d 255\n",
		seconds/3600, (seconds%3600)/60, seconds%60, width, height)
	if err != nil {
		return err
	}

	for _, p := range pixels {
		c := colorsys.ClampToGamut(p)
		if _, err := fmt.Fprintf(w, "%d %d %d ", channel(c.X), channel(c.Y), channel(c.Z)); err != nil {
			return err
		}
	}
	return nil
}

// channel quantizes an already gamut-clamped [0, 1] channel value to an
// 8-bit integer, truncating rather than rounding (matching the original
// renderer's cast-to-int behavior).
func channel(v float64) int {
	return int(v * 255.0)
}
