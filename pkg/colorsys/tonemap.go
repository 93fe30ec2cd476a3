package colorsys

import (
	"math"

	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// reinhardKey is the middle-gray exposure value used by the Reinhard
// tonemap operator.
const reinhardKey = 0.18

// ReinhardTonemap applies the Reinhard global tonemap operator to an entire
// pixel buffer in place, using the log-average luminance of the image to
// compute the exposure key.
func ReinhardTonemap(pixels []core.Vec3, system System) {
	var logLuminanceSum float64
	for _, p := range pixels {
		logLuminanceSum += math.Log(Luminance(p, system) + epsilon)
	}

	avgLuminance := math.Exp(logLuminanceSum / float64(len(pixels)))
	key := reinhardKey / avgLuminance

	for i, p := range pixels {
		luminance := Luminance(p, system)
		pixels[i] = p.Multiply(key / (1.0 + luminance*key))
	}
}
