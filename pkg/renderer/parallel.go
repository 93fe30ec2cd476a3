package renderer

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dpeeke/lambda-spectral/pkg/colorsys"
	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/dpeeke/lambda-spectral/pkg/scene"
)

// threadSeed derives a worker's PRNG seed from its index
// (threadSeed*(index+1)). Pixels are claimed dynamically, so which worker
// renders a given pixel, and at which point in that worker's random
// sequence, is not fixed: the random draws a pixel receives can differ
// between runs, even with the same thread count.
const threadSeed = 0x530FD819

// progressInterval throttles how often the render prints its progress line.
const progressInterval = time.Second

// progressSmoothing is the exponential-smoothing factor applied to the
// measured pixels/second rate when estimating time remaining.
const progressSmoothing = 0.8

// Render traces s at the given thread count, returning the final tonemapped
// and gamma-corrected pixel buffer in scanline order. Each pixel accumulates
// s.Params.Samples camera samples, each of which sweeps the full visible
// spectrum (colorsys.Wavelengths wavelengths) through Radiance before being
// folded down to RGB.
//
// Work is handed out dynamically, one pixel at a time, from a shared atomic
// cursor: slower pixels (more bounces, more roulette survivals) don't leave
// a thread idle while others are still busy, the same scheduling trade-off
// the original made with OpenMP's dynamic schedule.
func Render(s *scene.Scene, threads int, logger core.Logger) []core.Vec3 {
	width, height := s.Params.Width, s.Params.Height
	totalPixels := width * height
	pixels := make([]core.Vec3, totalPixels)

	var cursor atomic.Int64
	var progress progressTracker
	progress.start(totalPixels)

	var g errgroup.Group
	for t := 0; t < threads; t++ {
		t := t
		g.Go(func() error {
			rng := rand.New(rand.NewSource(int64(threadSeed * (t + 1))))
			for {
				i := int(cursor.Add(1)) - 1
				if i >= totalPixels {
					return nil
				}

				x, y := i%width, i/width
				pixels[i] = renderPixel(s, width, height, x, y, rng)
				progress.report(logger, pixels[i])
			}
		})
	}
	g.Wait()

	colorsys.ReinhardTonemap(pixels, s.ColorSystem)
	for i, p := range pixels {
		pixels[i] = colorsys.GammaCorrect(p, s.ColorSystem)
	}
	return pixels
}

// renderPixel accumulates Params.Samples camera samples at pixel (x, y),
// each sample sweeping every wavelength, and returns the averaged linear
// RGB color.
func renderPixel(s *scene.Scene, width, height, x, y int, rng *rand.Rand) core.Vec3 {
	var radiance [colorsys.Wavelengths]float64

	for sample := 0; sample < s.Params.Samples; sample++ {
		// Jitter the sample within the pixel, then map to [-1, 1] screen
		// space. Aspect-ratio correction is applied only to u, matching a
		// camera built around a vertical field of view.
		u := 2*(float64(x)+core.RandomVariable(rng)-0.5)/float64(width) - 1
		v := 2*(float64(y)+core.RandomVariable(rng)-0.5)/float64(height) - 1
		u *= float64(width) / float64(height)

		ray := s.Camera.Trace(u, v)

		for w := 0; w < colorsys.Wavelengths; w++ {
			wavelength := colorsys.WavelengthAt(w)
			radiance[w] += Radiance(s, ray, wavelength, rng)
		}
	}

	rgb := colorsys.SpectrumToRGB(radiance, s.ColorSystem)
	return rgb.Multiply(1.0 / float64(s.Params.Samples*colorsys.Wavelengths))
}

// progressTracker reports exponentially-smoothed rendering throughput and
// an ETA, throttled to at most once per progressInterval, guarded by a
// mutex the way the original serialized its OpenMP critical section.
type progressTracker struct {
	mu          sync.Mutex
	total       int
	done        int
	started     time.Time
	lastReport  time.Time
	smoothedPPS float64
	colorSum    core.Vec3
}

func (p *progressTracker) start(total int) {
	p.total = total
	p.started = time.Now()
	p.lastReport = p.started
}

func (p *progressTracker) report(logger core.Logger, color core.Vec3) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	p.colorSum = p.colorSum.Add(color)
	now := time.Now()
	elapsed := now.Sub(p.lastReport)
	if elapsed < progressInterval && p.done < p.total {
		return
	}

	totalElapsed := now.Sub(p.started).Seconds()
	instantPPS := float64(p.done) / math.Max(totalElapsed, 1e-9)
	if p.smoothedPPS == 0 {
		p.smoothedPPS = instantPPS
	} else {
		p.smoothedPPS = progressSmoothing*p.smoothedPPS + (1-progressSmoothing)*instantPPS
	}

	remaining := p.total - p.done
	var eta time.Duration
	if p.smoothedPPS > 0 {
		eta = time.Duration(float64(remaining)/p.smoothedPPS) * time.Second
	}

	if logger != nil {
		meanColor := p.colorSum.Multiply(1.0 / float64(p.done))
		logger.Printf("rendered %d/%d pixels (%.1f px/s, mean %s, ETA %s)", p.done, p.total, p.smoothedPPS, colorsys.Swatch(meanColor), eta.Round(time.Second))
	}
	p.lastReport = now
}
