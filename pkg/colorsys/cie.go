package colorsys

import (
	"math"

	"github.com/dpeeke/lambda-spectral/pkg/core"
	"github.com/lucasb-eyer/go-colorful"
)

// Resolution is the sampling interval, in nanometers, of the color-matching
// curve and of the renderer's per-sample wavelength stratification.
const Resolution = 5

// Wavelengths is the number of wavelength samples spanning the visible
// spectrum (380nm-780nm inclusive) at Resolution nm steps.
const Wavelengths = 1 + 400/Resolution

const minWavelengthNM = 380.0

// colorMatchingCurve is the CIE 1931 2-degree standard observer, tabulated
// at 5nm intervals from 380nm to 780nm.
var colorMatchingCurve = [Wavelengths]core.Vec3{
	{0.0014, 0.0000, 0.0065}, {0.0022, 0.0001, 0.0105}, {0.0042, 0.0001, 0.0201},
	{0.0076, 0.0002, 0.0362}, {0.0143, 0.0004, 0.0679}, {0.0232, 0.0006, 0.1102},
	{0.0435, 0.0012, 0.2074}, {0.0776, 0.0022, 0.3713}, {0.1344, 0.0040, 0.6456},
	{0.2148, 0.0073, 1.0391}, {0.2839, 0.0116, 1.3856}, {0.3285, 0.0168, 1.6230},
	{0.3483, 0.0230, 1.7471}, {0.3481, 0.0298, 1.7826}, {0.3362, 0.0380, 1.7721},
	{0.3187, 0.0480, 1.7441}, {0.2908, 0.0600, 1.6692}, {0.2511, 0.0739, 1.5281},
	{0.1954, 0.0910, 1.2876}, {0.1421, 0.1126, 1.0419}, {0.0956, 0.1390, 0.8130},
	{0.0580, 0.1693, 0.6162}, {0.0320, 0.2080, 0.4652}, {0.0147, 0.2586, 0.3533},
	{0.0049, 0.3230, 0.2720}, {0.0024, 0.4073, 0.2123}, {0.0093, 0.5030, 0.1582},
	{0.0291, 0.6082, 0.1117}, {0.0633, 0.7100, 0.0782}, {0.1096, 0.7932, 0.0573},
	{0.1655, 0.8620, 0.0422}, {0.2257, 0.9149, 0.0298}, {0.2904, 0.9540, 0.0203},
	{0.3597, 0.9803, 0.0134}, {0.4334, 0.9950, 0.0087}, {0.5121, 1.0000, 0.0057},
	{0.5945, 0.9950, 0.0039}, {0.6784, 0.9786, 0.0027}, {0.7621, 0.9520, 0.0021},
	{0.8425, 0.9154, 0.0018}, {0.9163, 0.8700, 0.0017}, {0.9786, 0.8163, 0.0014},
	{1.0263, 0.7570, 0.0011}, {1.0567, 0.6949, 0.0010}, {1.0622, 0.6310, 0.0008},
	{1.0456, 0.5668, 0.0006}, {1.0026, 0.5030, 0.0003}, {0.9384, 0.4412, 0.0002},
	{0.8544, 0.3810, 0.0002}, {0.7514, 0.3210, 0.0001}, {0.6424, 0.2650, 0.0000},
	{0.5419, 0.2170, 0.0000}, {0.4479, 0.1750, 0.0000}, {0.3608, 0.1382, 0.0000},
	{0.2835, 0.1070, 0.0000}, {0.2187, 0.0816, 0.0000}, {0.1649, 0.0610, 0.0000},
	{0.1212, 0.0446, 0.0000}, {0.0874, 0.0320, 0.0000}, {0.0636, 0.0232, 0.0000},
	{0.0468, 0.0170, 0.0000}, {0.0329, 0.0119, 0.0000}, {0.0227, 0.0082, 0.0000},
	{0.0158, 0.0057, 0.0000}, {0.0114, 0.0041, 0.0000}, {0.0081, 0.0029, 0.0000},
	{0.0058, 0.0021, 0.0000}, {0.0041, 0.0015, 0.0000}, {0.0029, 0.0010, 0.0000},
	{0.0020, 0.0007, 0.0000}, {0.0014, 0.0005, 0.0000}, {0.0010, 0.0004, 0.0000},
	{0.0007, 0.0002, 0.0000}, {0.0005, 0.0002, 0.0000}, {0.0003, 0.0001, 0.0000},
	{0.0002, 0.0001, 0.0000}, {0.0002, 0.0001, 0.0000}, {0.0001, 0.0000, 0.0000},
	{0.0001, 0.0000, 0.0000}, {0.0001, 0.0000, 0.0000}, {0.0000, 0.0000, 0.0000},
}

// WavelengthAt returns the wavelength, in nanometers, of sample index w
// (0 <= w < Wavelengths).
func WavelengthAt(w int) float64 {
	return minWavelengthNM + Resolution*float64(w)
}

const epsilon = 1e-5

// SpectrumToRGB integrates a per-wavelength radiance array against the CIE
// color-matching curve, then converts the resulting XYZ tristimulus value
// into RGB for the given color system. The result is scaled by the total
// (un-normalized) spectral radiance, matching the original's convention of
// folding the sample's overall brightness back in after color normalization.
func SpectrumToRGB(radiance [Wavelengths]float64, system System) core.Vec3 {
	var xyz core.Vec3
	var totalRadiance float64
	for w := 0; w < Wavelengths; w++ {
		xyz = xyz.Add(colorMatchingCurve[w].Multiply(radiance[w]))
		totalRadiance += radiance[w]
	}

	sum := xyz.X + xyz.Y + xyz.Z
	if sum > epsilon {
		xyz = xyz.Multiply(1.0 / sum)
	}

	xr, yr := system.Red.X, system.Red.Y
	zr := 1 - (xr + yr)
	xg, yg := system.Green.X, system.Green.Y
	zg := 1 - (xg + yg)
	xb, yb := system.Blue.X, system.Blue.Y
	zb := 1 - (xb + yb)
	xw, yw := system.White.X, system.White.Y
	zw := 1 - (xw + yw)

	rx := (yg * zb) - (yb * zg)
	ry := (xb * zg) - (xg * zb)
	rz := (xg * yb) - (xb * yg)
	gx := (yb * zr) - (yr * zb)
	gy := (xr * zb) - (xb * zr)
	gz := (xb * yr) - (xr * yb)
	bx := (yr * zg) - (yg * zr)
	by := (xg * zr) - (xr * zg)
	bz := (xr * yg) - (xg * yr)

	rw := ((rx * xw) + (ry * yw) + (rz * zw)) / yw
	gw := ((gx * xw) + (gy * yw) + (gz * zw)) / yw
	bw := ((bx * xw) + (by * yw) + (bz * zw)) / yw

	rx, ry, rz = rx/rw, ry/rw, rz/rw
	gx, gy, gz = gx/gw, gy/gw, gz/gw
	bx, by, bz = bx/bw, by/bw, bz/bw

	rgb := core.Vec3{
		X: (rx * xyz.X) + (ry * xyz.Y) + (rz * xyz.Z),
		Y: (gx * xyz.X) + (gy * xyz.Y) + (gz * xyz.Z),
		Z: (bx * xyz.X) + (by * xyz.Y) + (bz * xyz.Z),
	}

	// Constrain the RGB color within the gamut by adding back any negative
	// excursion uniformly across channels.
	w := math.Min(0.0, math.Min(rgb.X, math.Min(rgb.Y, rgb.Z)))
	rgb = rgb.Subtract(core.Vec3{X: w, Y: w, Z: w})

	return rgb.Multiply(totalRadiance)
}

// Luminance returns the perceptual luminance of an RGB color under the given
// color system, weighting each channel by the y chromaticity of that
// channel's own primary (matching the original's Luminance()).
func Luminance(rgb core.Vec3, system System) float64 {
	return rgb.X*system.Red.Y + rgb.Y*system.Green.Y + rgb.Z*system.Blue.Y
}

// GammaCorrect encodes a linear RGB color for display under the given color
// system's transfer function: the piecewise Rec.709 curve when Gamma is
// GammaRec709, otherwise a standard power-law gamma curve.
func GammaCorrect(rgb core.Vec3, system System) core.Vec3 {
	if system.Gamma == GammaRec709 {
		return core.Vec3{X: rec709Channel(rgb.X), Y: rec709Channel(rgb.Y), Z: rec709Channel(rgb.Z)}
	}

	power := 1.0 / system.Gamma
	return core.Vec3{X: math.Pow(rgb.X, power), Y: math.Pow(rgb.Y, power), Z: math.Pow(rgb.Z, power)}
}

func rec709Channel(v float64) float64 {
	const threshold = 0.018
	if v >= threshold {
		return (1.099 * math.Pow(v, 0.45)) - 0.099
	}
	return v * (((1.099 * math.Pow(threshold, 0.45)) - 0.099) / threshold)
}

// ClampToGamut clamps a gamma-corrected RGB color to the displayable [0,1]
// range per channel, via go-colorful's Clamped - the final safety net before
// the PPM writer truncates to 8-bit integers.
func ClampToGamut(rgb core.Vec3) core.Vec3 {
	c := colorful.Color{R: rgb.X, G: rgb.Y, B: rgb.Z}.Clamped()
	return core.Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Swatch renders an RGB color as a "#rrggbb" hex string via go-colorful, for
// the progress diagnostic printed by the parallel driver.
func Swatch(rgb core.Vec3) string {
	c := colorful.Color{R: rgb.X, G: rgb.Y, B: rgb.Z}.Clamped()
	return c.Hex()
}
