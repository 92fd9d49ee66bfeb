// Package dataset generates the synthetic 2-D classification sets the
// demo trainer feeds the engine.
package dataset

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Example is one labelled point; Label is -1 or +1.
type Example struct {
	X     []float64
	Label float64
}

// Generator produces n examples with the given noise amplitude. src
// seeds the draws; nil falls back to the shared global source.
type Generator func(n int, noise float64, src rand.Source) []Example

// Lookup maps flag-friendly names to generators.
var Lookup = map[string]Generator{
	"circle": Circle,
	"xor":    XOR,
	"gauss":  TwoGauss,
	"spiral": Spiral,
}

// Split separates examples into the input vectors and target slices
// the trainer consumes.
func Split(examples []Example) ([][]float64, []float64) {
	xs := make([][]float64, len(examples))
	ys := make([]float64, len(examples))
	for i, ex := range examples {
		xs[i] = ex.X
		ys[i] = ex.Label
	}
	return xs, ys
}

// Circle labels points inside half the radius positive and points in
// an outer ring negative. Noise jitters the point the label is read
// from, not the point itself, so labels get dirty near the boundary.
func Circle(n int, noise float64, src rand.Source) []Example {
	const radius = 5.0
	angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	jitter := distuv.Uniform{Min: -radius, Max: radius, Src: src}

	out := make([]Example, 0, n)
	ring := func(count int, rMin, rMax float64) {
		r := distuv.Uniform{Min: rMin, Max: rMax, Src: src}
		for i := 0; i < count; i++ {
			rad, theta := r.Rand(), angle.Rand()
			x := rad * math.Sin(theta)
			y := rad * math.Cos(theta)
			label := circleLabel(x+jitter.Rand()*noise, y+jitter.Rand()*noise, radius)
			out = append(out, Example{X: []float64{x, y}, Label: label})
		}
	}
	ring(n/2, 0, radius*0.5)
	ring(n-n/2, radius*0.7, radius)
	return out
}

func circleLabel(x, y, radius float64) float64 {
	if math.Hypot(x, y) < radius*0.5 {
		return 1
	}
	return -1
}

// XOR labels the first and third quadrants positive. Points are padded
// away from the axes so the quadrants stay separable at zero noise.
func XOR(n int, noise float64, src rand.Source) []Example {
	const padding = 0.3
	u := distuv.Uniform{Min: -5, Max: 5, Src: src}

	pad := func(v float64) float64 {
		if v > 0 {
			return v + padding
		}
		return v - padding
	}

	out := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		x := pad(u.Rand())
		y := pad(u.Rand())
		label := -1.0
		if (x+u.Rand()*noise)*(y+u.Rand()*noise) >= 0 {
			label = 1.0
		}
		out = append(out, Example{X: []float64{x, y}, Label: label})
	}
	return out
}

// TwoGauss draws two blobs around (2, 2) and (-2, -2); noise widens
// the blobs from variance 0.5 up to 4 at noise 0.5.
func TwoGauss(n int, noise float64, src rand.Source) []Example {
	sigma := math.Sqrt(0.5 + 7*noise)

	out := make([]Example, 0, n)
	blob := func(count int, cx, cy, label float64) {
		dx := distuv.Normal{Mu: cx, Sigma: sigma, Src: src}
		dy := distuv.Normal{Mu: cy, Sigma: sigma, Src: src}
		for i := 0; i < count; i++ {
			out = append(out, Example{X: []float64{dx.Rand(), dy.Rand()}, Label: label})
		}
	}
	blob(n/2, 2, 2, 1)
	blob(n-n/2, -2, -2, -1)
	return out
}

// Spiral interleaves two arms half a turn apart, radius growing to 5.
func Spiral(n int, noise float64, src rand.Source) []Example {
	jitter := distuv.Uniform{Min: -1, Max: 1, Src: src}

	out := make([]Example, 0, n)
	arm := func(count int, delta, label float64) {
		for i := 0; i < count; i++ {
			r := float64(i) / float64(count) * 5
			theta := 1.75*float64(i)/float64(count)*2*math.Pi + delta
			x := r*math.Sin(theta) + jitter.Rand()*noise
			y := r*math.Cos(theta) + jitter.Rand()*noise
			out = append(out, Example{X: []float64{x, y}, Label: label})
		}
	}
	arm(n/2, 0, 1)
	arm(n-n/2, math.Pi, -1)
	return out
}
