package vision

import (
	"fmt"
	"image"
)

// PixelValue maps a sample to a feature contribution in [0,1].
type PixelValue func(px *ColorSample) float32

// MonoLevel quantises monochrome into steps levels, scaled by 1/steps.
func MonoLevel(steps int) PixelValue {
	div := 256 / steps
	scale := 1 / float32(steps)
	return func(px *ColorSample) float32 {
		return float32(px.Mono()/div) * scale
	}
}

// HueMonoLevel adds a coarse hue term below the quantised monochrome term.
func HueMonoLevel(steps int) PixelValue {
	hueDiv := 360 / steps
	monoDiv := 256 / steps
	monoScale := 1 / float32(steps)
	hueScale := monoScale / float32(steps)
	return func(px *ColorSample) float32 {
		return float32(px.Hue()/hueDiv)*hueScale + float32(px.Mono()/monoDiv)*monoScale
	}
}

// FeatureSpec describes how a region is reduced to a classifier input.
type FeatureSpec struct {
	Area  image.Rectangle
	GridW int
	GridH int
	// Mirror reads columns right to left.
	Mirror bool
	Value  PixelValue
}

// Len is the length of the produced vector.
func (s FeatureSpec) Len() int { return s.GridW * s.GridH }

// Offset returns a copy of the spec with the area moved by p.
func (s FeatureSpec) Offset(p Point) FeatureSpec {
	s.Area = s.Area.Add(p)
	return s
}

// ExtractRegion down-samples spec.Area into a GridW x GridH vector. Pixels
// map to cells proportionally and each cell is the mean of its own pixels,
// so areas that do not divide evenly still give one value in [0,1] per cell.
func ExtractRegion(f *FrameBuffer, spec FeatureSpec) []float32 {
	w, h := spec.Area.Dx(), spec.Area.Dy()
	if spec.GridW <= 0 || spec.GridH <= 0 || w <= 0 || h <= 0 {
		panic(fmt.Sprintf("vision: cannot extract %dx%d grid from area %v", spec.GridW, spec.GridH, spec.Area))
	}
	value := spec.Value
	if value == nil {
		value = MonoLevel(16)
	}

	out := make([]float32, spec.GridW*spec.GridH)
	counts := make([]int, len(out))
	for iy := 0; iy < h; iy++ {
		cy := iy * spec.GridH / h
		for ix := 0; ix < w; ix++ {
			sx := spec.Area.Min.X + ix
			if spec.Mirror {
				sx = spec.Area.Min.X + w - 1 - ix
			}
			cell := ix*spec.GridW/w + cy*spec.GridW
			out[cell] += value(f.At(sx, spec.Area.Min.Y+iy))
			counts[cell]++
		}
	}
	for i, n := range counts {
		if n > 0 {
			out[i] /= float32(n)
		}
	}
	return out
}
