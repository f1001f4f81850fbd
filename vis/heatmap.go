package vis

import (
	"fmt"
	"image"
	"image/color"
)

// DrawHeatmap overlays a scalar activation map on a copy of img. The map is
// given in row-major order and may have any resolution; it is sampled to the
// image size. Values are normalized to [0, 1] over the map's own range and
// mapped through a blue-to-red ramp, blended with the alpha option
// (default 0.3).
func DrawHeatmap(img image.Image, heat [][]float64, opts ...Option) (*image.NRGBA, error) {
	rows := len(heat)
	if rows == 0 {
		return nil, fmt.Errorf("heatmap has no rows")
	}
	cols := len(heat[0])
	for i, row := range heat {
		if len(row) != cols {
			return nil, fmt.Errorf("heatmap row %d has %d values, want %d", i, len(row), cols)
		}
	}
	if cols == 0 {
		return nil, fmt.Errorf("heatmap has no columns")
	}

	dst := cloneNRGBA(img)
	o := buildOptions(0, opts)

	lo, hi := heat[0][0], heat[0][0]
	for _, row := range heat {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	span := hi - lo
	if span == 0 {
		// Flat map carries no signal; return the unmodified copy.
		return dst, nil
	}

	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		hy := y * rows / h
		for x := 0; x < w; x++ {
			hx := x * cols / w
			v := (heat[hy][hx] - lo) / span
			px, py := b.Min.X+x, b.Min.Y+y
			dst.SetNRGBA(px, py, blend(dst.NRGBAAt(px, py), rampColor(v), o.alpha))
		}
	}
	return dst, nil
}

// rampColor maps v in [0, 1] through a blue-cyan-yellow-red ramp.
func rampColor(v float64) color.NRGBA {
	ramp := []color.NRGBA{
		{R: 0, G: 0, B: 255, A: 255},
		{R: 0, G: 255, B: 255, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
	}
	if v <= 0 {
		return ramp[0]
	}
	if v >= 1 {
		return ramp[len(ramp)-1]
	}
	segments := float64(len(ramp) - 1)
	i := int(v * segments)
	t := v*segments - float64(i)
	a, b := ramp[i], ramp[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
