// Package vis draws dataset annotations — keypoints, boxes, masks and
// heatmaps — onto raster images. Every drawing call operates on a copy of
// its input image.
package vis

import (
	"image/color"
	"math/rand"
)

// Palette returns n visually distinct, fully opaque colors with evenly
// spaced hues at fixed lightness and saturation.
func Palette(n int) []color.NRGBA {
	colors := make([]color.NRGBA, n)
	for i := range colors {
		r, g, b := hlsToRGB(float64(i)/float64(n), 0.6, 0.65)
		colors[i] = color.NRGBA{
			R: uint8(r*255 + 0.5),
			G: uint8(g*255 + 0.5),
			B: uint8(b*255 + 0.5),
			A: 255,
		}
	}
	return colors
}

// Shuffle returns a copy of colors permuted deterministically by seed.
func Shuffle(colors []color.NRGBA, seed int64) []color.NRGBA {
	out := append([]color.NRGBA(nil), colors...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// hlsToRGB converts hue, lightness and saturation (all in [0, 1]) to RGB.
func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hueToRGB(m1, m2, h+1.0/3), hueToRGB(m1, m2, h), hueToRGB(m1, m2, h-1.0/3)
}

func hueToRGB(m1, m2, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case h < 1.0/6:
		return m1 + (m2-m1)*6*h
	case h < 0.5:
		return m2
	case h < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-h)*6
	}
	return m1
}
