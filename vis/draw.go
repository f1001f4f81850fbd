package vis

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Keypoint is a single 2D landmark in pixel coordinates. A negative
// coordinate marks a keypoint that is not present in the image.
type Keypoint struct {
	X float64
	Y float64
}

// Box is an axis-aligned bounding box in pixel coordinates, COCO layout
// (top-left corner plus size).
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Mask is a dense boolean pixel mask with the same dimensions as the image
// it is drawn on.
type Mask struct {
	Width  int
	Height int
	Inside []bool // row-major, length Width*Height
}

// NewMask returns an empty mask of the given size.
func NewMask(width, height int) Mask {
	return Mask{Width: width, Height: height, Inside: make([]bool, width*height)}
}

// At reports whether (x, y) is inside the mask.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Inside[y*m.Width+x]
}

// Set marks (x, y) as inside or outside the mask.
func (m Mask) Set(x, y int, inside bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Inside[y*m.Width+x] = inside
}

type options struct {
	names  []string
	colors []color.NRGBA
	alpha  float64
	seed   int64
	seeded bool
}

// Option configures a drawing call.
type Option func(*options)

// WithNames attaches a label to each drawn item, by index.
func WithNames(names []string) Option {
	return func(o *options) { o.names = names }
}

// WithColors overrides the generated palette.
func WithColors(colors []color.NRGBA) Option {
	return func(o *options) { o.colors = colors }
}

// WithAlpha sets the blend factor for masks and heatmaps.
func WithAlpha(alpha float64) Option {
	return func(o *options) { o.alpha = alpha }
}

// WithSeed shuffles the generated palette deterministically.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

func buildOptions(n int, opts []Option) options {
	o := options{alpha: 0.3}
	for _, opt := range opts {
		opt(&o)
	}
	if o.colors == nil {
		o.colors = Palette(n)
		if o.seeded {
			o.colors = Shuffle(o.colors, o.seed)
		}
	}
	return o
}

func (o options) color(i int) color.NRGBA {
	if len(o.colors) == 0 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return o.colors[i%len(o.colors)]
}

func (o options) name(i int) string {
	if i < len(o.names) {
		return o.names[i]
	}
	return ""
}

// cloneNRGBA copies an image into a fresh NRGBA buffer.
func cloneNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// scaleParams derives marker radius, label offset and line thickness from
// the image height, so overlays stay legible across resolutions.
func scaleParams(height int) (radius, offset, thickness int) {
	radius = max(1, 5*height/512)
	offset = max(5, 5*height/512)
	thickness = max(1, height/256)
	return radius, offset, thickness
}

// DrawKeypoints draws filled circles, with optional labels, on a copy of
// img. Keypoints with negative coordinates are skipped.
func DrawKeypoints(img image.Image, keypoints []Keypoint, opts ...Option) *image.NRGBA {
	dst := cloneNRGBA(img)
	if len(keypoints) == 0 {
		return dst
	}
	o := buildOptions(len(keypoints), opts)
	radius, offset, _ := scaleParams(dst.Bounds().Dy())

	for i, kp := range keypoints {
		if kp.X < 0 || kp.Y < 0 {
			continue
		}
		c := o.color(i)
		fillCircle(dst, int(kp.X), int(kp.Y), radius, c)
		if name := o.name(i); name != "" {
			drawLabel(dst, name, int(kp.X)+offset, int(kp.Y)-offset, c)
		}
	}
	return dst
}

// DrawBoxes draws rectangle outlines, with optional labels, on a copy of
// img.
func DrawBoxes(img image.Image, boxes []Box, opts ...Option) *image.NRGBA {
	dst := cloneNRGBA(img)
	if len(boxes) == 0 {
		return dst
	}
	o := buildOptions(len(boxes), opts)
	_, offset, thickness := scaleParams(dst.Bounds().Dy())

	for i, box := range boxes {
		c := o.color(i)
		r := image.Rect(int(box.X), int(box.Y), int(box.X+box.W), int(box.Y+box.H))
		strokeRect(dst, r, thickness, c)
		if name := o.name(i); name != "" {
			drawLabel(dst, name, r.Min.X+offset, r.Min.Y-offset, c)
		}
	}
	return dst
}

// DrawMasks alpha-blends each mask onto a copy of img and traces its
// contour in the full mask color. Labels are drawn at the center of the
// mask's bounding box.
func DrawMasks(img image.Image, masks []Mask, opts ...Option) *image.NRGBA {
	dst := cloneNRGBA(img)
	if len(masks) == 0 {
		return dst
	}
	o := buildOptions(len(masks), opts)
	b := dst.Bounds()

	for i, m := range masks {
		c := o.color(i)

		minX, minY := m.Width, m.Height
		maxX, maxY := -1, -1
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if !m.At(x, y) {
					continue
				}
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}

				px, py := b.Min.X+x, b.Min.Y+y
				if onContour(m, x, y) {
					dst.SetNRGBA(px, py, c)
				} else {
					dst.SetNRGBA(px, py, blend(dst.NRGBAAt(px, py), c, o.alpha))
				}
			}
		}

		if name := o.name(i); name != "" && maxX >= 0 {
			drawLabel(dst, name, b.Min.X+(minX+maxX)/2+5, b.Min.Y+(minY+maxY)/2-5, c)
		}
	}
	return dst
}

// onContour reports whether an inside pixel touches the mask boundary.
func onContour(m Mask, x, y int) bool {
	return !m.At(x-1, y) || !m.At(x+1, y) || !m.At(x, y-1) || !m.At(x, y+1)
}

func blend(base, over color.NRGBA, alpha float64) color.NRGBA {
	mix := func(b, o uint8) uint8 {
		return uint8(float64(b)*(1-alpha) + float64(o)*alpha + 0.5)
	}
	return color.NRGBA{
		R: mix(base.R, over.R),
		G: mix(base.G, over.G),
		B: mix(base.B, over.B),
		A: 255,
	}
}

func fillCircle(dst *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r && image.Pt(x, y).In(dst.Rect) {
				dst.SetNRGBA(x, y, c)
			}
		}
	}
}

func strokeRect(dst *image.NRGBA, r image.Rectangle, thickness int, c color.NRGBA) {
	for t := 0; t < thickness; t++ {
		rr := r.Inset(t)
		if rr.Empty() {
			return
		}
		for x := rr.Min.X; x < rr.Max.X; x++ {
			setClipped(dst, x, rr.Min.Y, c)
			setClipped(dst, x, rr.Max.Y-1, c)
		}
		for y := rr.Min.Y; y < rr.Max.Y; y++ {
			setClipped(dst, rr.Min.X, y, c)
			setClipped(dst, rr.Max.X-1, y, c)
		}
	}
}

func setClipped(dst *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(dst.Rect) {
		dst.SetNRGBA(x, y, c)
	}
}

func drawLabel(dst *image.NRGBA, text string, x, y int, c color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Resize scales img to the given size with Catmull-Rom interpolation.
func Resize(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), xdraw.Over, nil)
	return dst
}
