package renderer

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/golang/freetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"

	"github.com/linuxmatters/scentcloud/internal/config"
)

// Orientation of a placed label
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical               // rotated 90° counter-clockwise
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (o Orientation) flip() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// rasterizeLabel draws label into an alpha mask cropped to its ink bounds.
// Returns nil when the label has no visible glyphs.
func rasterizeLabel(face font.Face, label string) *image.Alpha {
	d := &font.Drawer{Face: face}
	bounds, _ := d.BoundString(label)

	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	width := bounds.Max.X.Ceil() - minX
	height := bounds.Max.Y.Ceil() - minY
	if width <= 0 || height <= 0 {
		return nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d.Dst = mask
	d.Src = image.Opaque
	// Shift the baseline so the ink box starts at the mask origin
	d.Dot = freetype.Pt(-minX, -minY)
	d.DrawString(label)

	return mask
}

// rotate90 returns mask rotated 90° counter-clockwise, so text reads bottom
// to top.
func rotate90(mask *image.Alpha) *image.Alpha {
	w := mask.Bounds().Dx()
	h := mask.Bounds().Dy()

	// Source (x, y) maps to destination (y, w-x)
	m := f64.Aff3{
		0, 1, 0,
		-1, 0, float64(w),
	}

	rotated := image.NewAlpha(image.Rect(0, 0, h, w))
	draw.NearestNeighbor.Transform(rotated, m, mask, mask.Bounds(), draw.Src, nil)
	return rotated
}

// labelMask rasterises label with face in the given orientation.
func labelMask(face font.Face, label string, o Orientation) *image.Alpha {
	mask := rasterizeLabel(face, label)
	if mask == nil || o == Horizontal {
		return mask
	}
	return rotate90(mask)
}

// randomLabelColor picks a random hue at fixed saturation and lightness.
func randomLabelColor(rng *rand.Rand) color.RGBA {
	c := colorful.Hsl(rng.Float64()*360, config.LabelSaturation, config.LabelLightness)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
