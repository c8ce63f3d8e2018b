package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/linuxmatters/scentcloud/internal/config"
	"github.com/linuxmatters/scentcloud/internal/errors"
	"github.com/linuxmatters/scentcloud/internal/tally"
)

// Options controls canvas size, fonts and the packing policy.
type Options struct {
	FontPath   string // TrueType font; empty selects the embedded font
	Width      int
	Height     int
	Background color.RGBA

	MaxFontSize      int
	MinFontSize      int
	FontStep         int
	Margin           int
	RelativeScaling  float64
	PreferHorizontal float64
	MaxWords         int
	Seed             uint64
}

// DefaultOptions returns the options used when nothing is overridden:
// a 400x400 white canvas with the embedded font.
func DefaultOptions() Options {
	return Options{
		Width:  config.Width,
		Height: config.Height,
		Background: color.RGBA{
			R: config.BackgroundColorR,
			G: config.BackgroundColorG,
			B: config.BackgroundColorB,
			A: 255,
		},
		MaxFontSize:      config.MaxFontSize,
		MinFontSize:      config.MinFontSize,
		FontStep:         config.FontStep,
		Margin:           config.Margin,
		RelativeScaling:  config.RelativeScaling,
		PreferHorizontal: config.PreferHorizontal,
		MaxWords:         config.MaxWords,
		Seed:             config.Seed,
	}
}

func (o Options) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size %dx%d must be positive", o.Width, o.Height)
	case o.MinFontSize <= 0 || o.FontStep <= 0 || o.MaxWords <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "min font size, font step and max words must be positive")
	case o.MinFontSize > o.MaxFontSize:
		return errors.New(errors.ErrCodeInvalidConfig, "min font size %d exceeds max font size %d", o.MinFontSize, o.MaxFontSize)
	case o.Margin < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "margin %d must not be negative", o.Margin)
	case o.RelativeScaling < 0 || o.RelativeScaling > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "relative scaling %g outside [0, 1]", o.RelativeScaling)
	case o.PreferHorizontal < 0 || o.PreferHorizontal > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "prefer horizontal %g outside [0, 1]", o.PreferHorizontal)
	}
	return nil
}

// Placement describes where one label was drawn.
type Placement struct {
	Label       string
	Count       int
	FontSize    int
	Orientation Orientation
	Bounds      image.Rectangle // ink bounds on the canvas
	Color       color.RGBA
}

// Area returns the pixel area of the placement's bounds.
func (p Placement) Area() int {
	return p.Bounds.Dx() * p.Bounds.Dy()
}

// Cloud is a rendered word cloud. It is not modified after Render returns.
type Cloud struct {
	Image      *image.RGBA
	Placements []Placement // in layout order, most frequent first
	Coverage   float64     // fraction of canvas pixels covered by label ink
}

// Placement returns the placement for label, if it was drawn.
func (c *Cloud) Placement(label string) (Placement, bool) {
	for _, p := range c.Placements {
		if p.Label == label {
			return p, true
		}
	}
	return Placement{}, false
}

// Renderer lays out and draws word clouds.
type Renderer struct {
	Logger *log.Logger // optional; debug output per placed label
}

// NewRenderer creates a renderer that logs to logger. A nil logger is allowed.
func NewRenderer(logger *log.Logger) *Renderer {
	return &Renderer{Logger: logger}
}

// Render lays out the labels of table on a canvas, sizing each by its
// relative frequency and packing them without overlap.
//
// Labels are processed most frequent first. Each is tried at the current
// font size in a randomly chosen orientation, then in the other
// orientation, then at successively smaller sizes until a free spot is
// found. Layout stops as soon as a label would go below MinFontSize.
func (r *Renderer) Render(table tally.Table, opts Options) (*Cloud, error) {
	if table.Len() == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no labels to render")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	logger := r.logger()

	ttf, source, err := loadFont(opts.FontPath)
	if err != nil {
		return nil, err
	}
	if opts.FontPath != "" && source != opts.FontPath {
		logger.Warn("font not found, using system font", "requested", opts.FontPath, "using", source)
	} else {
		logger.Debug("loaded font", "source", source)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	occ := newOccupancy(opts.Width, opts.Height)
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	entries := table.Ranked()
	if len(entries) > opts.MaxWords {
		entries = entries[:opts.MaxWords]
	}
	maxCount := float64(entries[0].Count)

	placements := make([]Placement, 0, len(entries))
	fontSize := opts.MaxFontSize
	lastFreq := 1.0
	rs := opts.RelativeScaling

	for i, e := range entries {
		freq := float64(e.Count) / maxCount
		if rs != 0 && i != 0 {
			fontSize = int(math.Round((rs*(freq/lastFreq) + (1 - rs)) * float64(fontSize)))
		}

		orientation := Horizontal
		if rng.Float64() >= opts.PreferHorizontal {
			orientation = Vertical
		}

		var mask *image.Alpha
		var pos image.Point
		triedOther := false
		found := false
		blank := false
		for fontSize >= opts.MinFontSize {
			face := newFace(ttf, fontSize)
			mask = labelMask(face, e.Label, orientation)
			face.Close()
			if mask == nil {
				blank = true
				break
			}

			b := mask.Bounds()
			if p, ok := occ.samplePosition(b.Dx()+opts.Margin, b.Dy()+opts.Margin, rng); ok {
				pos = p
				found = true
				break
			}

			if !triedOther && opts.PreferHorizontal < 1 {
				orientation = orientation.flip()
				triedOther = true
			} else {
				fontSize -= opts.FontStep
				orientation = Horizontal
			}
		}

		if blank {
			logger.Debug("skipping label without glyphs", "label", e.Label)
			continue
		}
		if !found {
			logger.Debug("canvas full", "label", e.Label, "placed", len(placements), "remaining", len(entries)-i)
			break
		}

		at := pos.Add(image.Pt(opts.Margin/2, opts.Margin/2))
		rect := image.Rectangle{Min: at, Max: at.Add(mask.Bounds().Size())}
		fill := randomLabelColor(rng)

		draw.DrawMask(canvas, rect, image.NewUniform(fill), image.Point{}, mask, mask.Bounds().Min, draw.Over)
		occ.mark(mask, at)

		placements = append(placements, Placement{
			Label:       e.Label,
			Count:       e.Count,
			FontSize:    fontSize,
			Orientation: orientation,
			Bounds:      rect,
			Color:       fill,
		})
		logger.Debug("placed label", "label", e.Label, "count", e.Count, "size", fontSize,
			"orientation", orientation, "at", rect.Min)

		lastFreq = freq
	}

	if len(placements) == 0 {
		return nil, errors.New(errors.ErrCodeNoSpace,
			"no label fits on a %dx%d canvas at font size %d or above", opts.Width, opts.Height, opts.MinFontSize)
	}

	return &Cloud{
		Image:      canvas,
		Placements: placements,
		Coverage:   occ.coverage(),
	}, nil
}

func (r *Renderer) logger() *log.Logger {
	if r == nil || r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}
