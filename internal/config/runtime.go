package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/linuxmatters/scentcloud/internal/errors"
)

// RuntimeConfig holds user overrides read from a TOML file or flags.
// Nil pointers and empty strings mean "use the compiled-in default".
type RuntimeConfig struct {
	OutputPath      string `toml:"output_path"`
	FontPath        string `toml:"font_path"`
	BackgroundColor string `toml:"background_color"`

	Width            *int     `toml:"width"`
	Height           *int     `toml:"height"`
	MaxFontSize      *int     `toml:"max_font_size"`
	MinFontSize      *int     `toml:"min_font_size"`
	FontStep         *int     `toml:"font_step"`
	Margin           *int     `toml:"margin"`
	RelativeScaling  *float64 `toml:"relative_scaling"`
	PreferHorizontal *float64 `toml:"prefer_horizontal"`
	MaxWords         *int     `toml:"max_words"`
	Seed             *uint64  `toml:"seed"`
	JPEGQuality      *int     `toml:"jpeg_quality"`
}

// FileKey documents one key accepted in a config file.
type FileKey struct {
	Name    string
	Default string
	Help    string
}

// FileKeys lists the config file keys in the order RuntimeConfig declares them.
func FileKeys() []FileKey {
	return []FileKey{
		{"output_path", OutputPath, "Where to write the JPEG"},
		{"font_path", "embedded Go Bold", "TrueType font file or system font name"},
		{"background_color", fmt.Sprintf("#%02X%02X%02X", BackgroundColorR, BackgroundColorG, BackgroundColorB), "Canvas colour as hex"},
		{"width", fmt.Sprint(Width), "Canvas width in pixels"},
		{"height", fmt.Sprint(Height), "Canvas height in pixels"},
		{"max_font_size", fmt.Sprint(MaxFontSize), "Font size of the most frequent label"},
		{"min_font_size", fmt.Sprint(MinFontSize), "Smallest font size before layout stops"},
		{"font_step", fmt.Sprint(FontStep), "Shrink step when a label does not fit"},
		{"margin", fmt.Sprint(Margin), "Padding in pixels around each label"},
		{"relative_scaling", fmt.Sprint(RelativeScaling), "0 sizes by rank, 1 by frequency"},
		{"prefer_horizontal", fmt.Sprint(PreferHorizontal), "Chance a label is tried horizontally first"},
		{"max_words", fmt.Sprint(MaxWords), "Most labels placed"},
		{"seed", fmt.Sprint(Seed), "Layout seed"},
		{"jpeg_quality", fmt.Sprint(JPEGQuality), "JPEG quality, 1-100"},
	}
}

// Load reads a RuntimeConfig from a TOML file. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Load(path string) (*RuntimeConfig, error) {
	var rc RuntimeConfig
	md, err := toml.DecodeFile(path, &rc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return &rc, nil
}

// Validate checks that every set field is within range.
func (c *RuntimeConfig) Validate() error {
	if c.BackgroundColor != "" {
		if _, _, _, err := ParseHexColor(c.BackgroundColor); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "background_color")
		}
	}

	positive := []struct {
		name string
		v    *int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"max_font_size", c.MaxFontSize},
		{"min_font_size", c.MinFontSize},
		{"font_step", c.FontStep},
		{"max_words", c.MaxWords},
	}
	for _, p := range positive {
		if p.v != nil && *p.v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %d", p.name, *p.v)
		}
	}

	if c.Margin != nil && *c.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margin must not be negative, got %d", *c.Margin)
	}
	if c.RelativeScaling != nil && (*c.RelativeScaling < 0 || *c.RelativeScaling > 1) {
		return errors.New(errors.ErrCodeInvalidConfig, "relative_scaling must be within [0, 1], got %g", *c.RelativeScaling)
	}
	if c.PreferHorizontal != nil && (*c.PreferHorizontal < 0 || *c.PreferHorizontal > 1) {
		return errors.New(errors.ErrCodeInvalidConfig, "prefer_horizontal must be within [0, 1], got %g", *c.PreferHorizontal)
	}
	if c.JPEGQuality != nil && (*c.JPEGQuality < 1 || *c.JPEGQuality > 100) {
		return errors.New(errors.ErrCodeInvalidConfig, "jpeg_quality must be within [1, 100], got %d", *c.JPEGQuality)
	}
	if c.GetMinFontSize() > c.GetMaxFontSize() {
		return errors.New(errors.ErrCodeInvalidConfig, "min_font_size %d exceeds max_font_size %d",
			c.GetMinFontSize(), c.GetMaxFontSize())
	}
	return nil
}

// ParseHexColor parses a colour in RRGGBB or #RRGGBB form.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, errors.New(errors.ErrCodeInvalidConfig, "invalid hex colour %q: want 6 hex digits", s)
	}
	rgb, err := hex.DecodeString(s)
	if err != nil {
		return 0, 0, 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid hex colour %q", s)
	}
	return rgb[0], rgb[1], rgb[2], nil
}

// GetOutputPath returns where the rendered image is written.
func (c *RuntimeConfig) GetOutputPath() string {
	if c.OutputPath == "" {
		return OutputPath
	}
	return c.OutputPath
}

// GetFontPath returns the configured font path. Empty selects the embedded font.
func (c *RuntimeConfig) GetFontPath() string {
	return c.FontPath
}

// GetBackgroundColor returns the background colour, falling back to the
// default when unset or unparsable.
func (c *RuntimeConfig) GetBackgroundColor() (uint8, uint8, uint8) {
	if c.BackgroundColor != "" {
		if r, g, b, err := ParseHexColor(c.BackgroundColor); err == nil {
			return r, g, b
		}
	}
	return BackgroundColorR, BackgroundColorG, BackgroundColorB
}

func (c *RuntimeConfig) GetWidth() int       { return intOr(c.Width, Width) }
func (c *RuntimeConfig) GetHeight() int      { return intOr(c.Height, Height) }
func (c *RuntimeConfig) GetMaxFontSize() int { return intOr(c.MaxFontSize, MaxFontSize) }
func (c *RuntimeConfig) GetMinFontSize() int { return intOr(c.MinFontSize, MinFontSize) }
func (c *RuntimeConfig) GetFontStep() int    { return intOr(c.FontStep, FontStep) }
func (c *RuntimeConfig) GetMargin() int      { return intOr(c.Margin, Margin) }
func (c *RuntimeConfig) GetMaxWords() int    { return intOr(c.MaxWords, MaxWords) }
func (c *RuntimeConfig) GetJPEGQuality() int { return intOr(c.JPEGQuality, JPEGQuality) }

func (c *RuntimeConfig) GetRelativeScaling() float64 {
	if c.RelativeScaling == nil {
		return RelativeScaling
	}
	return *c.RelativeScaling
}

func (c *RuntimeConfig) GetPreferHorizontal() float64 {
	if c.PreferHorizontal == nil {
		return PreferHorizontal
	}
	return *c.PreferHorizontal
}

func (c *RuntimeConfig) GetSeed() uint64 {
	if c.Seed == nil {
		return Seed
	}
	return *c.Seed
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
